package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus labels fulfillment progress. Any status may follow any other —
// there is no enforced transition order, only a fixed vocabulary.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

var validStatuses = map[OrderStatus]bool{
	StatusProcessing: true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	return validStatuses[s]
}

// AllStatuses returns the full status vocabulary.
func AllStatuses() []OrderStatus {
	return []OrderStatus{StatusProcessing, StatusDelivered, StatusCancelled}
}

// LineItem is a snapshot of a product at order time. Name and price are
// copied, never re-read from the catalog, so the order stays valid if the
// product is later repriced or deleted. Product is nil for deleted products
// and for items that never referenced a catalog entry.
type LineItem struct {
	Product  *primitive.ObjectID `bson:"product,omitempty" json:"product,omitempty"`
	Name     string              `bson:"name" json:"name"`
	Price    int64               `bson:"price" json:"price"`
	Quantity int                 `bson:"quantity" json:"quantity"`
}

// OrderDetails is the customer contact block on an order. All fields are
// required at placement.
type OrderDetails struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
}

// Order is a placed order. UserID is nil for guest checkouts — such orders
// are matched back to an account only through the details phone fallback.
type Order struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Items     []LineItem          `bson:"items" json:"items"`
	Details   OrderDetails        `bson:"details" json:"details"`
	Total     int64               `bson:"total" json:"total"`
	Status    OrderStatus         `bson:"status" json:"status"`
	UserID    *primitive.ObjectID `bson:"user_id,omitempty" json:"userId,omitempty"`
	Date      string              `bson:"date" json:"date"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}

// Anonymous reports whether the order has no owning user.
func (o *Order) Anonymous() bool {
	return o.UserID == nil
}

// OwnedBy reports whether the order is bound to the given user id.
func (o *Order) OwnedBy(id primitive.ObjectID) bool {
	return o.UserID != nil && *o.UserID == id
}
