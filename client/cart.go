package client

import (
	"errors"
	"strings"

	"github.com/xumparim-tech/Zippida/models"
)

// ErrInvalidPromoCode is returned for a non-empty code that is not in the
// promo table. Applying one also resets any previously applied discount.
var ErrInvalidPromoCode = errors.New("client: invalid promo code")

// Delivery pricing: orders above the threshold ship free.
const (
	deliveryFee           int64 = 10_000
	freeDeliveryThreshold int64 = 50_000
)

// promoCodes maps promo codes to their percentage discount. Matching is
// case-insensitive.
var promoCodes = map[string]int{
	"YANGI10": 10,
	"YOZGI20": 20,
	"VIP30":   30,
}

// CartItem is a product snapshot plus a quantity.
type CartItem struct {
	ProductID string
	Name      string
	Price     int64
	Quantity  int
}

// Cart is the in-memory shopping cart with promo/discount state. Entries
// are keyed by product id; adding a product already in the cart increments
// its quantity instead of duplicating the entry.
type Cart struct {
	items           map[string]*CartItem
	order           []string
	discountPercent int
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[string]*CartItem)}
}

// Add puts one unit of the product into the cart, snapshotting its name and
// price.
func (c *Cart) Add(p models.Product) {
	id := p.ID.Hex()
	if item, ok := c.items[id]; ok {
		item.Quantity++
		return
	}
	c.items[id] = &CartItem{ProductID: id, Name: p.Name, Price: p.Price, Quantity: 1}
	c.order = append(c.order, id)
}

// UpdateQuantity adjusts an entry by delta. A quantity reaching zero or
// below removes the entry.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	item, ok := c.items[productID]
	if !ok {
		return
	}
	if item.Quantity+delta <= 0 {
		c.Remove(productID)
		return
	}
	item.Quantity += delta
}

// Remove drops an entry entirely.
func (c *Cart) Remove(productID string) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Items returns the cart entries in the order they were first added.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.items[id])
	}
	return items
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.items)
}

// Clear empties the cart and resets any applied discount.
func (c *Cart) Clear() {
	c.items = make(map[string]*CartItem)
	c.order = nil
	c.discountPercent = 0
}

// ApplyPromo validates code against the promo table. An empty code quietly
// resets the discount; an unknown code resets it and reports
// ErrInvalidPromoCode. Applying the same valid code twice is idempotent.
func (c *Cart) ApplyPromo(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		c.discountPercent = 0
		return nil
	}
	pct, ok := promoCodes[code]
	if !ok {
		c.discountPercent = 0
		return ErrInvalidPromoCode
	}
	c.discountPercent = pct
	return nil
}

// DiscountPercent returns the currently applied discount percentage.
func (c *Cart) DiscountPercent() int {
	return c.discountPercent
}

// Subtotal is Σ price × quantity over the cart.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, item := range c.items {
		sum += item.Price * int64(item.Quantity)
	}
	return sum
}

// DeliveryFee is zero above the free-delivery threshold, fixed below it.
func (c *Cart) DeliveryFee() int64 {
	if c.Subtotal() > freeDeliveryThreshold {
		return 0
	}
	return deliveryFee
}

// DiscountAmount is the subtotal share taken off by the applied promo.
func (c *Cart) DiscountAmount() int64 {
	return c.Subtotal() * int64(c.discountPercent) / 100
}

// Total is what gets submitted as the order total:
// subtotal + delivery fee − discount.
func (c *Cart) Total() int64 {
	return c.Subtotal() + c.DeliveryFee() - c.DiscountAmount()
}
