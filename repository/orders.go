package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xumparim-tech/Zippida/models"
)

// OrderRepository persists orders in the orders collection.
type OrderRepository struct {
	Collection *mongo.Collection
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

// Create inserts a new order and returns it with its generated id.
func (r *OrderRepository) Create(ctx context.Context, o models.Order) (*models.Order, error) {
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now()
	if o.Status == "" {
		o.Status = models.StatusProcessing
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.Collection.InsertOne(ctx, o); err != nil {
		return nil, err
	}
	return &o, nil
}

// All returns every order, newest first. Admin view.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

// FindByOwnerOrPhone returns orders bound to the user id plus anonymous
// orders whose contact phone matches. The phone fallback exists so that
// guest checkouts surface once the guest registers with the same number —
// and it means two accounts sharing a phone string see each other's orders.
func (r *OrderRepository) FindByOwnerOrPhone(ctx context.Context, userID primitive.ObjectID, phone string) ([]models.Order, error) {
	return r.find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"user_id": userID},
			bson.M{"details.phone": phone},
		},
	})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.Collection.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus overwrites the order's status in place and returns the
// updated document. Last write wins — there is no transition table.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var order models.Order
	err := r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}
