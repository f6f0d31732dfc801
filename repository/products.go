package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xumparim-tech/Zippida/models"
)

// ProductRepository persists catalog entries in the products collection.
type ProductRepository struct {
	Collection *mongo.Collection
}

// All returns the whole catalog.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a new product and returns it with its generated id.
func (r *ProductRepository) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.Collection.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a product. Returns ErrNotFound when nothing matched.
func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
