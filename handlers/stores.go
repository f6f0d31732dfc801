package handlers

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xumparim-tech/Zippida/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// UserStore is the account persistence the handlers need.
type UserStore interface {
	Create(ctx context.Context, name, phone, password string, isAdmin bool) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Authenticate(ctx context.Context, phone, password string) (*models.User, error)
}

// ProductStore is the catalog persistence the handlers need.
type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, p models.Product) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderStore is the order persistence the handlers need.
type OrderStore interface {
	Create(ctx context.Context, o models.Order) (*models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	FindByOwnerOrPhone(ctx context.Context, userID primitive.ObjectID, phone string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
}
