package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/xumparim-tech/Zippida/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const queryTimeout = 5 * time.Second

var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicatePhone means the phone number is already registered.
	ErrDuplicatePhone = errors.New("repository: phone already registered")
	// ErrInvalidCredentials covers both unknown phone and wrong password,
	// without revealing which.
	ErrInvalidCredentials = errors.New("repository: invalid credentials")
)

// UserRepository persists accounts in the users collection.
type UserRepository struct {
	Collection *mongo.Collection
}

// EnsureIndexes creates the unique index on phone. Safe to call on every
// startup.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create registers a new account with a bcrypt-hashed password.
func (r *UserRepository) Create(ctx context.Context, name, phone, password string, isAdmin bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.Collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicatePhone
		}
		return nil, err
	}
	return &user, nil
}

// FindByPhone looks an account up by its login handle.
func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID resolves a token's identity to a live account.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate checks phone and password together. Any mismatch yields
// ErrInvalidCredentials.
func (r *UserRepository) Authenticate(ctx context.Context, phone, password string) (*models.User, error) {
	user, err := r.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
