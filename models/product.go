package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the fixed set of grocery shelves the storefront knows about.
type Category string

const (
	CategoryBakery    Category = "non"
	CategoryDairy     Category = "sut"
	CategoryFruit     Category = "meva"
	CategoryVegetable Category = "sabzavot"
	CategoryGrain     Category = "don"
	CategoryOther     Category = "boshqa"
)

// DefaultImage is used when a product is created without one.
const DefaultImage = "📦"

var validCategories = map[Category]bool{
	CategoryBakery:    true,
	CategoryDairy:     true,
	CategoryFruit:     true,
	CategoryVegetable: true,
	CategoryGrain:     true,
	CategoryOther:     true,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	return validCategories[c]
}

// Product is a catalog entry. Price is in the smallest currency unit.
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  Category           `bson:"category" json:"category"`
	Price     int64              `bson:"price" json:"price"`
	Stock     int                `bson:"stock" json:"stock"`
	Image     string             `bson:"image" json:"image"`
	ImageURL  string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Rating    float64            `bson:"rating" json:"rating"`
	Reviews   int                `bson:"reviews" json:"reviews"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
