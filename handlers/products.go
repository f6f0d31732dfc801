package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xumparim-tech/Zippida/httperr"
	"github.com/xumparim-tech/Zippida/models"
	"github.com/xumparim-tech/Zippida/repository"
)

// ProductHandler serves the catalog.
type ProductHandler struct {
	Products ProductStore
}

type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    int64           `json:"price" binding:"required,gt=0"`
	Stock    *int            `json:"stock" binding:"required,min=0"`
	Category models.Category `json:"category"`
	Image    string          `json:"image"`
	ImageURL string          `json:"imageUrl"`
}

// List returns the whole catalog. Public.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Products.All(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("product list failed")
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create adds a catalog entry. Admin only.
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.New(httperr.Validation, "Product name, a positive price and a stock count are required"))
		return
	}

	category := req.Category
	if category == "" {
		category = models.CategoryOther
	}
	if !models.ValidCategory(category) {
		httperr.Respond(c, httperr.New(httperr.Validation, "Unknown product category"))
		return
	}

	image := req.Image
	if image == "" {
		image = models.DefaultImage
	}

	product, err := h.Products.Create(c.Request.Context(), models.Product{
		Name:     req.Name,
		Category: category,
		Price:    req.Price,
		Stock:    *req.Stock,
		Image:    image,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		logger.Error().Err(err).Msg("product create failed")
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Delete removes a catalog entry. Admin only. Orders keep their snapshots.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.New(httperr.NotFound, "Product not found"))
		return
	}

	if err := h.Products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.Respond(c, httperr.New(httperr.NotFound, "Product not found"))
			return
		}
		logger.Error().Err(err).Msg("product delete failed")
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}
