package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xumparim-tech/Zippida/httperr"
	"github.com/xumparim-tech/Zippida/middleware"
	"github.com/xumparim-tech/Zippida/models"
	"github.com/xumparim-tech/Zippida/repository"
)

// OrderHandler serves order placement, listing and status updates.
type OrderHandler struct {
	Orders OrderStore
}

type OrderItemRequest struct {
	Product  string `json:"product"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	Items   []OrderItemRequest  `json:"items"`
	Details models.OrderDetails `json:"details"`
	Total   int64               `json:"total"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// Place creates an order. Works for guests; a verifiable bearer token binds
// the order to that identity. Validation checks the item list before the
// contact details.
func (h *OrderHandler) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.New(httperr.Validation, "Invalid order payload"))
		return
	}

	if len(req.Items) == 0 {
		httperr.Respond(c, httperr.New(httperr.Validation, "No order items"))
		return
	}
	if req.Details.Name == "" || req.Details.Phone == "" || req.Details.Address == "" {
		httperr.Respond(c, httperr.New(httperr.Validation, "Name, phone and address are required"))
		return
	}

	items := make([]models.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			httperr.Respond(c, httperr.New(httperr.Validation, "Item quantity must be at least 1"))
			return
		}
		if it.Price < 0 {
			httperr.Respond(c, httperr.New(httperr.Validation, "Item price cannot be negative"))
			return
		}
		item := models.LineItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity}
		// Product references are best-effort; an unparseable id just means
		// the snapshot has no catalog link.
		if oid, err := primitive.ObjectIDFromHex(it.Product); err == nil {
			item.Product = &oid
		}
		items = append(items, item)
	}

	order := models.Order{
		Items:   items,
		Details: req.Details,
		Total:   req.Total,
		Status:  models.StatusProcessing,
		Date:    time.Now().Format("02.01.2006 15:04"),
	}
	if id, ok := middleware.OwnerID(c); ok {
		order.UserID = &id
	}

	created, err := h.Orders.Create(c.Request.Context(), order)
	if err != nil {
		logger.Error().Err(err).Msg("order create failed")
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List returns orders scoped to the caller: admins see everything, everyone
// else sees orders they own plus anonymous orders matching their phone.
func (h *OrderHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Respond(c, httperr.New(httperr.Unauthorized, "Not authorized"))
		return
	}

	var (
		orders []models.Order
		err    error
	)
	if user.IsAdmin {
		orders, err = h.Orders.All(c.Request.Context())
	} else {
		orders, err = h.Orders.FindByOwnerOrPhone(c.Request.Context(), user.ID, user.Phone)
	}
	if err != nil {
		logger.Error().Err(err).Msg("order list failed")
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus overwrites an order's status. Admin only; any known status
// may follow any other.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.New(httperr.NotFound, "Order not found"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.New(httperr.Validation, "Status is required"))
		return
	}
	if !models.ValidStatus(req.Status) {
		httperr.Respond(c, httperr.New(httperr.Validation, "Unknown order status"))
		return
	}

	order, err := h.Orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.Respond(c, httperr.New(httperr.NotFound, "Order not found"))
			return
		}
		logger.Error().Err(err).Msg("order status update failed")
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
