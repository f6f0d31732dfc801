// Package client is the Go client kit for the Zippida API: an HTTP client,
// an in-memory cart with promo pricing, and a file-persisted session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/xumparim-tech/Zippida/models"
)

// ErrNotLoggedIn is returned by calls that need a bearer token when the
// session has none.
var ErrNotLoggedIn = errors.New("client: not logged in")

// ErrEmptyCart is returned by Checkout when the cart has no items.
var ErrEmptyCart = errors.New("client: cart is empty")

// ErrMissingDetails is returned by Checkout when a contact field is blank.
var ErrMissingDetails = errors.New("client: name, phone and address are required")

// APIError is a non-2xx response decoded from the server's {message} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: %s (status %d)", e.Message, e.Status)
}

// PaymentMethod selects how the customer pays at checkout.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// CheckoutOptions tunes order submission. Confirm is invoked with the final
// total for card payments; returning false aborts the checkout. The card
// path is a confirmation stub, not a real transaction.
type CheckoutOptions struct {
	Payment PaymentMethod
	Confirm func(total int64) bool
}

// ErrPaymentDeclined is returned when the card confirmation callback says no.
var ErrPaymentDeclined = errors.New("client: payment not confirmed")

// Client talks to the Zippida API. The session is loaded from the store at
// construction and updated on login, register and logout.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	sessions *SessionStore
	session  *Session
}

// New builds a client and loads any persisted session from store.
func New(baseURL string, store *SessionStore) (*Client, error) {
	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		sessions:   store,
	}
	if store != nil {
		sess, err := store.Load()
		if err != nil {
			return nil, err
		}
		c.session = sess
	}
	return c, nil
}

// Session returns the current session, or nil when logged out.
func (c *Client) Session() *Session {
	return c.session
}

type authPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

func (c *Client) saveSession(p *authPayload) (*Session, error) {
	sess := &Session{UserID: p.ID, Name: p.Name, Phone: p.Phone, IsAdmin: p.IsAdmin, Token: p.Token}
	if c.sessions != nil {
		if err := c.sessions.Save(sess); err != nil {
			return nil, err
		}
	}
	c.session = sess
	return sess, nil
}

// Register creates an account and starts a session.
func (c *Client) Register(ctx context.Context, name, phone, password string) (*Session, error) {
	var payload authPayload
	err := c.do(ctx, http.MethodPost, "/api/users/register",
		map[string]string{"name": name, "phone": phone, "password": password}, &payload, false)
	if err != nil {
		return nil, err
	}
	return c.saveSession(&payload)
}

// Login authenticates and starts a session.
func (c *Client) Login(ctx context.Context, phone, password string) (*Session, error) {
	var payload authPayload
	err := c.do(ctx, http.MethodPost, "/api/users/login",
		map[string]string{"phone": phone, "password": password}, &payload, false)
	if err != nil {
		return nil, err
	}
	return c.saveSession(&payload)
}

// Logout clears the persisted session slot and forgets the in-memory state.
func (c *Client) Logout() error {
	c.session = nil
	if c.sessions != nil {
		return c.sessions.Clear()
	}
	return nil
}

// Products fetches the catalog.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

type orderItemPayload struct {
	Product  string `json:"product,omitempty"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type placeOrderPayload struct {
	Items   []orderItemPayload  `json:"items"`
	Details models.OrderDetails `json:"details"`
	Total   int64               `json:"total"`
}

// Checkout submits the cart as an order. The bearer token is attached only
// when a session exists; guests order anonymously. On success the cart is
// cleared.
func (c *Client) Checkout(ctx context.Context, cart *Cart, details models.OrderDetails, opts CheckoutOptions) (*models.Order, error) {
	if cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if details.Name == "" || details.Phone == "" || details.Address == "" {
		return nil, ErrMissingDetails
	}

	total := cart.Total()
	if opts.Payment == PaymentCard {
		if opts.Confirm == nil || !opts.Confirm(total) {
			return nil, ErrPaymentDeclined
		}
	}

	payload := placeOrderPayload{Details: details, Total: total}
	for _, item := range cart.Items() {
		payload.Items = append(payload.Items, orderItemPayload{
			Product:  item.ProductID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", payload, &order, c.session.LoggedIn()); err != nil {
		return nil, err
	}
	cart.Clear()
	return &order, nil
}

// Orders fetches the caller's order history (all orders for admins).
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	if !c.session.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders, true); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateProduct adds a catalog entry. Admin token required.
func (c *Client) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	if !c.session.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	body := map[string]interface{}{
		"name":     p.Name,
		"price":    p.Price,
		"stock":    p.Stock,
		"category": p.Category,
		"image":    p.Image,
		"imageUrl": p.ImageURL,
	}
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", body, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteProduct removes a catalog entry. Admin token required.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if !c.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil, true)
}

// UpdateOrderStatus overwrites an order's status. Admin token required.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	if !c.session.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	var order models.Order
	err := c.do(ctx, http.MethodPut, "/api/orders/"+id,
		map[string]models.OrderStatus{"status": status}, &order, true)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, withToken bool) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withToken && c.session.LoggedIn() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiMsg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiMsg)
		if apiMsg.Message == "" {
			apiMsg.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiMsg.Message}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
