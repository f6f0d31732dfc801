package handlers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xumparim-tech/Zippida/handlers"
	"github.com/xumparim-tech/Zippida/middleware"
	"github.com/xumparim-tech/Zippida/models"
	"github.com/xumparim-tech/Zippida/repository"
	"github.com/xumparim-tech/Zippida/routes"
)

var testSecret = []byte("handlers-test-secret")

// fakeUsers keeps accounts in memory. Passwords are stored as plain text —
// the fakes test handler behavior, not hashing.
type fakeUsers struct {
	byID map[primitive.ObjectID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, name, phone, password string, isAdmin bool) (*models.User, error) {
	if _, err := f.FindByPhone(context.Background(), phone); err == nil {
		return nil, repository.ErrDuplicatePhone
	}
	user := &models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Phone:        phone,
		PasswordHash: password,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUsers) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) Authenticate(ctx context.Context, phone, password string) (*models.User, error) {
	user, err := f.FindByPhone(ctx, phone)
	if err != nil || user.PasswordHash != password {
		return nil, repository.ErrInvalidCredentials
	}
	return user, nil
}

type fakeProducts struct {
	items []models.Product
}

func (f *fakeProducts) All(context.Context) ([]models.Product, error) {
	return append([]models.Product{}, f.items...), nil
}

func (f *fakeProducts) Create(_ context.Context, p models.Product) (*models.Product, error) {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	f.items = append(f.items, p)
	return &p, nil
}

func (f *fakeProducts) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeOrders struct {
	orders []models.Order
}

func (f *fakeOrders) Create(_ context.Context, o models.Order) (*models.Order, error) {
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now()
	if o.Status == "" {
		o.Status = models.StatusProcessing
	}
	f.orders = append(f.orders, o)
	return &o, nil
}

func (f *fakeOrders) All(context.Context) ([]models.Order, error) {
	// Newest first.
	out := make([]models.Order, 0, len(f.orders))
	for i := len(f.orders) - 1; i >= 0; i-- {
		out = append(out, f.orders[i])
	}
	return out, nil
}

func (f *fakeOrders) FindByOwnerOrPhone(_ context.Context, userID primitive.ObjectID, phone string) ([]models.Order, error) {
	out := []models.Order{}
	for i := len(f.orders) - 1; i >= 0; i-- {
		o := f.orders[i]
		if o.OwnedBy(userID) || o.Details.Phone == phone {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

type testEnv struct {
	router   *gin.Engine
	users    *fakeUsers
	products *fakeProducts
	orders   *fakeOrders
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	env := &testEnv{
		users:    newFakeUsers(),
		products: &fakeProducts{},
		orders:   &fakeOrders{},
	}
	env.router = gin.New()
	routes.SetupRoutes(env.router, routes.Deps{
		Auth:     &handlers.AuthHandler{Users: env.users, Secret: testSecret},
		Products: &handlers.ProductHandler{Products: env.products},
		Orders:   &handlers.OrderHandler{Orders: env.orders},
		Seed:     &handlers.SeedHandler{Users: env.users, AdminPhone: "+998901234567", AdminPassword: "admin_pass"},
		Users:    env.users,
		Secret:   testSecret,
	})
	return env
}

func (e *testEnv) addUser(name, phone, password string, isAdmin bool) (*models.User, string) {
	user, err := e.users.Create(context.Background(), name, phone, password, isAdmin)
	if err != nil {
		panic(err)
	}
	token, err := middleware.GenerateToken(testSecret, user.ID)
	if err != nil {
		panic(err)
	}
	return user, token
}

func (e *testEnv) request(method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
