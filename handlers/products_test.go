package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xumparim-tech/Zippida/models"
)

func TestListProductsIsPublic(t *testing.T) {
	env := newTestEnv()
	_, err := env.products.Create(context.Background(), models.Product{Name: "Non", Category: models.CategoryBakery, Price: 4000, Stock: 10})
	require.NoError(t, err)

	w := env.request(http.MethodGet, "/api/products", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Non", products[0].Name)
}

func TestCreateProductRequiresAdmin(t *testing.T) {
	env := newTestEnv()
	_, userToken := env.addUser("Dilnoza", "+998901112233", "secret1", false)

	body := `{"name":"Non","price":4000,"stock":10}`

	noToken := env.request(http.MethodPost, "/api/products", body, "")
	assert.Equal(t, http.StatusUnauthorized, noToken.Code)

	nonAdmin := env.request(http.MethodPost, "/api/products", body, userToken)
	assert.Equal(t, http.StatusUnauthorized, nonAdmin.Code)

	assert.Empty(t, env.products.items)
}

func TestCreateProductDefaults(t *testing.T) {
	env := newTestEnv()
	_, adminToken := env.addUser("Admin", "+998901234567", "admin_pass", true)

	w := env.request(http.MethodPost, "/api/products",
		`{"name":"Guruch","price":28000,"stock":0}`, adminToken)

	require.Equal(t, http.StatusCreated, w.Code)
	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, models.CategoryOther, p.Category)
	assert.Equal(t, models.DefaultImage, p.Image)
	assert.Equal(t, 0, p.Stock, "zero stock is allowed")
}

func TestCreateProductMissingFields(t *testing.T) {
	env := newTestEnv()
	_, adminToken := env.addUser("Admin", "+998901234567", "admin_pass", true)

	missingPrice := env.request(http.MethodPost, "/api/products",
		`{"name":"Non","stock":10}`, adminToken)
	assert.Equal(t, http.StatusBadRequest, missingPrice.Code)

	missingStock := env.request(http.MethodPost, "/api/products",
		`{"name":"Non","price":4000}`, adminToken)
	assert.Equal(t, http.StatusBadRequest, missingStock.Code)

	badCategory := env.request(http.MethodPost, "/api/products",
		`{"name":"Non","price":4000,"stock":10,"category":"texnika"}`, adminToken)
	assert.Equal(t, http.StatusBadRequest, badCategory.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv()
	_, adminToken := env.addUser("Admin", "+998901234567", "admin_pass", true)
	created, err := env.products.Create(context.Background(), models.Product{Name: "Non", Price: 4000})
	require.NoError(t, err)

	w := env.request(http.MethodDelete, "/api/products/"+created.ID.Hex(), "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Product removed")

	again := env.request(http.MethodDelete, "/api/products/"+created.ID.Hex(), "", adminToken)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestDeleteProductRequiresAdmin(t *testing.T) {
	env := newTestEnv()
	_, userToken := env.addUser("Dilnoza", "+998901112233", "secret1", false)
	created, err := env.products.Create(context.Background(), models.Product{Name: "Non", Price: 4000})
	require.NoError(t, err)

	w := env.request(http.MethodDelete, "/api/products/"+created.ID.Hex(), "", userToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Len(t, env.products.items, 1)
}
