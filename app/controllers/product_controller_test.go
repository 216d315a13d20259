package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eshop-back/app/models"
)

func TestProductListIsPublic(t *testing.T) {
	h, db := newTestApp(t)
	seedProduct(t, db, "Lamp", 25)
	seedProduct(t, db, "Chair", 89.90)

	w := do(t, h, http.MethodGet, "/api/Products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	decode(t, w, &products)
	assert.Len(t, products, 2)
}

func TestProductShow(t *testing.T) {
	h, db := newTestApp(t)
	product := seedProduct(t, db, "Lamp", 25)

	w := do(t, h, http.MethodGet, "/api/Products/"+itoa(product.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	decode(t, w, &got)
	assert.Equal(t, "Lamp", got.Name)
	assert.Equal(t, 25.0, got.Price)

	assert.Equal(t, http.StatusNotFound,
		do(t, h, http.MethodGet, "/api/Products/9999", "", nil).Code)
}

func TestProductCreateRequiresAdmin(t *testing.T) {
	h, _ := newTestApp(t)
	userToken := registerUser(t, h, "alice@example.com")

	body := map[string]interface{}{"name": "Desk", "price": 120.0}

	assert.Equal(t, http.StatusUnauthorized,
		do(t, h, http.MethodPost, "/api/Products", "", body).Code)
	assert.Equal(t, http.StatusForbidden,
		do(t, h, http.MethodPost, "/api/Products", userToken, body).Code)
}

func TestProductCreate(t *testing.T) {
	h, db := newTestApp(t)
	adminToken := seedAdmin(t, db)

	w := do(t, h, http.MethodPost, "/api/Products", adminToken, map[string]interface{}{
		"name":        "Desk",
		"description": "Oak desk",
		"brand":       "Woodline",
		"price":       120.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	decode(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Desk", created.Name)
	require.NotNil(t, created.Brand)
	assert.Equal(t, "Woodline", *created.Brand)
}

func TestProductCreateValidation(t *testing.T) {
	h, db := newTestApp(t)
	adminToken := seedAdmin(t, db)

	w := do(t, h, http.MethodPost, "/api/Products", adminToken, map[string]interface{}{
		"price": 10.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, w, &body)
	assert.Contains(t, body.Errors, "name")
}

func TestProductUpdate(t *testing.T) {
	h, db := newTestApp(t)
	adminToken := seedAdmin(t, db)
	product := seedProduct(t, db, "Lamp", 25)

	w := do(t, h, http.MethodPut, "/api/Products/"+itoa(product.ID), adminToken, map[string]interface{}{
		"id":    product.ID,
		"name":  "Floor Lamp",
		"price": 35.0,
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, "Floor Lamp", stored.Name)
	assert.Equal(t, 35.0, stored.Price)
}

func TestProductUpdateIDMismatch(t *testing.T) {
	h, db := newTestApp(t)
	adminToken := seedAdmin(t, db)
	product := seedProduct(t, db, "Lamp", 25)

	w := do(t, h, http.MethodPut, "/api/Products/"+itoa(product.ID), adminToken, map[string]interface{}{
		"id":    product.ID + 1,
		"name":  "Lamp",
		"price": 25.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductUpdateConcurrentlyDeleted(t *testing.T) {
	h, db := newTestApp(t)
	adminToken := seedAdmin(t, db)

	w := do(t, h, http.MethodPut, "/api/Products/777", adminToken, map[string]interface{}{
		"id":    777,
		"name":  "Ghost",
		"price": 1.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductDelete(t *testing.T) {
	h, db := newTestApp(t)
	adminToken := seedAdmin(t, db)
	product := seedProduct(t, db, "Lamp", 25)

	assert.Equal(t, http.StatusNoContent,
		do(t, h, http.MethodDelete, "/api/Products/"+itoa(product.ID), adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound,
		do(t, h, http.MethodDelete, "/api/Products/"+itoa(product.ID), adminToken, nil).Code)
}
