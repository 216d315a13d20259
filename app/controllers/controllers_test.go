package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"eshop-back/app/models"
	"eshop-back/app/routes"
	"eshop-back/pkg/auth"
	"eshop-back/pkg/router"
)

var dbSeq atomic.Int64

// newTestApp builds the full HTTP stack over a fresh in-memory database.
func newTestApp(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:ctest%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.NewsItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	r := router.New()
	routes.Register(r, db)
	return r.Handler(), db
}

// do performs a request against the handler, optionally with a bearer token
// and a JSON body.
func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// registerUser registers through the public endpoint and returns the token.
func registerUser(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	w := do(t, h, http.MethodPost, "/api/User/register", "", map[string]string{
		"name":         "Shopper",
		"email":        email,
		"passwordHash": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]string
	decode(t, w, &body)
	require.NotEmpty(t, body["token"])
	return body["token"]
}

// seedAdmin inserts an Admin account directly and returns a token for it.
func seedAdmin(t *testing.T, db *gorm.DB) string {
	t.Helper()

	hash, err := auth.HashPassword("adminpass")
	require.NoError(t, err)

	admin := models.User{
		Name:         "Administrator",
		Email:        fmt.Sprintf("admin%d@example.com", dbSeq.Load()),
		AccType:      models.AccountTypeAdmin,
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(&admin).Error)

	token, err := auth.GenerateToken(admin.ID, admin.Email, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func itoa(id uint) string {
	return fmt.Sprintf("%d", id)
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()

	product := models.Product{Name: name, Price: price}
	require.NoError(t, db.Create(&product).Error)
	return product
}
