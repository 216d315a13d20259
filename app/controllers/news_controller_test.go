package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eshop-back/app/models"
)

func seedNews(t *testing.T, db *gorm.DB, title string) models.NewsItem {
	t.Helper()

	item := models.NewsItem{Title: title}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestNewsListIsPublic(t *testing.T) {
	h, db := newTestApp(t)
	seedNews(t, db, "Summer sale")

	w := do(t, h, http.MethodGet, "/api/NewsItems", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.NewsItem
	decode(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Summer sale", items[0].Title)
}

func TestNewsShowNotFound(t *testing.T) {
	h, _ := newTestApp(t)
	assert.Equal(t, http.StatusNotFound,
		do(t, h, http.MethodGet, "/api/NewsItems/41", "", nil).Code)
}

func TestNewsCreateUpdateDelete(t *testing.T) {
	h, db := newTestApp(t)
	adminToken := seedAdmin(t, db)

	created := do(t, h, http.MethodPost, "/api/NewsItems", adminToken, map[string]interface{}{
		"title":       "Grand opening",
		"description": "We are live",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var item models.NewsItem
	decode(t, created, &item)
	require.NotZero(t, item.ID)

	updated := do(t, h, http.MethodPut, "/api/NewsItems/"+itoa(item.ID), adminToken, map[string]interface{}{
		"id":    item.ID,
		"title": "Grand opening, extended",
	})
	require.Equal(t, http.StatusNoContent, updated.Code)

	var stored models.NewsItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, "Grand opening, extended", stored.Title)

	mismatch := do(t, h, http.MethodPut, "/api/NewsItems/"+itoa(item.ID), adminToken, map[string]interface{}{
		"id":    item.ID + 1,
		"title": "Wrong id",
	})
	assert.Equal(t, http.StatusBadRequest, mismatch.Code)

	assert.Equal(t, http.StatusNoContent,
		do(t, h, http.MethodDelete, "/api/NewsItems/"+itoa(item.ID), adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound,
		do(t, h, http.MethodDelete, "/api/NewsItems/"+itoa(item.ID), adminToken, nil).Code)
}

func TestNewsMutationsRequireAdmin(t *testing.T) {
	h, _ := newTestApp(t)
	userToken := registerUser(t, h, "alice@example.com")

	body := map[string]interface{}{"title": "Hacked"}
	assert.Equal(t, http.StatusUnauthorized,
		do(t, h, http.MethodPost, "/api/NewsItems", "", body).Code)
	assert.Equal(t, http.StatusForbidden,
		do(t, h, http.MethodPost, "/api/NewsItems", userToken, body).Code)
}
