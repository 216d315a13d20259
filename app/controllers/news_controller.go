package controllers

import (
	"errors"
	"net/http"

	"eshop-back/app/models"
	"eshop-back/app/repositories"
	"eshop-back/pkg/bind"
	"eshop-back/pkg/cache"
	"eshop-back/pkg/logger"
	"eshop-back/pkg/response"
)

const newsListCacheKey = "eshop:news"

// NewsController serves storefront announcements.
type NewsController struct {
	news *repositories.NewsRepository
}

func NewNewsController(news *repositories.NewsRepository) *NewsController {
	return &NewsController{news: news}
}

type newsRequest struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Text        *string `json:"text"`
}

func (c *NewsController) Index(w http.ResponseWriter, r *http.Request) {
	var items []models.NewsItem
	if cache.Get(newsListCacheKey, &items) {
		response.OK(w, items)
		return
	}

	items, err := c.news.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list news failed", "error", err)
		response.Internal(w)
		return
	}
	if items == nil {
		items = []models.NewsItem{}
	}

	cache.Set(newsListCacheKey, items, catalogCacheTTL) //nolint:errcheck
	response.OK(w, items)
}

func (c *NewsController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	item, err := c.news.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("get news item failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	response.OK(w, item)
}

func (c *NewsController) Create(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	item := models.NewsItem{
		Title:       req.Title,
		Description: req.Description,
		Text:        req.Text,
	}
	if err := c.news.Create(&item); err != nil {
		logger.WithCtx(r.Context()).Error("create news item failed", "error", err)
		response.Internal(w)
		return
	}

	cache.Del(newsListCacheKey) //nolint:errcheck
	response.Created(w, item)
}

func (c *NewsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var req newsRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	if req.ID != id {
		response.BadRequest(w, "Id mismatch")
		return
	}

	item := models.NewsItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Text:        req.Text,
	}
	if err := c.news.Update(&item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("update news item failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	cache.Del(newsListCacheKey) //nolint:errcheck
	response.NoContent(w)
}

func (c *NewsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.news.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("delete news item failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	cache.Del(newsListCacheKey) //nolint:errcheck
	response.NoContent(w)
}
