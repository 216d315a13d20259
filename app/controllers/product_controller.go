package controllers

import (
	"errors"
	"net/http"
	"time"

	"eshop-back/app/models"
	"eshop-back/app/repositories"
	"eshop-back/pkg/bind"
	"eshop-back/pkg/cache"
	"eshop-back/pkg/logger"
	"eshop-back/pkg/response"
)

const (
	productListCacheKey = "eshop:products"
	catalogCacheTTL     = 60 * time.Second
)

// ProductController serves the public catalogue and its admin mutations.
type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController(products *repositories.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

type productRequest struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Brand       *string `json:"brand"`
	Price       float64 `json:"price"`
}

// Index lists all products. Served from the Redis cache when warm; a cold
// or unavailable cache falls through to the database.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if cache.Get(productListCacheKey, &products) {
		response.OK(w, products)
		return
	}

	products, err := c.products.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products failed", "error", err)
		response.Internal(w)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	cache.Set(productListCacheKey, products, catalogCacheTTL) //nolint:errcheck
	response.OK(w, products)
}

// Show returns one product by id.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	product, err := c.products.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("get product failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	response.OK(w, product)
}

// Create adds a product and returns it with its new id.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Price:       req.Price,
	}
	if err := c.products.Create(&product); err != nil {
		logger.WithCtx(r.Context()).Error("create product failed", "error", err)
		response.Internal(w)
		return
	}

	cache.Del(productListCacheKey) //nolint:errcheck
	response.Created(w, product)
}

// Update overwrites a product. The body id must match the path id.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var req productRequest
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

	product := models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Price:       req.Price,
	}
	if err := c.products.Update(&product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("update product failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	cache.Del(productListCacheKey) //nolint:errcheck
	response.NoContent(w)
}

// Delete removes a product.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.products.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("delete product failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	cache.Del(productListCacheKey) //nolint:errcheck
	response.NoContent(w)
}
