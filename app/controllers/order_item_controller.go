package controllers

import (
	"errors"
	"net/http"

	"eshop-back/app/models"
	"eshop-back/app/repositories"
	"eshop-back/pkg/bind"
	"eshop-back/pkg/logger"
	"eshop-back/pkg/response"
)

// OrderItemController is the raw admin CRUD over order lines, used for
// manual corrections outside the normal order flow.
type OrderItemController struct {
	items *repositories.OrderItemRepository
}

func NewOrderItemController(items *repositories.OrderItemRepository) *OrderItemController {
	return &OrderItemController{items: items}
}

type orderItemRequest struct {
	ID        uint `json:"id"`
	OrderID   uint `json:"orderId" validate:"required"`
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity"`
}

func (c *OrderItemController) Index(w http.ResponseWriter, r *http.Request) {
	items, err := c.items.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list order items failed", "error", err)
		response.Internal(w)
		return
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	response.OK(w, items)
}

func (c *OrderItemController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	item, err := c.items.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("get order item failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	response.OK(w, item)
}

func (c *OrderItemController) Create(w http.ResponseWriter, r *http.Request) {
	var req orderItemRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	item := models.OrderItem{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := c.items.Create(&item); err != nil {
		logger.WithCtx(r.Context()).Error("create order item failed", "error", err)
		response.Internal(w)
		return
	}

	response.Created(w, item)
}

func (c *OrderItemController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var req orderItemRequest
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

	item := models.OrderItem{
		ID:        id,
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := c.items.Update(&item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("update order item failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	response.NoContent(w)
}

func (c *OrderItemController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.items.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("delete order item failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	response.NoContent(w)
}
