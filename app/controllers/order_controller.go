package controllers

import (
	"errors"
	"net/http"

	"eshop-back/app/models"
	"eshop-back/app/repositories"
	"eshop-back/app/services"
	"eshop-back/pkg/bind"
	"eshop-back/pkg/logger"
	"eshop-back/pkg/middleware"
	"eshop-back/pkg/response"
)

// OrderController serves the shopper order flow and the admin status
// workflow.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// orderLineRequest takes the product reference either flat (productId) or
// nested (product.id), both of which the storefront has sent at one time
// or another.
type orderLineRequest struct {
	ProductID uint `json:"productId"`
	Product   *struct {
		ID uint `json:"id"`
	} `json:"product"`
	Quantity int `json:"quantity"`
}

func (l *orderLineRequest) productID() uint {
	if l.Product != nil && l.Product.ID != 0 {
		return l.Product.ID
	}
	return l.ProductID
}

type createOrderRequest struct {
	Destination *string            `json:"destination"`
	NameRec     *string            `json:"nameRec"`
	SurnameRec  *string            `json:"surnameRec"`
	OrderItems  []orderLineRequest `json:"orderItems"`
}

// Index returns the caller's orders with items and products nested.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "User ID not found in claims")
		return
	}

	orders, err := c.orders.ForUser(userID)
	if err != nil {
		logger.WithCtx(r.Context()).Error("list orders failed", "user_id", userID, "error", err)
		response.Internal(w)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	response.OK(w, orders)
}

// Create places an order for the caller. An empty basket or a stale product
// reference rejects the whole order; nothing is persisted in that case.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "User ID not found in claims")
		return
	}

	var req createOrderRequest
	if _, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	lines := make([]services.OrderLine, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		lines = append(lines, services.OrderLine{
			ProductID: item.productID(),
			Quantity:  item.Quantity,
		})
	}

	order, err := c.orders.Place(userID, req.Destination, req.NameRec, req.SurnameRec, lines)
	if err != nil {
		var missing *services.ProductNotFoundError
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			response.BadRequest(w, "Bad Request")
		case errors.As(err, &missing):
			response.BadRequest(w, missing.Error())
		default:
			logger.WithCtx(r.Context()).Error("create order failed", "user_id", userID, "error", err)
			response.Internal(w)
		}
		return
	}

	response.OK(w, order)
}

type updateOrderRequest struct {
	ID     uint    `json:"id"`
	Status *string `json:"status"`
}

// Update writes a new status on an order. Only the status column changes,
// whatever else the body carried.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var req updateOrderRequest
	if _, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if req.ID != id {
		response.BadRequest(w, "Id mismatch")
		return
	}

	if err := c.orders.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("update order failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	response.NoContent(w)
}

// Delete removes an order and its items.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.orders.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("delete order failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	response.NoContent(w)
}
