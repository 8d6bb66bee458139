package main

import (
	"errors"
	"net/http"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/IGBS-Global/Quisin-V11/internal/service"
)

type OrderItemRequest struct {
	MenuItemID domain.MenuItemRef `json:"menuItemId" validate:"required"`
	Name       string             `json:"name"`
	Quantity   int                `json:"quantity" validate:"gte=1"`
	Price      float64            `json:"price" validate:"gte=0"`
}

type CreateOrderRequest struct {
	TableID       string             `json:"tableId" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Status        string             `json:"status" validate:"required"`
	Subtotal      float64            `json:"subtotal" validate:"gte=0"`
	Tax           float64            `json:"tax" validate:"gte=0"`
	Total         float64            `json:"total" validate:"gte=0"`
	WaiterID      string             `json:"waiterId" validate:"required"`
	WaiterName    string             `json:"waiterName" validate:"required"`
	EstimatedTime string             `json:"estimatedTime"`
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	Lists every order with monetary fields decoded to numbers
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		domain.Order
//	@Failure		500	{object}	map[string]string
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.ListOrders(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createOrderHandler godoc
//
//	@Summary		Create order
//	@Description	Validates and creates an order, returning the generated id
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	order := &domain.Order{
		TableID:       req.TableID,
		Items:         items,
		Status:        req.Status,
		Subtotal:      req.Subtotal,
		Tax:           req.Tax,
		Total:         req.Total,
		WaiterID:      req.WaiterID,
		WaiterName:    req.WaiterName,
		EstimatedTime: req.EstimatedTime,
	}

	id, err := app.orderService.CreateOrder(r.Context(), order)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"id": id}); err != nil {
		app.internalServerError(w, r, err)
	}
}
