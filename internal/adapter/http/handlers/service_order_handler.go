package handlers

import (
	"errors"
	"log"
	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for service orders.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateOrder persists a new order together with its full item list.
func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	// Path of creation never honors a client-sent id.
	payload.ID = ""

	saved, err := h.usecase.SaveWithItems(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(saved))
}

// UpdateOrder replaces the order identified by the path id, items included.
func (h *ServiceOrderHandler) UpdateOrder(c *gin.Context) {
	id := c.Param("id")

	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	payload.ID = id

	saved, err := h.usecase.SaveWithItems(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(saved))
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")

	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// ListOrders returns all orders, or the orders of one client when the
// client_id query parameter is present.
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	clientID := c.Query("client_id")

	if clientID != "" {
		list, listErr := h.usecase.ListByClientID(c.Request.Context(), clientID)
		if listErr != nil {
			appErr := mapServiceOrderError(listErr)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromServiceOrders(list))
		return
	}

	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(list))
}

func (h *ServiceOrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[order][handler] delete start id=%s", id)

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[order][handler] delete failed id=%s err=%v", id, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrClientRequired), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Invalid line item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
