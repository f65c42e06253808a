package handlers

import (
	"errors"
	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTaxonomyPayload = pkg.NewDomainErrorSimple("INVALID_TAXONOMY_INPUT", "Invalid taxonomy payload", http.StatusBadRequest)
)

// TaxonomyHandler handles HTTP requests for brands, equipment types and
// the order status set.

type TaxonomyHandler struct {
	usecase usecase.ITaxonomyUseCase
}

func NewTaxonomyHandler(uc usecase.ITaxonomyUseCase) *TaxonomyHandler {
	return &TaxonomyHandler{usecase: uc}
}

func (h *TaxonomyHandler) CreateBrand(c *gin.Context) {
	var payload request.LabelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaxonomyPayload.HTTPStatus, errInvalidTaxonomyPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateBrand(c.Request.Context(), payload.ToBrand(""))
	if err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBrand(created))
}

func (h *TaxonomyHandler) ListBrands(c *gin.Context) {
	brands, err := h.usecase.ListBrands(c.Request.Context())
	if err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBrands(brands))
}

func (h *TaxonomyHandler) UpdateBrand(c *gin.Context) {
	var payload request.LabelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaxonomyPayload.HTTPStatus, errInvalidTaxonomyPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateBrand(c.Request.Context(), payload.ToBrand(c.Param("id")))
	if err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBrand(updated))
}

func (h *TaxonomyHandler) DeleteBrand(c *gin.Context) {
	if err := h.usecase.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaxonomyHandler) CreateEquipmentType(c *gin.Context) {
	var payload request.LabelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaxonomyPayload.HTTPStatus, errInvalidTaxonomyPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateEquipmentType(c.Request.Context(), payload.ToEquipmentType(""))
	if err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEquipmentType(created))
}

func (h *TaxonomyHandler) ListEquipmentTypes(c *gin.Context) {
	types, err := h.usecase.ListEquipmentTypes(c.Request.Context())
	if err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEquipmentTypes(types))
}

func (h *TaxonomyHandler) UpdateEquipmentType(c *gin.Context) {
	var payload request.LabelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaxonomyPayload.HTTPStatus, errInvalidTaxonomyPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateEquipmentType(c.Request.Context(), payload.ToEquipmentType(c.Param("id")))
	if err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEquipmentType(updated))
}

func (h *TaxonomyHandler) DeleteEquipmentType(c *gin.Context) {
	if err := h.usecase.DeleteEquipmentType(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaxonomyHandler) CreateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaxonomyPayload.HTTPStatus, errInvalidTaxonomyPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateStatus(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrderStatus(created))
}

func (h *TaxonomyHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.usecase.ListStatuses(c.Request.Context())
	if err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderStatuses(statuses))
}

func (h *TaxonomyHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaxonomyPayload.HTTPStatus, errInvalidTaxonomyPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderStatus(updated))
}

func (h *TaxonomyHandler) DeleteStatus(c *gin.Context) {
	if err := h.usecase.DeleteStatus(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTaxonomyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapTaxonomyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaxonomyID), errors.Is(err, usecase.ErrTaxonomyLabel):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEntityInUse):
		return pkg.NewDomainErrorSimple("ENTITY_IN_USE", "Entity is referenced by service orders", http.StatusConflict)
	case errors.Is(err, usecase.ErrBrandNotFound):
		return pkg.NewDomainErrorSimple("BRAND_NOT_FOUND", "Brand not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEquipmentTypeNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_TYPE_NOT_FOUND", "Equipment type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderStatusNotFound):
		return pkg.NewDomainErrorSimple("STATUS_NOT_FOUND", "Order status not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
