package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/adapter/http/middleware"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"
)

var (
	errInvalidStockPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid stock item payload", http.StatusBadRequest)
)

// StockHandler handles HTTP requests for the stock catalogue and the
// replenishment ledger.

type StockHandler struct {
	usecase usecase.IStockUseCase
}

func NewStockHandler(uc usecase.IStockUseCase) *StockHandler {
	return &StockHandler{usecase: uc}
}

func (h *StockHandler) CreateStockItem(c *gin.Context) {
	var payload request.CreateStockItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), payload.ToInput())
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStockItem(created))
}

func (h *StockHandler) GetStockItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockItem(item))
}

func (h *StockHandler) ListStockItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockItems(items))
}

func (h *StockHandler) UpdateStockItem(c *gin.Context) {
	var payload request.UpdateStockItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("item_id"), payload.ToPatch())
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockItem(updated))
}

func (h *StockHandler) DeleteStockItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("item_id")); err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ReplenishStockItem records a purchase and raises the on-hand quantity
// atomically with the history append.
func (h *StockHandler) ReplenishStockItem(c *gin.Context) {
	var payload request.ReplenishStockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Replenish(c.Request.Context(), middleware.ActorFrom(c), c.Param("item_id"), payload.ToInput())
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockItem(updated))
}

func (h *StockHandler) ListPurchases(c *gin.Context) {
	entries, err := h.usecase.Purchases(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchases(entries))
}

func mapStockError(err error) *pkg.AppError {
	var validationErr *domainErrors.ValidationError
	switch {
	case errors.Is(err, usecase.ErrInvalidStockItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED",
			"Validation failed: "+strings.Join(validationErr.Fields, ", "), http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Missing permission for this operation", http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrStockItemNotFound):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_NOT_FOUND", "Stock item not found", http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrStockItemInUse):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_IN_USE", "Stock item is referenced by a service order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
