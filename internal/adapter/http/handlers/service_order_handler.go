package handlers

import (
	"errors"
	"fmt"
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
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for the service order lifecycle.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder opens a new order, reserving stock and consuming one
// quota slot in the same transaction.
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), payload.ToInput(middleware.TenantFrom(c)))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func (h *ServiceOrderHandler) UpdateServiceOrder(c *gin.Context) {
	var payload request.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("order_id"), payload.ToPatch())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

// FinalizeServiceOrder moves the order to its terminal status. Re-finalizing
// an already finalized order returns the order unchanged.
func (h *ServiceOrderHandler) FinalizeServiceOrder(c *gin.Context) {
	finalized, err := h.usecase.Finalize(c.Request.Context(), middleware.ActorFrom(c), c.Param("order_id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(finalized))
}

func (h *ServiceOrderHandler) DeleteServiceOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("order_id")); err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// GetQuota exposes the tenant's order quota counter.
func (h *ServiceOrderHandler) GetQuota(c *gin.Context) {
	counter, err := h.usecase.Quota(c.Request.Context(), middleware.TenantFrom(c))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuota(counter))
}

func mapServiceOrderError(err error) *pkg.AppError {
	var (
		validationErr *domainErrors.ValidationError
		stockErr      *domainErrors.InsufficientStockError
		quotaErr      *domainErrors.QuotaExceededError
		finalizedErr  *domainErrors.OrderFinalizedError
	)
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED",
			"Validation failed: "+strings.Join(validationErr.Fields, ", "), http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Missing permission for this operation", http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrStockItemNotFound):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_NOT_FOUND", "Stock item not found", http.StatusNotFound)
	case errors.As(err, &stockErr):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK",
			fmt.Sprintf("Insufficient stock for item %s: requested %d, available %d",
				stockErr.StockItemID, stockErr.Requested, stockErr.Available), http.StatusConflict)
	case errors.As(err, &quotaErr):
		return pkg.NewDomainErrorSimple("ORDER_QUOTA_EXCEEDED",
			fmt.Sprintf("Service order quota exceeded: %d of %d used", quotaErr.Used, quotaErr.Total), http.StatusConflict)
	case errors.As(err, &finalizedErr):
		return pkg.NewDomainErrorSimple("ORDER_FINALIZED", "Finalized service orders cannot be edited", http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
