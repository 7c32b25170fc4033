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
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler exposes the invoice eligibility gate. The fiscal documents
// themselves are emitted by an external subsystem; this API answers "may
// emission be attempted" and records the result.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CheckEmission returns the eligibility verdict plus the product/service
// line breakdown the emitter consumes.
func (h *InvoiceHandler) CheckEmission(c *gin.Context) {
	check, err := h.usecase.CheckEmission(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmissionCheck(check))
}

// RecordEmitted stores the linkage record for a document the external
// emitter issued. The gate is re-checked here, so a second record for the
// same order is refused.
func (h *InvoiceHandler) RecordEmitted(c *gin.Context) {
	var payload request.RecordInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RecordEmitted(c.Request.Context(), middleware.ActorFrom(c), c.Param("order_id"), payload.ToInput())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(created))
}

func mapInvoiceError(err error) *pkg.AppError {
	var (
		validationErr  *domainErrors.ValidationError
		notEligibleErr *domainErrors.InvoiceNotEligibleError
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
	case errors.As(err, &notEligibleErr):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_ELIGIBLE",
			"Invoice emission not eligible: "+notEligibleErr.Reason, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
