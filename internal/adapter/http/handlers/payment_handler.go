package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	response "oficina_xpto/internal/adapter/http/dto/response"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"
)

// PaymentHandler handles HTTP requests for Mercado Pago payments against
// finalized service orders.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentByOrderID creates/approves a payment for the order in path.
// The body is the Mercado Pago payment payload, optionally wrapped in an
// mp_payload envelope; the charged amount always comes from the order value.
func (h *PaymentHandler) CreatePaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if isPaymentGatewayMockEnabled() {
			mpPayload = json.RawMessage("{}")
		} else {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), orderID, mpPayload)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetPaymentByOrderID returns the latest payment for a service order.
func (h *PaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	payments, err := h.usecase.ListByServiceOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, domainErrors.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrOrderNotFinalized):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FINALIZED", "Service order is not finalized", http.StatusConflict)
	case errors.Is(err, domainErrors.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrPaymentNotSupported):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_SUPPORTED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
