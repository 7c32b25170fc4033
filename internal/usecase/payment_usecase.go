package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"oficina_xpto/internal/domain/entities"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates the "create and process payment" behavior for
// a finalized service order. The charged amount always comes from the
// order's derived value, never from the caller's payload.

type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByServiceOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	orders  interfaces.IServiceOrderRepository
	gateway interfaces.IPaymentGateway
	logger  *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orders interfaces.IServiceOrderRepository, gateway interfaces.IPaymentGateway, logger *zap.Logger) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orders: orders, gateway: gateway, logger: logger}
}

func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.Payment, error) {
	mockMode := isPaymentGatewayMockEnabled()
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, domainErrors.ErrPaymentNotSupported
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, domainErrors.ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusFinalizada {
		return entities.Payment{}, domainErrors.ErrOrderNotFinalized
	}
	u.logger.Info("payment requested",
		zap.String("order_id", order.ID),
		zap.String("amount", order.Value.String()))

	// Mercado Pago uses external_reference to reconcile events; the amount
	// source of truth is the order value in DB.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = order.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Ordem de servico %s", order.DisplayNumber())
		}
		reqMap["transaction_amount"] = order.Value.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(mpPayload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.Payment{}, mErr
		}
		providerResp = b
	} else {
		var providerStatus string
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			u.logger.Error("payment gateway failed",
				zap.String("order_id", order.ID), zap.Error(err))
			if isGatewayUnauthorized(err) {
				return entities.Payment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Payment{}, ErrPaymentGatewayBadRequest
			}
			return entities.Payment{}, err
		}
		u.logger.Info("payment gateway success",
			zap.String("order_id", order.ID),
			zap.String("provider_payment_id", providerPaymentID),
			zap.String("provider_status", providerStatus))
	}

	var parsed map[string]interface{}
	_ = json.Unmarshal(providerResp, &parsed)

	p := entities.Payment{
		ID:             providerPaymentID,
		ServiceOrderID: order.ID,
		Date:           time.Now().UTC(),
		Status:         entities.PaymentStatusAprovado,
		MPPayloadRaw:   providerResp,
		MPPayload:      parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	u.logger.Info("payment approved",
		zap.String("order_id", order.ID),
		zap.String("payment_id", created.ID))
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, domainErrors.ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByServiceOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByServiceOrderID(ctx, orderID)
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

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
