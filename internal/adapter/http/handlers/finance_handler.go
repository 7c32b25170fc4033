package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/adapter/http/middleware"
	domainErrors "oficina_xpto/internal/domain/errors"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"
)

var (
	errInvalidFinancePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid finance payload", http.StatusBadRequest)
	errInvalidPeriodQuery    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid year/month query", http.StatusBadRequest)
)

// FinanceHandler handles HTTP requests for the cash ledgers and the monthly
// financial rollup.

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var payload request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancePayload.HTTPStatus, errInvalidFinancePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RecordTransaction(c.Request.Context(), middleware.ActorFrom(c), payload.ToInput())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCashTransaction(created))
}

func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.usecase.ListTransactions(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCashTransactions(transactions))
}

func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var payload request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancePayload.HTTPStatus, errInvalidFinancePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RecordExpense(c.Request.Context(), middleware.ActorFrom(c), payload.ToInput())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExpense(created))
}

func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.ListExpenses(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

// MonthlySummary rolls revenue, expenses, profit and margin up for the
// calendar month in the year/month query parameters.
func (h *FinanceHandler) MonthlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}

	summary, err := h.usecase.MonthlySummary(c.Request.Context(), year, time.Month(month))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMonthlySummary(summary))
}

func (h *FinanceHandler) TotalInvested(c *gin.Context) {
	total, err := h.usecase.TotalInvested(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TotalInvestedResponse{TotalInvested: total.InexactFloat64()})
}

func mapFinanceError(err error) *pkg.AppError {
	var validationErr *domainErrors.ValidationError
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid reporting period", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED",
			"Validation failed: "+strings.Join(validationErr.Fields, ", "), http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Missing permission for this operation", http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
