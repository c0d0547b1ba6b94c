package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "decora_ambientes/internal/adapter/http/dto/request"
	response "decora_ambientes/internal/adapter/http/dto/response"
	"decora_ambientes/internal/usecase"
	"decora_ambientes/internal/usecase/interfaces"
	"decora_ambientes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDepositPayload = pkg.NewDomainErrorSimple("INVALID_DEPOSIT_INPUT", "Invalid deposit payload", http.StatusBadRequest)
)

// LedgerHandler handles HTTP requests against the client ledger: deposit
// registration and balance lookups.
type LedgerHandler struct {
	deposits usecase.IDepositUseCase
	ledger   usecase.ILedgerUseCase
}

func NewLedgerHandler(deposits usecase.IDepositUseCase, ledger usecase.ILedgerUseCase) *LedgerHandler {
	return &LedgerHandler{deposits: deposits, ledger: ledger}
}

// RegisterDeposit records a payment against a client's balance, optionally
// verifying it with the payment provider first.
func (h *LedgerHandler) RegisterDeposit(c *gin.Context) {
	var payload request.DepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDepositPayload.HTTPStatus, errInvalidDepositPayload.ToHTTPError())
		return
	}

	if err := payload.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest).ToHTTPError())
		return
	}

	cmd := usecase.DepositCommand{
		Name:              payload.ClientName,
		Phone:             payload.Phone,
		Detail:            payload.Detail,
		Total:             payload.Total,
		Amount:            payload.Amount,
		ProviderPaymentID: payload.ProviderPaymentID,
	}

	balance, err := h.deposits.RegisterDeposit(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientBalance(balance))
}

// GetBalance returns the current ledger entry for a client by exact name.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	balance, err := h.ledger.GetByName(c.Request.Context(), name)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientBalance(balance))
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientName), errors.Is(err, usecase.ErrInvalidDepositAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBalanceNotFound):
		return pkg.NewDomainErrorSimple("BALANCE_NOT_FOUND", "Client balance not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment provider rejected the credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found at the provider", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotSet):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment verification is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrBalanceConflict):
		return pkg.NewDomainErrorSimple("BALANCE_CONFLICT", "Client balance was modified concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
