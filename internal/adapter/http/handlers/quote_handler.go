package handlers

import (
	"errors"
	"net/http"

	request "decora_ambientes/internal/adapter/http/dto/request"
	response "decora_ambientes/internal/adapter/http/dto/response"
	"decora_ambientes/internal/usecase"
	"decora_ambientes/internal/usecase/interfaces"
	"decora_ambientes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for client quotations.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// RequestQuote prices the requested environments, records the quotation in the
// client ledger and returns the priced breakdown.
func (h *QuoteHandler) RequestQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := payload.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest).ToHTTPError())
		return
	}

	client := usecase.QuoteClient{
		Name:     payload.ClientName,
		Phone:    payload.Phone,
		District: payload.District,
	}

	result, err := h.usecase.RequestQuote(c.Request.Context(), client, payload.ToLineItems())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteResult(result))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientName), errors.Is(err, usecase.ErrNoItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoPricingFound):
		return pkg.NewDomainErrorSimple("PRICING_NOT_FOUND", "No pricing found for the requested environments", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrBalanceConflict):
		return pkg.NewDomainErrorSimple("BALANCE_CONFLICT", "Client balance was modified concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
