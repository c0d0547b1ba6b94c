package response

import (
	"math"

	"decora_ambientes/internal/domain/entities"
	"decora_ambientes/internal/usecase"
)

// Monetary values are accumulated unrounded inside the engine and rounded
// to 2 decimals exactly once, here, at the serialization boundary.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type QuoteLineItemResponse struct {
	Label        string   `json:"label"`
	Area         float64  `json:"area"`
	UnitPrice    *float64 `json:"unit_price,omitempty"`
	Found        bool     `json:"found"`
	PriceCoerced bool     `json:"price_coerced,omitempty"`
}

type QuoteResponse struct {
	Status    string                  `json:"status"`
	LineItems []QuoteLineItemResponse `json:"line_items"`
	Subtotal  float64                 `json:"subtotal"`
	Tax       float64                 `json:"tax"`
	Total     float64                 `json:"total"`
	Ledger    BalanceResponse         `json:"ledger"`
}

func FromQuoteResult(res usecase.QuoteResult) QuoteResponse {
	items := make([]QuoteLineItemResponse, 0, len(res.Quotation.LineItems))
	for _, it := range res.Quotation.LineItems {
		item := QuoteLineItemResponse{
			Label:        it.Label,
			Area:         it.Area,
			Found:        it.Found,
			PriceCoerced: it.PriceCoerced,
		}
		if it.Found {
			price := round2(it.UnitPrice)
			item.UnitPrice = &price
		}
		items = append(items, item)
	}

	return QuoteResponse{
		Status:    "ok",
		LineItems: items,
		Subtotal:  round2(res.Quotation.Subtotal),
		Tax:       round2(res.Quotation.Tax),
		Total:     round2(res.Quotation.Total),
		Ledger:    FromClientBalance(res.Balance),
	}
}

type BalanceResponse struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone,omitempty"`
	Detail      string  `json:"detail,omitempty"`
	TotalOwed   float64 `json:"total_owed"`
	DepositPaid float64 `json:"deposit_paid"`
	BalanceDue  float64 `json:"balance_due"`
	Status      string  `json:"status"`
}

func FromClientBalance(b entities.ClientBalance) BalanceResponse {
	return BalanceResponse{
		Name:        b.Name,
		Phone:       b.Phone,
		Detail:      b.Detail,
		TotalOwed:   round2(b.TotalOwed),
		DepositPaid: round2(b.DepositPaid),
		BalanceDue:  round2(b.BalanceDue),
		Status:      string(b.Status),
	}
}
