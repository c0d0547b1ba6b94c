package entities

import "time"

// TaxRate is the IGV surcharge applied to the subtotal of matched items.
const TaxRate = 0.18

// LineItemRequest is one requested environment to be priced. It only lives
// for the duration of a single pricing request.

type LineItemRequest struct {
	Environment string  `json:"environment"`
	Area        float64 `json:"area"`
}

// ResolvedLineItem is the pricing outcome for one requested item.
//
// Label is the environment name upper-cased for display; when the same
// environment appears more than once in a request each occurrence gets a
// 1-based ordinal suffix in request order ("SALA 1", "SALA 2").
// PriceCoerced mirrors the matched tier's coercion flag so a 0 price that
// came from a corrupt source cell stays distinguishable from a real 0.

type ResolvedLineItem struct {
	Label        string  `json:"label"`
	Area         float64 `json:"area"`
	UnitPrice    float64 `json:"unit_price"`
	Found        bool    `json:"found"`
	PriceCoerced bool    `json:"price_coerced,omitempty"`
}

// Quotation aggregates resolved items into a tax-inclusive total.
//
// Subtotal, Tax and Total are kept unrounded here; rounding to 2 decimals
// happens only when the quotation is serialized outward, so rounding error
// never compounds across line items.

type Quotation struct {
	LineItems []ResolvedLineItem `json:"line_items"`
	Subtotal  float64            `json:"subtotal"`
	Tax       float64            `json:"tax"`
	Total     float64            `json:"total"`
}

// MatchedCount returns how many line items found a price tier.
func (q Quotation) MatchedCount() int {
	n := 0
	for _, it := range q.LineItems {
		if it.Found {
			n++
		}
	}
	return n
}

// QuotationRecord is the audit row appended for every successful quotation.
//
// Storage model (DynamoDB):
//   - PK: id

type QuotationRecord struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	Phone       string    `json:"phone"`
	Detail      string    `json:"detail"`
	TotalQuoted float64   `json:"total_quoted"`
	AmountPaid  float64   `json:"amount_paid"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
