package request

import (
	"errors"

	"decora_ambientes/internal/domain/entities"
)

var (
	ErrMissingClientName = errors.New("missing client name")
	ErrMissingItems      = errors.New("missing line items")
)

// QuoteItemRequest is one requested environment in a quote payload.

type QuoteItemRequest struct {
	Environment string  `json:"environment"`
	Area        float64 `json:"area"`
}

// QuoteRequest is the canonical quote payload. UnmarshalJSON tolerates the
// historical alias keys of every field (see aliases.go).

type QuoteRequest struct {
	ClientName string             `json:"client_name"`
	Phone      string             `json:"phone"`
	District   string             `json:"district"`
	Items      []QuoteItemRequest `json:"items"`
}

func (r *QuoteRequest) UnmarshalJSON(data []byte) error {
	fields, err := newAliasFields(data)
	if err != nil {
		return err
	}

	r.ClientName = fields.text("client_name", "nombre", "name")
	r.Phone = fields.text("phone", "celular", "telefono")
	r.District = fields.text("district", "distrito")

	r.Items = nil
	for _, rawItem := range fields.list("items", "ambientes") {
		itemFields, err := newAliasFields(rawItem)
		if err != nil {
			return err
		}
		r.Items = append(r.Items, QuoteItemRequest{
			Environment: itemFields.text("environment", "ambiente"),
			Area:        itemFields.number("area", "metraje", "m2"),
		})
	}
	return nil
}

func (r QuoteRequest) Validate() error {
	if r.ClientName == "" {
		return ErrMissingClientName
	}
	if len(r.Items) == 0 {
		return ErrMissingItems
	}
	return nil
}

// ToLineItems maps the payload into domain line items. Negative areas are
// clamped to 0, same treatment as any other malformed numeric input.
func (r QuoteRequest) ToLineItems() []entities.LineItemRequest {
	items := make([]entities.LineItemRequest, 0, len(r.Items))
	for _, it := range r.Items {
		area := it.Area
		if area < 0 {
			area = 0
		}
		items = append(items, entities.LineItemRequest{
			Environment: it.Environment,
			Area:        area,
		})
	}
	return items
}
