package interfaces

import (
	"context"

	"decora_ambientes/internal/domain/entities"
)

// IPriceSource abstracts the external tabular price catalog.
//
// FetchRows returns the rows in source order; the pricing engine relies on
// that order for its first-match tie-break when ranges overlap. Fields come
// back as free text (locale-formatted numerics), normalization happens in
// the domain layer.

type IPriceSource interface {
	FetchRows(ctx context.Context) ([]entities.RawPriceRow, error)
}
