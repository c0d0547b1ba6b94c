package interfaces

import (
	"context"

	"decora_ambientes/internal/domain/entities"
)

// IQuotationRepository abstracts the quotation audit store.

type IQuotationRepository interface {
	Append(ctx context.Context, q entities.QuotationRecord) (entities.QuotationRecord, error)
}
