package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The deposit flow uses it to verify a provider payment before touching the
// ledger: the returned amount/status are the source of truth over whatever
// the caller claims.

type IPaymentGateway interface {
	GetPayment(ctx context.Context, providerPaymentID string) (amount float64, providerStatus string, providerResponse json.RawMessage, err error)
}
