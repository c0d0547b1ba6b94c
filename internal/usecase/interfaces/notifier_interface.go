package interfaces

import "context"

// INotifier abstracts the outbound message sink (e.g. a WhatsApp gateway).
//
// Send is fire-and-forget from the caller's perspective: a delivery failure
// must never fail the pricing or ledger result it accompanies.

type INotifier interface {
	Send(ctx context.Context, phone, message string) error
}
