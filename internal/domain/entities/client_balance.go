package entities

// BalanceStatus is the payment state of a client's ledger row. The values
// match what the ledger sheet historically stored.

type BalanceStatus string

const (
	BalanceStatusPagado    BalanceStatus = "Pagado"
	BalanceStatusPendiente BalanceStatus = "Pendiente"
)

// ClientBalance is one logical ledger row: amount owed, deposits paid and
// payment status for a client. A client is identified solely by exact-match
// Name; there is no separate identifier, so two people sharing a name share
// a row.
//
// Storage model (DynamoDB):
//   - PK: nombre

type ClientBalance struct {
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	Detail      string        `json:"detail"`
	TotalOwed   float64       `json:"total_owed"`
	DepositPaid float64       `json:"deposit_paid"`
	BalanceDue  float64       `json:"balance_due"`
	Status      BalanceStatus `json:"status"`
}

// Reconcile recomputes the derived fields from TotalOwed and DepositPaid:
// BalanceDue = max(TotalOwed-DepositPaid, 0) and Status is Pagado iff
// nothing is left to pay.
func (b *ClientBalance) Reconcile() {
	due := b.TotalOwed - b.DepositPaid
	if due <= 0 {
		b.BalanceDue = 0
		b.Status = BalanceStatusPagado
		return
	}
	b.BalanceDue = due
	b.Status = BalanceStatusPendiente
}
