package interfaces

import (
	"context"
	"errors"

	"decora_ambientes/internal/domain/entities"
)

// ErrBalanceConflict is returned by UpdateBalance when the row changed
// between the snapshot read and the conditional write.
var ErrBalanceConflict = errors.New("client balance modified concurrently")

// IClientLedgerRepository abstracts the external client balance store
// (one logical row per distinct client name).
//
// UpdateBalance writes only the fields that change on reconciliation
// (deposit, balance, status) and carries the previously-read deposit as a
// compare-and-swap token: the write must fail when another writer changed
// the row in between, so concurrent deposits never silently lose updates.

type IClientLedgerRepository interface {
	// ListAll reads the full store snapshot. Lookups scan this snapshot by
	// exact name; fine at small client counts, a ceiling at larger ones.
	ListAll(ctx context.Context) ([]entities.ClientBalance, error)
	Append(ctx context.Context, b entities.ClientBalance) error
	UpdateBalance(ctx context.Context, name string, expectedDeposit, newDeposit, newBalance float64, status entities.BalanceStatus) error
}
