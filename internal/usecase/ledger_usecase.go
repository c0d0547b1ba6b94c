package usecase

import (
	"context"
	"errors"
	"strings"

	"decora_ambientes/internal/domain/entities"
	"decora_ambientes/internal/usecase/interfaces"
)

var (
	ErrBalanceNotFound = errors.New("client balance not found")
)

// ILedgerUseCase exposes per-client balance reconciliation.

type ILedgerUseCase interface {
	Upsert(ctx context.Context, name, phone, detail string, total, deposit float64) (entities.ClientBalance, error)
	GetByName(ctx context.Context, name string) (entities.ClientBalance, error)
}

type LedgerUseCase struct {
	repo interfaces.IClientLedgerRepository
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(repo interfaces.IClientLedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{repo: repo}
}

// Upsert merges one confirmed quotation/payment event into the client's
// balance row: create on first event, otherwise increment the paid deposit
// and recompute balance/status. At most one row exists per client name, and
// the name is the only identity - two clients sharing a name share a row.
//
// On update only the changed fields (deposit, balance, status) are written
// back; the stored total keeps its original value even when the event
// carries a newer one, matching the historical ledger behavior. The write
// carries the previously-read deposit as a compare-and-swap token, so a
// concurrent upsert for the same name surfaces interfaces.ErrBalanceConflict
// instead of losing an update.
func (u *LedgerUseCase) Upsert(ctx context.Context, name, phone, detail string, total, deposit float64) (entities.ClientBalance, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ClientBalance{}, ErrInvalidClientName
	}

	snapshot, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.ClientBalance{}, err
	}

	for _, existing := range snapshot {
		if existing.Name != name {
			continue
		}

		updated := existing
		updated.DepositPaid = existing.DepositPaid + deposit
		if total > 0 {
			updated.TotalOwed = total
		}
		updated.Reconcile()

		if err := u.repo.UpdateBalance(ctx, name, existing.DepositPaid, updated.DepositPaid, updated.BalanceDue, updated.Status); err != nil {
			return entities.ClientBalance{}, err
		}
		return updated, nil
	}

	created := entities.ClientBalance{
		Name:        name,
		Phone:       phone,
		Detail:      detail,
		TotalOwed:   total,
		DepositPaid: deposit,
	}
	created.Reconcile()
	if err := u.repo.Append(ctx, created); err != nil {
		return entities.ClientBalance{}, err
	}
	return created, nil
}

// GetByName returns the ledger row for an exact client name.
func (u *LedgerUseCase) GetByName(ctx context.Context, name string) (entities.ClientBalance, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ClientBalance{}, ErrInvalidClientName
	}

	snapshot, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.ClientBalance{}, err
	}
	for _, b := range snapshot {
		if b.Name == name {
			return b, nil
		}
	}
	return entities.ClientBalance{}, ErrBalanceNotFound
}
