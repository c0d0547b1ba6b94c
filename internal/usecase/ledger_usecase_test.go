package usecase

import (
	"context"
	"errors"
	"testing"

	"decora_ambientes/internal/domain/entities"
	"decora_ambientes/internal/usecase/interfaces"
	mock_interfaces "decora_ambientes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLedgerUseCase_Upsert(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewLedgerUseCase(nil)
		_, err := uc.Upsert(context.Background(), "   ", "", "", 100, 0)
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("snapshot read error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientLedgerRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("ledger down"))

		uc := NewLedgerUseCase(repo)
		_, err := uc.Upsert(context.Background(), "Ana", "", "", 100, 0)
		if err == nil || err.Error() != "ledger down" {
			t.Fatalf("expected ledger error, got %v", err)
		}
	})

	t.Run("creates row on first event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientLedgerRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.ClientBalance{})).DoAndReturn(
			func(_ context.Context, b entities.ClientBalance) error {
				if b.Name != "Ana" || b.TotalOwed != 1000 || b.DepositPaid != 300 {
					t.Fatalf("unexpected row: %+v", b)
				}
				if b.BalanceDue != 700 || b.Status != entities.BalanceStatusPendiente {
					t.Fatalf("row not reconciled: %+v", b)
				}
				return nil
			},
		)

		uc := NewLedgerUseCase(repo)
		b, err := uc.Upsert(context.Background(), " Ana ", "987654321", "SALA", 1000, 300)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.BalanceDue != 700 {
			t.Fatalf("unexpected balance: %+v", b)
		}
	})

	t.Run("increments deposit on existing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientLedgerRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.ClientBalance{
			{Name: "Ana", TotalOwed: 1000, DepositPaid: 300, BalanceDue: 700, Status: entities.BalanceStatusPendiente},
		}, nil)
		repo.EXPECT().UpdateBalance(gomock.Any(), "Ana", 300.0, 1000.0, 0.0, entities.BalanceStatusPagado).Return(nil)

		uc := NewLedgerUseCase(repo)
		b, err := uc.Upsert(context.Background(), "Ana", "", "", 0, 700)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.DepositPaid != 1000 || b.BalanceDue != 0 || b.Status != entities.BalanceStatusPagado {
			t.Fatalf("unexpected reconciled row: %+v", b)
		}
		if b.TotalOwed != 1000 {
			t.Fatalf("zero event total must keep the stored total, got %+v", b)
		}
	})

	t.Run("deposits are additive across events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientLedgerRepository(ctrl)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.ClientBalance{
			{Name: "Ana", TotalOwed: 1000, DepositPaid: 0, BalanceDue: 1000, Status: entities.BalanceStatusPendiente},
		}, nil)
		repo.EXPECT().UpdateBalance(gomock.Any(), "Ana", 0.0, 400.0, 600.0, entities.BalanceStatusPendiente).Return(nil)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.ClientBalance{
			{Name: "Ana", TotalOwed: 1000, DepositPaid: 400, BalanceDue: 600, Status: entities.BalanceStatusPendiente},
		}, nil)
		repo.EXPECT().UpdateBalance(gomock.Any(), "Ana", 400.0, 1000.0, 0.0, entities.BalanceStatusPagado).Return(nil)

		uc := NewLedgerUseCase(repo)
		if _, err := uc.Upsert(context.Background(), "Ana", "", "", 0, 400); err != nil {
			t.Fatalf("first upsert: %v", err)
		}
		b, err := uc.Upsert(context.Background(), "Ana", "", "", 0, 600)
		if err != nil {
			t.Fatalf("second upsert: %v", err)
		}
		if b.DepositPaid != 1000 || b.Status != entities.BalanceStatusPagado {
			t.Fatalf("expected D1+D2 paid in full, got %+v", b)
		}
	})

	t.Run("event total recomputes the balance without rewriting storage total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientLedgerRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.ClientBalance{
			{Name: "Ana", TotalOwed: 1000, DepositPaid: 300, BalanceDue: 700, Status: entities.BalanceStatusPendiente},
		}, nil)
		repo.EXPECT().UpdateBalance(gomock.Any(), "Ana", 300.0, 300.0, 1200.0, entities.BalanceStatusPendiente).Return(nil)

		uc := NewLedgerUseCase(repo)
		b, err := uc.Upsert(context.Background(), "Ana", "", "", 1500, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.TotalOwed != 1500 || b.BalanceDue != 1200 {
			t.Fatalf("unexpected recompute: %+v", b)
		}
	})

	t.Run("concurrent modification surfaces conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientLedgerRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.ClientBalance{
			{Name: "Ana", TotalOwed: 1000, DepositPaid: 300},
		}, nil)
		repo.EXPECT().UpdateBalance(gomock.Any(), "Ana", 300.0, 500.0, gomock.Any(), gomock.Any()).Return(interfaces.ErrBalanceConflict)

		uc := NewLedgerUseCase(repo)
		_, err := uc.Upsert(context.Background(), "Ana", "", "", 0, 200)
		if !errors.Is(err, interfaces.ErrBalanceConflict) {
			t.Fatalf("expected ErrBalanceConflict, got %v", err)
		}
	})
}

func TestLedgerUseCase_GetByName(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewLedgerUseCase(nil)
		_, err := uc.GetByName(context.Background(), "")
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientLedgerRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.ClientBalance{{Name: "Luis"}}, nil)

		uc := NewLedgerUseCase(repo)
		_, err := uc.GetByName(context.Background(), "Ana")
		if !errors.Is(err, ErrBalanceNotFound) {
			t.Fatalf("expected ErrBalanceNotFound, got %v", err)
		}
	})

	t.Run("exact name match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientLedgerRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.ClientBalance{
			{Name: "Luis"},
			{Name: "Ana", TotalOwed: 1000, DepositPaid: 300, BalanceDue: 700, Status: entities.BalanceStatusPendiente},
		}, nil)

		uc := NewLedgerUseCase(repo)
		b, err := uc.GetByName(context.Background(), " Ana ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.TotalOwed != 1000 || b.DepositPaid != 300 {
			t.Fatalf("unexpected row: %+v", b)
		}
	})
}
