package repository

import (
	"testing"

	"decora_ambientes/internal/domain/entities"
)

func TestClientBalanceItemRoundTrip(t *testing.T) {
	t.Run("canonical cells round-trip exactly", func(t *testing.T) {
		cases := []struct {
			name    string
			balance entities.ClientBalance
		}{
			{
				name: "three decimal places",
				balance: entities.ClientBalance{
					Name:        "Ana",
					Phone:       "51987654321",
					Detail:      "SALA",
					TotalOwed:   951.375,
					DepositPaid: 0.125,
					BalanceDue:  951.25,
					Status:      entities.BalanceStatusPendiente,
				},
			},
			{
				name: "thousands with three decimals",
				balance: entities.ClientBalance{
					Name:        "Luis Torres",
					TotalOwed:   1000.125,
					DepositPaid: 1000.125,
					BalanceDue:  0,
					Status:      entities.BalanceStatusPagado,
				},
			},
			{
				name: "unrounded tax total",
				balance: entities.ClientBalance{
					Name:       "Rosa",
					TotalOwed:  806.25 * 1.18,
					BalanceDue: 806.25 * 1.18,
					Status:     entities.BalanceStatusPendiente,
				},
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := fromClientBalanceItem(toClientBalanceItem(tc.balance))
				if got != tc.balance {
					t.Fatalf("round trip changed balance: got %+v, want %+v", got, tc.balance)
				}
			})
		}
	})

	t.Run("legacy locale cells still parse", func(t *testing.T) {
		got := fromClientBalanceItem(clientBalanceItem{
			Nombre:   "Carmen",
			Total:    "S/ 1.250,50",
			Deposito: "300",
			Saldo:    "950,50",
			Estado:   "Pendiente",
		})

		if got.TotalOwed != 1250.5 {
			t.Fatalf("expected total 1250.5, got %v", got.TotalOwed)
		}
		if got.DepositPaid != 300.0 {
			t.Fatalf("expected deposit 300, got %v", got.DepositPaid)
		}
		if got.BalanceDue != 950.5 {
			t.Fatalf("expected balance 950.5, got %v", got.BalanceDue)
		}
	})
}

func TestParseStoredNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"951.375", 951.375},
		{"0.125", 0.125},
		{"1000.125", 1000.125},
		{"944", 944},
		{"1.250,50", 1250.5},
		{"no es numero", 0},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := parseStoredNumber(tc.in); got != tc.want {
				t.Fatalf("parseStoredNumber(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
