package response

import (
	"testing"

	"decora_ambientes/internal/domain/entities"
	"decora_ambientes/internal/usecase"
)

func TestFromQuoteResult(t *testing.T) {
	t.Run("rounds monetary fields to two decimals", func(t *testing.T) {
		res := usecase.QuoteResult{
			Quotation: entities.Quotation{
				LineItems: []entities.ResolvedLineItem{
					{Label: "SALA", Area: 12.5, UnitPrice: 833.333333, Found: true},
				},
				Subtotal: 833.333333,
				Tax:      149.99999994,
				Total:    983.33333294,
			},
			Balance: entities.ClientBalance{
				Name:        "Ana",
				TotalOwed:   983.33333294,
				DepositPaid: 0,
				BalanceDue:  983.33333294,
				Status:      entities.BalanceStatusPendiente,
			},
		}

		resp := FromQuoteResult(res)

		if resp.Status != "ok" {
			t.Fatalf("expected status ok, got %q", resp.Status)
		}
		if resp.Subtotal != 833.33 {
			t.Fatalf("expected subtotal 833.33, got %v", resp.Subtotal)
		}
		if resp.Tax != 150.0 {
			t.Fatalf("expected tax 150, got %v", resp.Tax)
		}
		if resp.Total != 983.33 {
			t.Fatalf("expected total 983.33, got %v", resp.Total)
		}
		if len(resp.LineItems) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(resp.LineItems))
		}
		if resp.LineItems[0].UnitPrice == nil || *resp.LineItems[0].UnitPrice != 833.33 {
			t.Fatalf("expected unit price 833.33, got %v", resp.LineItems[0].UnitPrice)
		}
		if resp.Ledger.BalanceDue != 983.33 {
			t.Fatalf("expected balance due 983.33, got %v", resp.Ledger.BalanceDue)
		}
	})

	t.Run("omits unit price for unmatched items", func(t *testing.T) {
		res := usecase.QuoteResult{
			Quotation: entities.Quotation{
				LineItems: []entities.ResolvedLineItem{
					{Label: "TERRAZA", Area: 40, Found: false},
				},
			},
		}

		resp := FromQuoteResult(res)

		if resp.LineItems[0].UnitPrice != nil {
			t.Fatalf("expected nil unit price, got %v", *resp.LineItems[0].UnitPrice)
		}
		if resp.LineItems[0].Found {
			t.Fatal("expected found=false")
		}
	})

	t.Run("flags coerced prices", func(t *testing.T) {
		res := usecase.QuoteResult{
			Quotation: entities.Quotation{
				LineItems: []entities.ResolvedLineItem{
					{Label: "COCINA", Area: 8, UnitPrice: 0, Found: true, PriceCoerced: true},
				},
			},
		}

		resp := FromQuoteResult(res)

		if !resp.LineItems[0].PriceCoerced {
			t.Fatal("expected price_coerced=true")
		}
	})
}

func TestFromClientBalance(t *testing.T) {
	b := entities.ClientBalance{
		Name:        "Luis Torres",
		Phone:       "51987654321",
		Detail:      "SALA, COCINA",
		TotalOwed:   1250.506,
		DepositPaid: 300.004,
		BalanceDue:  950.501,
		Status:      entities.BalanceStatusPendiente,
	}

	resp := FromClientBalance(b)

	if resp.Name != "Luis Torres" {
		t.Fatalf("expected name Luis Torres, got %q", resp.Name)
	}
	if resp.TotalOwed != 1250.51 {
		t.Fatalf("expected total owed 1250.51, got %v", resp.TotalOwed)
	}
	if resp.DepositPaid != 300.0 {
		t.Fatalf("expected deposit 300, got %v", resp.DepositPaid)
	}
	if resp.BalanceDue != 950.5 {
		t.Fatalf("expected balance due 950.5, got %v", resp.BalanceDue)
	}
	if resp.Status != "Pendiente" {
		t.Fatalf("expected status Pendiente, got %q", resp.Status)
	}
}
