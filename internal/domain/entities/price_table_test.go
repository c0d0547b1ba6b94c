package entities

import "testing"

func TestParseLocaleNumber(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    float64
		coerced bool
	}{
		{name: "plain integer", in: "800", want: 800},
		{name: "decimal point", in: "800.50", want: 800.5},
		{name: "decimal comma", in: "800,50", want: 800.5},
		{name: "thousands dot decimal comma", in: "1.250,50", want: 1250.5},
		{name: "thousands comma decimal dot", in: "1,250.50", want: 1250.5},
		{name: "lone dot as thousands", in: "1.250", want: 1250},
		{name: "lone comma as thousands", in: "1,250", want: 1250},
		{name: "short decimal comma", in: "1,5", want: 1.5},
		{name: "currency prefix", in: "S/ 800", want: 800},
		{name: "currency symbol and grouping", in: "$1,250.50", want: 1250.5},
		{name: "surrounding spaces", in: "  15  ", want: 15},
		{name: "negative", in: "-3.5", want: -3.5},
		{name: "empty coerces", in: "", want: 0, coerced: true},
		{name: "letters coerce", in: "abc", want: 0, coerced: true},
		{name: "separators only coerce", in: ".,", want: 0, coerced: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseLocaleNumber(tc.in)
			if got.Value != tc.want {
				t.Fatalf("value: expected %v, got %v", tc.want, got.Value)
			}
			if got.Coerced != tc.coerced {
				t.Fatalf("coerced: expected %v, got %v", tc.coerced, got.Coerced)
			}
		})
	}
}

func TestNormalizeEnvironment(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sala", "sala"},
		{"  SALA  ", "sala"},
		{"Baño", "bano"},
		{"BAÑO", "bano"},
		{"Recámara", "recamara"},
		{"jardín", "jardin"},
	}
	for _, tc := range cases {
		if got := NormalizeEnvironment(tc.in); got != tc.want {
			t.Fatalf("NormalizeEnvironment(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestBuildPriceTable(t *testing.T) {
	t.Run("empty source", func(t *testing.T) {
		table := BuildPriceTable(nil)
		if table.Len() != 0 {
			t.Fatalf("expected empty table, got %d tiers", table.Len())
		}
		if _, ok := table.Match("sala", 10); ok {
			t.Fatalf("expected no match on empty table")
		}
	})

	t.Run("corrupt cells degrade to coerced zeros", func(t *testing.T) {
		table := BuildPriceTable([]RawPriceRow{
			{Ambiente: "Sala", RangoMin: "??", RangoMax: "15", Precio: "800"},
		})
		tier := table.Tiers[0]
		if !tier.RangeMin.Coerced || tier.RangeMin.Value != 0 {
			t.Fatalf("expected coerced zero min, got %+v", tier.RangeMin)
		}
		// The row still participates in matching with min 0.
		if _, ok := table.Match("sala", 10); !ok {
			t.Fatalf("expected match against degraded row")
		}
	})

	t.Run("display casing preserved", func(t *testing.T) {
		table := BuildPriceTable([]RawPriceRow{
			{Ambiente: "  Baño Principal ", RangoMin: "0", RangoMax: "10", Precio: "500"},
		})
		if table.Tiers[0].Environment != "Baño Principal" {
			t.Fatalf("expected trimmed display name, got %q", table.Tiers[0].Environment)
		}
		if table.Tiers[0].Key != "bano principal" {
			t.Fatalf("unexpected key %q", table.Tiers[0].Key)
		}
	})
}

func TestPriceTableMatch(t *testing.T) {
	table := BuildPriceTable([]RawPriceRow{
		{Ambiente: "Sala", RangoMin: "0", RangoMax: "15", Precio: "800"},
		{Ambiente: "Sala", RangoMin: "10", RangoMax: "30", Precio: "1200"},
		{Ambiente: "Cocina", RangoMin: "0", RangoMax: "12", Precio: "650"},
	})

	t.Run("case and diacritics insensitive", func(t *testing.T) {
		tier, ok := table.Match("  SALA ", 5)
		if !ok || tier.Price.Value != 800 {
			t.Fatalf("expected sala tier at 800, got %+v ok=%v", tier, ok)
		}
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		for _, area := range []float64{0, 15} {
			tier, ok := table.Match("sala", area)
			if !ok || tier.Price.Value != 800 {
				t.Fatalf("area %v: expected first sala tier, got %+v ok=%v", area, tier, ok)
			}
		}
	})

	t.Run("overlap picks first row in source order", func(t *testing.T) {
		tier, ok := table.Match("sala", 12)
		if !ok || tier.Price.Value != 800 {
			t.Fatalf("expected first overlapping tier 800, got %+v ok=%v", tier, ok)
		}
	})

	t.Run("second tier when outside first", func(t *testing.T) {
		tier, ok := table.Match("sala", 20)
		if !ok || tier.Price.Value != 1200 {
			t.Fatalf("expected second tier 1200, got %+v ok=%v", tier, ok)
		}
	})

	t.Run("area outside every tier", func(t *testing.T) {
		if _, ok := table.Match("cocina", 20); ok {
			t.Fatalf("expected no match outside range")
		}
	})

	t.Run("unknown environment", func(t *testing.T) {
		if _, ok := table.Match("terraza", 5); ok {
			t.Fatalf("expected no match for unknown environment")
		}
	})
}
