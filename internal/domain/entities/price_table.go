package entities

import (
	"strconv"
	"strings"
)

// RawPriceRow is one row of the external price source, as fetched: every
// numeric field is free text because the source sheet mixes locale formats
// ("1.250,50", "1,250.50", "S/ 800").

type RawPriceRow struct {
	Ambiente string `json:"ambiente"`
	RangoMin string `json:"rango_min"`
	RangoMax string `json:"rango_max"`
	Precio   string `json:"precio"`
}

// NumCell is a parsed numeric cell. Coerced marks values that failed to
// parse and were forced to 0, so callers can tell "genuinely zero" from
// "corrupt source cell" without the load ever failing.

type NumCell struct {
	Value   float64
	Coerced bool
}

// PriceTier is one normalized (environment, area range, price) row. Area
// only selects the tier; Price is a fixed amount, not a per-area rate.

type PriceTier struct {
	Environment string
	Key         string
	RangeMin    NumCell
	RangeMax    NumCell
	Price       NumCell
}

// Contains reports whether area falls inside the tier, bounds inclusive.
func (t PriceTier) Contains(area float64) bool {
	return t.RangeMin.Value <= area && area <= t.RangeMax.Value
}

// PriceTable is the in-memory normalized view of the tiered price source,
// rebuilt from raw rows on every pricing request. Row order is preserved:
// when ranges overlap, the first row in source order wins.

type PriceTable struct {
	Tiers []PriceTier

	byKey map[string][]int
}

// BuildPriceTable normalizes raw rows into a PriceTable. A partial or
// corrupt source degrades row by row (coerced zeros) instead of aborting;
// an empty input yields an empty table and no error.
func BuildPriceTable(raw []RawPriceRow) PriceTable {
	table := PriceTable{
		Tiers: make([]PriceTier, 0, len(raw)),
		byKey: make(map[string][]int, len(raw)),
	}

	for _, row := range raw {
		display := strings.TrimSpace(row.Ambiente)
		tier := PriceTier{
			Environment: display,
			Key:         NormalizeEnvironment(row.Ambiente),
			RangeMin:    ParseLocaleNumber(row.RangoMin),
			RangeMax:    ParseLocaleNumber(row.RangoMax),
			Price:       ParseLocaleNumber(row.Precio),
		}
		idx := len(table.Tiers)
		table.Tiers = append(table.Tiers, tier)
		table.byKey[tier.Key] = append(table.byKey[tier.Key], idx)
	}
	return table
}

// Match returns the first tier, in source row order, whose environment key
// equals the normalized input and whose range contains area.
func (p PriceTable) Match(environment string, area float64) (PriceTier, bool) {
	key := NormalizeEnvironment(environment)
	for _, idx := range p.byKey[key] {
		if p.Tiers[idx].Contains(area) {
			return p.Tiers[idx], true
		}
	}
	return PriceTier{}, false
}

func (p PriceTable) Len() int {
	return len(p.Tiers)
}

// NormalizeEnvironment builds the matching key for an environment label:
// trimmed, lower-cased, Spanish diacritics stripped ("  Baño " -> "bano").
func NormalizeEnvironment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := diacriticFold[r]; ok {
			b.WriteRune(folded)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var diacriticFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'ä': 'a', 'â': 'a',
	'é': 'e', 'è': 'e', 'ë': 'e', 'ê': 'e',
	'í': 'i', 'ì': 'i', 'ï': 'i', 'î': 'i',
	'ó': 'o', 'ò': 'o', 'ö': 'o', 'ô': 'o',
	'ú': 'u', 'ù': 'u', 'ü': 'u', 'û': 'u',
	'ñ': 'n',
}

// ParseLocaleNumber cleans and parses a locale-formatted numeric cell. The
// source data is inconsistent: "." may be a thousands separator and "," the
// decimal separator, or the reverse, and cells may carry currency symbols
// ("S/ 800", "$1,250.50"). Unparseable input coerces to 0 with the Coerced
// flag set; it never returns an error.
func ParseLocaleNumber(s string) NumCell {
	cleaned := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			cleaned = append(cleaned, r)
		}
	}
	if len(cleaned) == 0 {
		return NumCell{Coerced: true}
	}

	text := resolveSeparators(string(cleaned))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return NumCell{Coerced: true}
	}
	return NumCell{Value: v}
}

// resolveSeparators rewrites "." / "," usage into plain decimal-point form.
// When both appear the last one is the decimal separator. A lone separator
// followed by exactly three digits is read as a thousands separator
// ("1.250" -> 1250), anything else as a decimal point ("800,5" -> 800.5).
func resolveSeparators(s string) string {
	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 || isThousandsSeparator(s, lastComma) {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 || isThousandsSeparator(s, lastDot) {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}

func isThousandsSeparator(s string, pos int) bool {
	return pos > 0 && len(s)-pos-1 == 3
}
