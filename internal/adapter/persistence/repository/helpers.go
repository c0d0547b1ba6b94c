package repository

import (
	"os"
	"strconv"

	"decora_ambientes/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Numeric columns are stored as text: the spreadsheets this data was
// migrated from kept everything as free-form cells.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseStoredNumber reads back a numeric cell. Cells we wrote ourselves are
// canonical floatToString output and must round-trip exactly, so try a plain
// parse first; the locale parser is only for legacy migrated cells, and its
// thousands-separator heuristic would misread a canonical value with exactly
// three decimals ("951.375" is not 951375).
func parseStoredNumber(s string) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return entities.ParseLocaleNumber(s).Value
}
