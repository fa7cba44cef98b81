package utils

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
)

// currencySymbols are stripped from user-entered amounts before parsing.
var currencySymbols = []string{"$", "€", "£", "¥", "₹", "₺", "Rp", "RM", "USD", "EUR", "IDR", "MYR", "SAR", "AED"}

// ParseAmount turns a user-entered monetary string into a decimal. It strips
// currency symbols, spaces, underscores and apostrophes, then resolves the
// separator convention: when both '.' and ',' appear the one occurring last is
// the decimal separator; a lone comma is treated as a decimal separator unless
// it is followed by exactly three digits (a thousands group).
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, apperrors.NewInvalidInput("amount", raw, "error-amount-empty")
	}
	for _, sym := range currencySymbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	for _, sep := range []string{" ", " ", "_", "'"} {
		s = strings.ReplaceAll(s, sep, "")
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			// European style: 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// US style: 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 != 3 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.NewInvalidInput("amount", raw, "error-amount-format")
	}
	return d, nil
}

// FormatWithPrecision formats an amount rounded to the given number of
// decimal places.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
