package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/utils"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1234.56", "1234.56"},
		{"$1,234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"€ 1.234.567,89", "1234567.89"},
		{"1 000 000", "1000000"},
		{"1_000", "1000"},
		{"1'000'000", "1000000"},
		{"Rp 5000", "5000"},
		{"USD 42", "42"},
		{"1,5", "1.5"},
		{"1,500", "1500"},
		{"1,500,000", "1500000"},
		{"0.025", "0.025"},
		{"-250", "-250"},
	}
	for _, tt := range tests {
		got, err := utils.ParseAmount(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "input %q: got %s", tt.input, got)
	}
}

func TestParseAmountErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "12.34.56,78,90", "$"} {
		_, err := utils.ParseAmount(input)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "input %q", input)
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "212.57", utils.FormatWithPrecision(decimal.RequireFromString("212.5678"), 2))
	assert.Equal(t, "100", utils.FormatWithPrecision(decimal.NewFromInt(100), 2))
}
