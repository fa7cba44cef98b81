package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
	"github.com/zakatify/zakat_backend/internal/core/services"
)

func testConfig(goldPrice, silverPrice string) domain.ZakatConfig {
	return domain.ZakatConfig{
		GoldPricePerGram:   decimal.RequireFromString(goldPrice),
		SilverPricePerGram: decimal.RequireFromString(silverPrice),
		Madhab:             domain.Shafi,
	}
}

func TestMonetaryNisabThreshold(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.ZakatConfig
		want    string
		wantErr bool
	}{
		{
			name: "gold standard",
			cfg:  testConfig("100", "1"),
			want: "8500",
		},
		{
			name: "silver standard",
			cfg: func() domain.ZakatConfig {
				c := testConfig("100", "1")
				c.NisabStandardOverride = domain.NisabSilver
				return c
			}(),
			want: "595",
		},
		{
			name: "lower of two picks silver",
			cfg: func() domain.ZakatConfig {
				c := testConfig("100", "1")
				c.Madhab = domain.Hanafi
				return c
			}(),
			want: "595",
		},
		{
			name: "lower of two picks gold when silver is dearer",
			cfg: func() domain.ZakatConfig {
				c := testConfig("1", "100")
				c.Madhab = domain.Hanafi
				return c
			}(),
			want: "85",
		},
		{
			name: "missing gold price fails",
			cfg: domain.ZakatConfig{
				SilverPricePerGram: decimal.NewFromInt(1),
				Madhab:             domain.Shafi,
			},
			wantErr: true,
		},
		{
			name: "lower of two requires both prices",
			cfg: domain.ZakatConfig{
				GoldPricePerGram: decimal.NewFromInt(100),
				Madhab:           domain.Hanafi,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.MonetaryNisabThreshold(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestNisabThresholdHonorsWeightOverrides(t *testing.T) {
	cfg := testConfig("100", "1")
	cfg.NisabGoldGrams = decimal.NewFromInt(90)

	got, err := services.GoldNisabThreshold(cfg)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(9000)), "got %s", got)
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, services.ValidateConfig(testConfig("100", "1")))
	assert.Error(t, services.ValidateConfig(domain.ZakatConfig{Madhab: domain.Shafi}))
}
