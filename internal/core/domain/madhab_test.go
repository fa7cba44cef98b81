package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zakatify/zakat_backend/internal/core/domain"
)

func TestMadhabRules(t *testing.T) {
	tests := []struct {
		name          string
		madhab        domain.Madhab
		wantStandard  domain.NisabStandard
		wantExemption bool
	}{
		{"hanafi uses lower of two and taxes jewelry", domain.Hanafi, domain.NisabLowerOfTwo, false},
		{"shafi uses gold and exempts jewelry", domain.Shafi, domain.NisabGold, true},
		{"maliki uses gold and exempts jewelry", domain.Maliki, domain.NisabGold, true},
		{"hanbali uses lower of two and exempts jewelry", domain.Hanbali, domain.NisabLowerOfTwo, true},
		{"unknown falls back to shafi positions", domain.Madhab("JAFARI"), domain.NisabGold, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := tt.madhab.Rules()
			assert.Equal(t, tt.wantStandard, rules.NisabStandard)
			assert.Equal(t, tt.wantExemption, rules.JewelryExempt)
		})
	}
}

func TestParseMadhab(t *testing.T) {
	tests := []struct {
		input string
		want  domain.Madhab
		ok    bool
	}{
		{"hanafi", domain.Hanafi, true},
		{"SHAFI", domain.Shafi, true},
		{"Maliki", domain.Maliki, true},
		{"hanbali", domain.Hanbali, true},
		{"sufi", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := domain.ParseMadhab(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseNisabStandard(t *testing.T) {
	got, ok := domain.ParseNisabStandard("lower-of-two")
	assert.True(t, ok)
	assert.Equal(t, domain.NisabLowerOfTwo, got)

	_, ok = domain.ParseNisabStandard("platinum")
	assert.False(t, ok)
}

func TestConfigOverridePrecedence(t *testing.T) {
	cfg := domain.ZakatConfig{Madhab: domain.Shafi}
	assert.Equal(t, domain.NisabGold, cfg.NisabStandard())

	cfg.NisabStandardOverride = domain.NisabSilver
	assert.Equal(t, domain.NisabSilver, cfg.NisabStandard())
}

func TestIsMonetary(t *testing.T) {
	monetary := []domain.WealthCategory{
		domain.CategoryGold, domain.CategorySilver, domain.CategoryBusiness,
		domain.CategoryIncome, domain.CategoryInvestment,
	}
	for _, c := range monetary {
		assert.True(t, c.IsMonetary(), "%s should pool", c)
	}
	for _, c := range []domain.WealthCategory{
		domain.CategoryAgriculture, domain.CategoryLivestock,
		domain.CategoryMining, domain.CategoryRikaz, domain.CategoryFitrah,
	} {
		assert.False(t, c.IsMonetary(), "%s should not pool", c)
	}
}
