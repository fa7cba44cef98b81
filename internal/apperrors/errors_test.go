package apperrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatify/zakat_backend/internal/apperrors"
)

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	assert.ErrorIs(t, apperrors.NewInvalidInput("amount", "-5", "error-negative-value"), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, apperrors.NewConfiguration("gold price missing"), apperrors.ErrConfiguration)
	assert.ErrorIs(t, apperrors.NewCalculation("division by zero"), apperrors.ErrCalculation)
}

func TestCollect(t *testing.T) {
	assert.NoError(t, apperrors.Collect(nil))

	single := apperrors.NewInvalidInput("a", "", "r")
	assert.Equal(t, error(single), apperrors.Collect([]error{single}))

	combined := apperrors.Collect([]error{
		apperrors.NewInvalidInput("a", "", "r"),
		apperrors.NewInvalidInput("b", "", "r"),
	})
	require.Error(t, combined)
	assert.ErrorIs(t, combined, apperrors.ErrInvalidInput)
	assert.Contains(t, combined.Error(), "2 errors")
}

func TestWithSourceTagsLabel(t *testing.T) {
	err := apperrors.WithSource(apperrors.NewInvalidInput("amount", "-5", "error-negative-value"), "Gold")
	assert.Contains(t, err.Error(), "[Gold]")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// The original error is not mutated.
	orig := apperrors.NewInvalidInput("amount", "-5", "error-negative-value")
	_ = apperrors.WithSource(orig, "Gold")
	assert.Empty(t, orig.SourceLabel)

	plain := errors.New("plain")
	assert.Equal(t, plain, apperrors.WithSource(plain, "Gold"))
	assert.Equal(t, error(orig), apperrors.WithSource(orig, ""))
}
