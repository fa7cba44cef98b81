package ports

import (
	"github.com/google/uuid"

	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// ZakatCalculator is the shared calculation contract implemented by every
// asset rule module. Calculate is a pure function of the asset state and the
// threshold configuration; it never mutates the receiver.
type ZakatCalculator interface {
	Calculate(cfg domain.ZakatConfig) (domain.CalculationResult, error)
	// Label returns the human label for portfolio reports, empty if unset.
	Label() string
	// ID returns the stable identifier of the asset.
	ID() uuid.UUID
}
