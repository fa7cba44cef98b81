package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/zakatify/zakat_backend/internal/apperrors"
	"github.com/zakatify/zakat_backend/internal/core/domain"
	"github.com/zakatify/zakat_backend/internal/core/ports"
	"github.com/zakatify/zakat_backend/internal/models"
	"github.com/zakatify/zakat_backend/internal/utils/mapping"
)

type PgxNisabPriceRepository struct {
	BaseRepository
}

// NewNisabPriceRepository creates the repository for the threshold history.
func NewNisabPriceRepository(pool *pgxpool.Pool) ports.NisabPriceRepository {
	return &PgxNisabPriceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ ports.NisabPriceRepository = (*PgxNisabPriceRepository)(nil)

// SaveNisabPrice inserts or updates the threshold effective on a given day.
func (r *PgxNisabPriceRepository) SaveNisabPrice(ctx context.Context, price ports.NisabPrice) error {
	row := mapping.ToModelNisabPrice(price, time.Now().UTC())
	query := `
		INSERT INTO nisab_price_history (effective_date, threshold, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (effective_date) DO UPDATE SET
			threshold = EXCLUDED.threshold,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		domain.DayOf(row.EffectiveDate),
		row.Threshold,
		row.CreatedAt,
		row.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save nisab price for %s: %w", row.EffectiveDate.Format(time.DateOnly), err)
	}
	return nil
}

// NisabThresholdAt resolves the most recent threshold effective at or before
// the given date. A date before the first recorded entry is a configuration
// error, never a silent zero.
func (r *PgxNisabPriceRepository) NisabThresholdAt(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	query := `
		SELECT threshold
		FROM nisab_price_history
		WHERE effective_date <= $1
		ORDER BY effective_date DESC
		LIMIT 1;
	`
	var threshold decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, domain.DayOf(date)).Scan(&threshold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.NewConfiguration(
				"no nisab threshold on record for " + domain.DayOf(date).Format(time.DateOnly))
		}
		return decimal.Zero, fmt.Errorf("failed to resolve nisab threshold at %s: %w", date.Format(time.DateOnly), err)
	}
	return threshold, nil
}

// ListNisabPrices retrieves the history entries within [from, to].
func (r *PgxNisabPriceRepository) ListNisabPrices(ctx context.Context, from, to time.Time) ([]ports.NisabPrice, error) {
	query := `
		SELECT effective_date, threshold, created_at, last_updated_at
		FROM nisab_price_history
		WHERE effective_date BETWEEN $1 AND $2
		ORDER BY effective_date;
	`
	rows, err := r.Pool.Query(ctx, query, domain.DayOf(from), domain.DayOf(to))
	if err != nil {
		return nil, fmt.Errorf("failed to query nisab price history: %w", err)
	}
	defer rows.Close()

	modelPrices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.NisabPrice, error) {
		var price models.NisabPrice
		err := row.Scan(
			&price.EffectiveDate,
			&price.Threshold,
			&price.CreatedAt,
			&price.LastUpdatedAt,
		)
		return price, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []ports.NisabPrice{}, nil
		}
		return nil, fmt.Errorf("failed to scan nisab price history: %w", err)
	}

	return mapping.ToPortNisabPriceSlice(modelPrices), nil
}
