package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/remitfair/corridor-quote-service/internal/catalog"
)

// SeedCatalog loads the embedded corridor/rail/rate dataset into the catalog
// tables. Existing rows are replaced so reseeding is repeatable.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	corridors, rates, err := catalog.SeedDataset()
	if err != nil {
		return fmt.Errorf("load seed dataset: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE corridors, rails, mid_rates RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("truncate catalog tables: %w", err)
	}

	railCount := 0
	for _, c := range corridors {
		var corridorID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO corridors (src_country, dst_country, src_currency, dst_currency)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			c.SrcCountry, c.DstCountry, c.SrcCurrency, c.DstCurrency).Scan(&corridorID)
		if err != nil {
			return fmt.Errorf("insert corridor %s-%s: %w", c.SrcCountry, c.DstCountry, err)
		}

		for pos, r := range c.Rails {
			_, err := tx.Exec(ctx,
				`INSERT INTO rails (corridor_id, position, name, fixed_fee, variable_fee_pct,
					fx_spread_bps, est_delivery_hours, send_limit_min, send_limit_max)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				corridorID, pos, r.Name, r.FixedFee, r.VariableFeePct,
				r.FXSpreadBps, r.EstDeliveryHours, r.SendLimitMin, r.SendLimitMax)
			if err != nil {
				return fmt.Errorf("insert rail %s for %s-%s: %w", r.Name, c.SrcCountry, c.DstCountry, err)
			}
			railCount++
		}
	}
	log.Info().Int("corridors", len(corridors)).Int("rails", railCount).Msg("inserted corridors")

	for _, r := range rates {
		_, err := tx.Exec(ctx,
			"INSERT INTO mid_rates (src_currency, dst_currency, rate) VALUES ($1, $2, $3)",
			r.SrcCurrency, r.DstCurrency, r.Rate)
		if err != nil {
			return fmt.Errorf("insert mid rate %s-%s: %w", r.SrcCurrency, r.DstCurrency, err)
		}
	}
	log.Info().Int("count", len(rates)).Msg("inserted mid-market rates")

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	return nil
}
