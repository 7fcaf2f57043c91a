package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/remitfair/corridor-quote-service/internal/model"
)

type RateRepository struct {
	pool *pgxpool.Pool
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}

// ListRates loads the full mid-market rate table.
func (r *RateRepository) ListRates(ctx context.Context) ([]model.MidRate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT src_currency, dst_currency, rate FROM mid_rates ORDER BY src_currency, dst_currency`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []model.MidRate
	for rows.Next() {
		var mr model.MidRate
		if err := rows.Scan(&mr.SrcCurrency, &mr.DstCurrency, &mr.Rate); err != nil {
			return nil, err
		}
		rates = append(rates, mr)
	}
	return rates, rows.Err()
}
