package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/remitfair/corridor-quote-service/internal/model"
)

type CorridorRepository struct {
	pool *pgxpool.Pool
}

func NewCorridorRepository(pool *pgxpool.Pool) *CorridorRepository {
	return &CorridorRepository{pool: pool}
}

// ListCorridors loads every corridor with its rails in stored order.
func (r *CorridorRepository) ListCorridors(ctx context.Context) ([]model.Corridor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, src_country, dst_country, src_currency, dst_currency
		FROM corridors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var corridors []model.Corridor
	var ids []int64
	for rows.Next() {
		var id int64
		var c model.Corridor
		if err := rows.Scan(&id, &c.SrcCountry, &c.DstCountry, &c.SrcCurrency, &c.DstCurrency); err != nil {
			return nil, err
		}
		ids = append(ids, id)
		corridors = append(corridors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	railsByCorridor, err := r.listRails(ctx)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		corridors[i].Rails = railsByCorridor[id]
	}
	return corridors, nil
}

func (r *CorridorRepository) listRails(ctx context.Context) (map[int64][]model.Rail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT corridor_id, name, fixed_fee, variable_fee_pct, fx_spread_bps,
			est_delivery_hours, send_limit_min, send_limit_max
		FROM rails ORDER BY corridor_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]model.Rail)
	for rows.Next() {
		var corridorID int64
		var rail model.Rail
		if err := rows.Scan(&corridorID, &rail.Name, &rail.FixedFee, &rail.VariableFeePct,
			&rail.FXSpreadBps, &rail.EstDeliveryHours, &rail.SendLimitMin, &rail.SendLimitMax); err != nil {
			return nil, err
		}
		out[corridorID] = append(out[corridorID], rail)
	}
	return out, rows.Err()
}
