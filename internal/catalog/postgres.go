package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/remitfair/corridor-quote-service/internal/model"
	"github.com/remitfair/corridor-quote-service/internal/repository"
)

// LoadPostgres builds the catalog from the corridors, rails and mid_rates
// tables. Corridors and rates load concurrently; a failure of either aborts
// the load.
func LoadPostgres(ctx context.Context, pool *pgxpool.Pool) (*Catalog, error) {
	corridorRepo := repository.NewCorridorRepository(pool)
	rateRepo := repository.NewRateRepository(pool)

	var corridors []model.Corridor
	var rates []model.MidRate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		corridors, err = corridorRepo.ListCorridors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rates, err = rateRepo.ListRates(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New("postgres", corridors, rates)
}
