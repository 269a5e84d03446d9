package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"

	"github.com/padraicbc/f1dash/config"
	"github.com/padraicbc/f1dash/dataset"
)

// Dataset returns the records selected by cfg.DatasetSource: the embedded
// snapshot, or a one-off read of a seeded database.
func Dataset(ctx context.Context, cfg *config.Config) (*dataset.Dataset, error) {
	if cfg.DatasetSource == config.SourceEmbedded {
		return dataset.Embedded(), nil
	}

	bdb, err := Setup(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer bdb.Close()

	return Load(ctx, bdb)
}

// Load reads every table into a Dataset. Tables are queried concurrently and
// rows are ordered by primary key, which fixes the tie-break order.
func Load(ctx context.Context, db bun.IDB) (*dataset.Dataset, error) {
	var p dataset.Parts

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return selectAll(ctx, db, &p.Teams, "id") })
	g.Go(func() error { return selectAll(ctx, db, &p.Drivers, "id") })
	g.Go(func() error { return selectAll(ctx, db, &p.Circuits, "id") })
	g.Go(func() error { return selectAll(ctx, db, &p.TeamStandings, "id") })
	g.Go(func() error { return selectAll(ctx, db, &p.DriverStandings, "id") })
	g.Go(func() error { return selectAll(ctx, db, &p.Races, "id") })
	g.Go(func() error { return selectAll(ctx, db, &p.RaceDetails, "id_race", "id_driver") })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	ds, err := dataset.New(p)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return ds, nil
}

func selectAll(ctx context.Context, db bun.IDB, dest any, order ...string) error {
	if err := db.NewSelect().Model(dest).Order(order...).Scan(ctx); err != nil {
		return fmt.Errorf("select %T: %w", dest, err)
	}
	return nil
}
