package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/f1dash/dataset"
)

// SeedResult reports how many rows were offered to one table.
type SeedResult struct {
	Table string
	Rows  int
}

// resetQueries empty every table. DELETE stays inside the transaction where
// MySQL's TRUNCATE would commit it.
func resetQueries(db bun.IDB) []*bun.DeleteQuery {
	ms := tableModels()
	qs := make([]*bun.DeleteQuery, len(ms))
	for i, model := range ms {
		qs[i] = db.NewDelete().Model(model).Where("1 = 1")
	}
	return qs
}

// Seed writes p into the database in one transaction. Rows whose key already
// exists are skipped; with reset every table is emptied first.
func Seed(ctx context.Context, db *bun.DB, p dataset.Parts, reset bool) ([]SeedResult, error) {
	tables := []struct {
		name string
		rows any
		n    int
	}{
		{"teams", &p.Teams, len(p.Teams)},
		{"drivers", &p.Drivers, len(p.Drivers)},
		{"circuits", &p.Circuits, len(p.Circuits)},
		{"team_standings", &p.TeamStandings, len(p.TeamStandings)},
		{"driver_standings", &p.DriverStandings, len(p.DriverStandings)},
		{"races", &p.Races, len(p.Races)},
		{"race_details", &p.RaceDetails, len(p.RaceDetails)},
	}

	var out []SeedResult
	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if reset {
			for _, q := range resetQueries(tx) {
				if _, err := q.Exec(ctx); err != nil {
					return fmt.Errorf("reset %s: %w", q.GetTableName(), err)
				}
			}
		}
		for _, t := range tables {
			if t.n == 0 {
				continue
			}
			if _, err := tx.NewInsert().Model(t.rows).Ignore().Exec(ctx); err != nil {
				return fmt.Errorf("insert %s: %w", t.name, err)
			}
			out = append(out, SeedResult{Table: t.name, Rows: t.n})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
