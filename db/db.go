package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/padraicbc/f1dash/config"
	"github.com/padraicbc/f1dash/models"
)

// pingAttempts bounds how often Setup retries an unreachable database.
const pingAttempts = 5

// Setup opens the database named by cfg.DatasetSource and waits until it
// answers. The embedded source has no database and is an error here.
func Setup(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	var db *bun.DB
	switch cfg.DatasetSource {
	case config.SourcePostgres:
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
		db = bun.NewDB(sqldb, pgdialect.New())
	case config.SourceMySQL:
		sqldb, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		db = bun.NewDB(sqldb, mysqldialect.New())
	default:
		return nil, fmt.Errorf("dataset source %q is not a database", cfg.DatasetSource)
	}

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s: %w", cfg.DatasetSource, err)
	}
	return db, nil
}

func ping(ctx context.Context, db *bun.DB) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	return backoff.Retry(
		func() error { return db.PingContext(ctx) },
		backoff.WithContext(backoff.WithMaxRetries(b, pingAttempts), ctx),
	)
}

// tableModels lists every table in the order they are created and seeded.
func tableModels() []any {
	return []any{
		(*models.Team)(nil),
		(*models.Driver)(nil),
		(*models.Circuit)(nil),
		(*models.TeamStanding)(nil),
		(*models.DriverStanding)(nil),
		(*models.Race)(nil),
		(*models.RaceDetail)(nil),
	}
}

// CreateTables creates all tables that do not exist yet.
func CreateTables(ctx context.Context, db bun.IDB) error {
	for _, model := range tableModels() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}
	return nil
}
