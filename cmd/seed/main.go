// cmd/seed/main.go
// Writes the F1 dataset into PostgreSQL or MySQL so the server can read it
// with DATASET_SOURCE=postgres or DATASET_SOURCE=mysql.
//
// Usage:
//
//	DB_PASS="pgpass" go run ./cmd/seed -target postgres
//	MYSQL_DSN="user:pass@tcp(host:3306)/f1?parseTime=true" go run ./cmd/seed -target mysql -reset
//	go run ./cmd/seed -target postgres -file snapshot.json
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/padraicbc/f1dash/config"
	"github.com/padraicbc/f1dash/dataset"
	bundb "github.com/padraicbc/f1dash/db"
	applog "github.com/padraicbc/f1dash/logger"
)

func main() {
	target := flag.String("target", "", "database to seed: postgres or mysql (default DATASET_SOURCE)")
	file := flag.String("file", "", "dataset JSON file to seed instead of the embedded snapshot")
	reset := flag.Bool("reset", false, "empty every table before inserting")
	flag.Parse()

	v := config.NewViper()
	logger, err := applog.New(v.GetBool("DEBUG"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(v, *target)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ds, err := source(*file)
	if err != nil {
		logger.Fatal("read dataset failed", zap.String("file", *file), zap.Error(err))
	}

	bdb, err := bundb.Setup(ctx, cfg)
	if err != nil {
		logger.Fatal("connect failed", zap.Error(err))
	}
	defer bdb.Close()
	logger.Info("connected", zap.String("target", cfg.DatasetSource))

	if err := bundb.CreateTables(ctx, bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	results, err := bundb.Seed(ctx, bdb, ds.Parts(), *reset)
	if err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	for _, r := range results {
		logger.Info("seeded", zap.String("table", r.Table), zap.Int("rows", r.Rows))
	}
	logger.Info("seed complete", zap.Bool("reset", *reset))
}

// loadConfig reads the configuration from v with target, when set, in place
// of DATASET_SOURCE.
func loadConfig(v *viper.Viper, target string) (*config.Config, error) {
	if target != "" {
		v.Set("DATASET_SOURCE", target)
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return nil, err
	}
	if cfg.DatasetSource == config.SourceEmbedded {
		return nil, errors.New("-target must be postgres or mysql")
	}
	return cfg, nil
}

func source(file string) (*dataset.Dataset, error) {
	if file == "" {
		return dataset.Embedded(), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.Decode(f)
}
