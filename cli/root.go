// Package cli implements the f1cli command: season views, circuits and lap
// time conversions on the terminal.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/padraicbc/f1dash/assets"
	"github.com/padraicbc/f1dash/config"
	"github.com/padraicbc/f1dash/db"
	"github.com/padraicbc/f1dash/season"
)

const envPrefix = "F1DASH"

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Execute runs the root command with os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the f1cli command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "f1cli",
		Short:        "Formula 1 season statistics on the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			bindFlags(cmd, viper.New())
			output, _ := cmd.Flags().GetString("output")
			if output != OutputTable && output != OutputJSON {
				return fmt.Errorf("unknown output %q, want %s or %s", output, OutputTable, OutputJSON)
			}
			return nil
		},
	}

	root.PersistentFlags().StringP("output", "o", OutputTable, "output format: table or json")
	root.PersistentFlags().String("source", "", "dataset source: embedded, postgres or mysql (default from DATASET_SOURCE)")
	root.PersistentFlags().String("assets", "", "assets YAML file replacing the embedded catalog")

	root.AddCommand(newSeasonCmd())
	root.AddCommand(newCircuitsCmd())
	root.AddCommand(newEnginesCmd())
	root.AddCommand(newLapTimeCmd())
	return root
}

// Bind each flag to its F1DASH_ environment variable, e.g. --output to
// F1DASH_OUTPUT. A flag given on the command line wins.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		env := fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")))
		if err := v.BindEnv(f.Name, env); err != nil {
			fmt.Fprintf(os.Stderr, "could not bind env var %s: %v\n", env, err)
		}
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				fmt.Fprintf(os.Stderr, "could not set flag %s: %v\n", f.Name, err)
			}
		}
	})
}

// loadConfig reads the server configuration with --source and --assets
// layered on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.NewViper()
	if src, _ := cmd.Flags().GetString("source"); src != "" {
		v.Set("DATASET_SOURCE", src)
	}
	if file, _ := cmd.Flags().GetString("assets"); file != "" {
		v.Set("ASSETS_FILE", file)
	}
	return config.FromViper(v)
}

func newService(ctx context.Context, cfg *config.Config) (*season.Service, error) {
	ds, err := db.Dataset(ctx, cfg)
	if err != nil {
		return nil, err
	}

	catalog := assets.Default()
	if cfg.AssetsFile != "" {
		if catalog, err = assets.LoadFile(cfg.AssetsFile); err != nil {
			return nil, err
		}
	}
	return season.NewService(ds, season.WithAssets(catalog)), nil
}

func setup(cmd *cobra.Command) (*config.Config, *season.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	svc, err := newService(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}
