package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/padraicbc/f1dash/models"
	"github.com/padraicbc/f1dash/season"
)

func newCircuitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "circuits",
		Short: "List all circuits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, svc, err := setup(cmd)
			if err != nil {
				return err
			}

			details := lo.FilterMap(svc.Dataset().Circuits(), func(c models.Circuit, _ int) (season.CircuitDetail, bool) {
				return svc.Circuit(c.ID)
			})
			if outputFormat(cmd) == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), details)
			}

			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "CITY", "COUNTRY", "LAPS", "KM", "RECORD")
			for _, d := range details {
				t.row(d.ID, d.Name, d.City, d.Country, d.Laps, d.LengthKm, d.WRTime)
			}
			return t.flush()
		},
	}
}

func newEnginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "Show how many teams each engine supplier powers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, svc, err := setup(cmd)
			if err != nil {
				return err
			}

			groups := svc.Engines()
			if outputFormat(cmd) == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), groups)
			}

			t := newTable(cmd.OutOrStdout(), "ENGINE", "TEAMS", "SHARE")
			for _, g := range groups {
				t.row(g.Label, g.Count, fmt.Sprintf("%.0f%%", g.Share*100))
			}
			return t.flush()
		},
	}
}
