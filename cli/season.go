package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/padraicbc/f1dash/laptime"
	"github.com/padraicbc/f1dash/season"
)

// Season sections, "all" prints every one of them.
var sections = []string{
	"all", "wins", "fastest-laps", "poles", "podiums",
	"standings", "team-standings", "champion", "lap-times",
}

func newSeasonCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "season <year>",
		Short: "Print the statistics of one season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(sections, section) {
				return fmt.Errorf("unknown section %q", section)
			}
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("season %q is not a year", args[0])
			}

			cfg, svc, err := setup(cmd)
			if err != nil {
				return err
			}
			if !cfg.SeasonSupported(year) {
				return fmt.Errorf("season %d is not supported, choose one of %v", year, cfg.SupportedSeasons)
			}

			view := svc.View(year)
			if outputFormat(cmd) == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), sectionData(view, section))
			}
			return printSections(cmd.OutOrStdout(), view, section)
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", "all", fmt.Sprintf("section to print, one of %v", sections))
	return cmd
}

func sectionData(v season.View, section string) any {
	switch section {
	case "wins":
		return v.Wins
	case "fastest-laps":
		return v.FastestLaps
	case "poles":
		return v.Poles
	case "podiums":
		return v.Podiums
	case "standings":
		return v.DriverStandings
	case "team-standings":
		return v.TeamStandings
	case "champion":
		return v.Champion
	case "lap-times":
		return v.LapTimes
	}
	return v
}

func printSections(w io.Writer, v season.View, section string) error {
	printers := []struct {
		name  string
		title string
		print func() error
	}{
		{"champion", "World champion", func() error { return printChampion(w, v.Champion) }},
		{"wins", "Wins", func() error { return printCounts(w, v.Wins) }},
		{"fastest-laps", "Fastest laps", func() error { return printCounts(w, v.FastestLaps) }},
		{"poles", "Pole positions", func() error { return printCounts(w, v.Poles) }},
		{"podiums", "Podiums", func() error { return printCounts(w, v.Podiums) }},
		{"standings", "Driver standings", func() error { return printStandings(w, v.DriverStandings) }},
		{"team-standings", "Constructor standings", func() error { return printTeamStandings(w, v.TeamStandings) }},
		{"lap-times", "Average lap time", func() error { return printLapTimes(w, v.LapTimes) }},
	}

	first := true
	for _, p := range printers {
		if section != "all" && section != p.name {
			continue
		}
		if section == "all" {
			if !first {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s %d\n", p.title, v.Season)
		}
		first = false
		if err := p.print(); err != nil {
			return err
		}
	}
	return nil
}

func printChampion(w io.Writer, c *season.DriverStanding) error {
	if c == nil {
		_, err := fmt.Fprintln(w, "no standings")
		return err
	}
	_, err := fmt.Fprintf(w, "%s (%s) %g pts\n", c.Driver, c.Team, c.Points)
	return err
}

func printCounts(w io.Writer, rows []season.DriverCount) error {
	t := newTable(w, "DRIVER", "COUNT")
	for _, r := range rows {
		t.row(r.Name, r.Count)
	}
	return t.flush()
}

func printStandings(w io.Writer, rows []season.DriverStanding) error {
	t := newTable(w, "POS", "DRIVER", "TEAM", "POINTS")
	for _, r := range rows {
		t.row(r.Pos, r.Driver, r.Team, r.Points)
	}
	return t.flush()
}

func printTeamStandings(w io.Writer, rows []season.TeamStanding) error {
	t := newTable(w, "POS", "TEAM", "ENGINE", "POINTS")
	for _, r := range rows {
		t.row(r.Pos, r.Team, r.Engine, r.Points)
	}
	return t.flush()
}

func printLapTimes(w io.Writer, rows []season.LapTime) error {
	t := newTable(w, "RACE", "CIRCUIT", "LAP")
	for _, r := range rows {
		t.row(r.RaceID, r.Circuit, laptime.Format(r.Seconds))
	}
	return t.flush()
}
