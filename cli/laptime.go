package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/padraicbc/f1dash/laptime"
)

func newLapTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laptime",
		Short: "Convert lap times between M:SS.mmm and seconds",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "parse <M:SS.mmm>",
		Short: "Print a lap time in seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := laptime.Parse(args[0])
			if err != nil {
				return err
			}
			if outputFormat(cmd) == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"time": args[0], "seconds": secs})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(secs, 'f', -1, 64))
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "format <seconds>",
		Short: "Print seconds as M:SS.mmm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%q is not a number of seconds", args[0])
			}
			if outputFormat(cmd) == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"seconds": secs, "time": laptime.Format(secs)})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), laptime.Format(secs))
			return err
		},
	})
	return cmd
}
