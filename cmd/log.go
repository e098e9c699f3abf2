package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/goalweek/internal/cli"
	"github.com/theirongolddev/goalweek/internal/tracker"

	"github.com/spf13/cobra"
)

var flagLogDate string

var logCmd = &cobra.Command{
	Use:   "log <goal> <amount>",
	Short: "Log a progress session against a goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return tracker.ErrInvalidAmount
		}

		tr, _, err := openTracker()
		if err != nil {
			return err
		}
		g, err := resolveGoal(tr, args[0])
		if err != nil {
			return err
		}
		s, err := tr.AddSession(g.ID, amount, flagLogDate)
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s %s against %q on %s.\n",
			cli.FormatAmount(s.Amount), g.Unit, g.Name, s.Date)
		return nil
	},
}

var quickCmd = &cobra.Command{
	Use:   "quick <goal>",
	Short: "Log one unit against a goal, dated to the viewed day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, err := openTracker()
		if err != nil {
			return err
		}
		g, err := resolveGoal(tr, args[0])
		if err != nil {
			return err
		}
		s, err := tr.QuickAdd(g.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Logged 1 %s against %q on %s.\n", g.Unit, g.Name, s.Date)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&flagLogDate, "date", "", "Session date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(quickCmd)
}
