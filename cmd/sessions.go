package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/theirongolddev/goalweek/internal/cli"
	"github.com/theirongolddev/goalweek/internal/tracker"
	"github.com/theirongolddev/goalweek/internal/week"

	"github.com/spf13/cobra"
)

var flagSessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List logged sessions, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, err := openTracker()
		if err != nil {
			return err
		}
		sessions := tr.Sessions()
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		byID := make(map[string]string)
		units := make(map[string]string)
		for _, g := range tr.Goals() {
			byID[g.ID] = g.Name
			units[g.ID] = g.Unit
		}

		sorted := append(sessions[:0:0], sessions...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date > sorted[j].Date
		})
		if flagSessionsLimit > 0 && len(sorted) > flagSessionsLimit {
			sorted = sorted[:flagSessionsLimit]
		}

		table := cli.Table{
			Title:   "Sessions",
			Headers: []string{"ID", "Goal", "Amount", "Date"},
		}
		for _, s := range sorted {
			name := byID[s.GoalID]
			if name == "" {
				name = "Unknown goal"
			}
			amount := cli.FormatAmount(s.Amount)
			if u := units[s.GoalID]; u != "" {
				amount += " " + u
			}
			dateLabel := s.Date
			if d, err := week.ParseDay(s.Date); err == nil {
				dateLabel = week.FormatDate(d)
			}
			table.Rows = append(table.Rows, []string{
				cli.ShortID(s.ID), name, amount, dateLabel,
			})
		}
		fmt.Println(cli.RenderTable(table))
		return nil
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Edit or remove a single session",
}

var sessionEditCmd = &cobra.Command{
	Use:   "edit <id-prefix> <amount>",
	Short: "Change a session's amount",
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
		s, err := resolveSession(tr, args[0])
		if err != nil {
			return err
		}
		if err := tr.EditSessionAmount(s.ID, amount); err != nil {
			return err
		}
		fmt.Printf("Session %s amount set to %s.\n", cli.ShortID(s.ID), cli.FormatAmount(amount))
		return nil
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <id-prefix>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, err := openTracker()
		if err != nil {
			return err
		}
		s, err := resolveSession(tr, args[0])
		if err != nil {
			return err
		}
		ok, err := tr.DeleteSession(s.ID)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
		fmt.Printf("Deleted session %s.\n", cli.ShortID(s.ID))
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 12, "Maximum sessions to list (0 for all)")
	sessionCmd.AddCommand(sessionEditCmd)
	sessionCmd.AddCommand(sessionRmCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(sessionCmd)
}
