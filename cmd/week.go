package cmd

import (
	"fmt"

	"github.com/theirongolddev/goalweek/internal/week"

	"github.com/spf13/cobra"
)

var (
	flagWeekPrev bool
	flagWeekNext bool
	flagWeekDate string
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show or move the viewed week",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, err := openTracker()
		if err != nil {
			return err
		}

		switch {
		case flagWeekPrev:
			err = tr.PrevWeek()
		case flagWeekNext:
			err = tr.NextWeek()
		case flagWeekDate != "":
			err = tr.SetViewDate(flagWeekDate)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Viewing week %s (anchored on %s)\n", week.Label(tr.ViewDate()), tr.ViewDate())
		return nil
	},
}

func init() {
	weekCmd.Flags().BoolVar(&flagWeekPrev, "prev", false, "Move one week back")
	weekCmd.Flags().BoolVar(&flagWeekNext, "next", false, "Move one week forward")
	weekCmd.Flags().StringVar(&flagWeekDate, "date", "", "Jump to the week containing this date (YYYY-MM-DD)")
	rootCmd.AddCommand(weekCmd)
}
