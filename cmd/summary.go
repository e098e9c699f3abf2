package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/goalweek/internal/cli"
	"github.com/theirongolddev/goalweek/internal/model"
	"github.com/theirongolddev/goalweek/internal/view"
	"github.com/theirongolddev/goalweek/internal/week"

	"github.com/spf13/cobra"
)

var flagSummaryDate string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the weekly goal summary",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&flagSummaryDate, "date", "", "View the week containing this date (YYYY-MM-DD)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	tr, _, err := openTracker()
	if err != nil {
		return err
	}
	if flagSummaryDate != "" {
		if err := tr.SetViewDate(flagSummaryDate); err != nil {
			return err
		}
	}

	vm := view.Project(tr.Goals(), tr.Sessions(), tr.ViewDate())

	fmt.Println()
	fmt.Println(cli.RenderTitle("WEEK  " + vm.WeekLabel))
	fmt.Println()

	if vm.GoalsEmpty {
		fmt.Println("  " + view.EmptyGoals)
		fmt.Println("  Run `goalweek goal add <name> <weekly> <unit>` to create one.")
		fmt.Println()
		return nil
	}

	start, _ := week.ParseDay(vm.ViewDate)
	start = week.StartOfWeek(start)

	goalTable := cli.Table{
		Title:   "Goals",
		Headers: []string{"Goal", "Progress", "Sessions", "Mon-Sun", "Done"},
	}
	for _, g := range vm.Goals {
		goalTable.Rows = append(goalTable.Rows, []string{
			g.Name,
			cli.FormatTarget(g.Done, g.Target, g.Unit),
			fmt.Sprintf("%d", g.Sessions),
			cli.RenderSparkline(dailySums(tr.Sessions(), g.ID, start)),
			cli.RenderProgressBar(g.Percent, 10),
		})
	}
	fmt.Println(cli.RenderTable(goalTable))

	if vm.SessionsEmpty {
		fmt.Println("  " + view.EmptySessions)
		fmt.Println()
		return nil
	}

	recentTable := cli.Table{
		Title:   "Recent sessions",
		Headers: []string{"ID", "Session", "Date"},
	}
	for _, s := range vm.Recent {
		recentTable.Rows = append(recentTable.Rows, []string{
			cli.ShortID(s.ID),
			s.Title(),
			s.DateLabel,
		})
	}
	fmt.Println(cli.RenderTable(recentTable))

	return nil
}

// dailySums buckets a goal's logged amounts into the seven days starting at
// the given Monday, for sparkline rendering.
func dailySums(sessions []model.Session, goalID string, start time.Time) []float64 {
	sums := make([]float64, 7)
	for i := range sums {
		dayStart := start.AddDate(0, 0, i)
		dayEnd := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(),
			23, 59, 59, 999_000_000, dayStart.Location())
		for _, s := range sessions {
			if s.GoalID != goalID {
				continue
			}
			d, err := week.ParseDay(s.Date)
			if err != nil {
				continue
			}
			if !d.Before(dayStart) && !d.After(dayEnd) {
				sums[i] += s.Amount
			}
		}
	}
	return sums
}
