package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/goalweek/internal/cli"
	"github.com/theirongolddev/goalweek/internal/tracker"
	"github.com/theirongolddev/goalweek/internal/week"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <name> <weekly> <unit>",
	Short: "Create a goal with a weekly target",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		weekly, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return tracker.ErrInvalidWeekly
		}

		tr, _, err := openTracker()
		if err != nil {
			return err
		}
		g, err := tr.AddGoal(args[0], weekly, args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Created goal %q (%s / week, id %s)\n",
			g.Name, cli.FormatAmount(g.Weekly)+" "+g.Unit, cli.ShortID(g.ID))
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, err := openTracker()
		if err != nil {
			return err
		}
		goals := tr.Goals()
		if len(goals) == 0 {
			fmt.Println("No goals yet. Run `goalweek goal add <name> <weekly> <unit>`.")
			return nil
		}

		table := cli.Table{
			Title:   "Goals",
			Headers: []string{"ID", "Name", "Weekly", "Unit", "Created"},
		}
		for _, g := range goals {
			table.Rows = append(table.Rows, []string{
				cli.ShortID(g.ID),
				g.Name,
				cli.FormatAmount(g.Weekly),
				g.Unit,
				week.FormatDate(g.CreatedAt),
			})
		}
		fmt.Println(cli.RenderTable(table))
		return nil
	},
}

var goalRmCmd = &cobra.Command{
	Use:   "rm <goal>",
	Short: "Delete a goal and its sessions",
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
		ok, err := tr.DeleteGoal(g.ID)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
		fmt.Printf("Deleted goal %q and its sessions.\n", g.Name)
		return nil
	},
}

func init() {
	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalRmCmd)
	rootCmd.AddCommand(goalCmd)
}
