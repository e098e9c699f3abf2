package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all goals and sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, err := openTracker()
		if err != nil {
			return err
		}
		ok, err := tr.ClearAll()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
		fmt.Println("All goals and sessions removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
