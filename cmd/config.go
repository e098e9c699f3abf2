package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/goalweek/internal/cli"
	"github.com/theirongolddev/goalweek/internal/config"
	"github.com/theirongolddev/goalweek/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration and data health",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		source := "defaults (no file)"
		if config.Exists() {
			source = config.Path()
		}

		table := cli.Table{
			Title:   "Configuration",
			Headers: []string{"Setting", "Value"},
			Rows: [][]string{
				{"Config file", source},
				{"Database", dataPath()},
				{"---"},
				{"general.data_path", orDash(cfg.General.DataPath)},
				{"general.assume_yes", fmt.Sprintf("%t", cfg.General.AssumeYes)},
				{"appearance.theme", cfg.Appearance.Theme},
			},
		}
		fmt.Println(cli.RenderTable(table))

		st, err := store.Open(dataPath())
		if err != nil {
			return err
		}
		defer st.Close()

		if bad := st.CorruptRecords(); len(bad) > 0 {
			fmt.Printf("Warning: %s did not parse and will load as defaults: %s\n",
				cli.Pluralize(len(bad), "stored record"), strings.Join(bad, ", "))
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(configCmd)
}
