package cmd

import (
	"fmt"

	"github.com/theirongolddev/goalweek/internal/config"
	"github.com/theirongolddev/goalweek/internal/store"
	"github.com/theirongolddev/goalweek/internal/tui"
	"github.com/theirongolddev/goalweek/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		theme.SetActive(cfg.Appearance.Theme)

		// Force truecolor so themes render identically across terminals.
		lipgloss.SetColorProfile(termenv.TrueColor)

		st, err := store.Open(dataPath())
		if err != nil {
			return err
		}
		defer st.Close()

		p := tea.NewProgram(tui.NewApp(st), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running tui: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
