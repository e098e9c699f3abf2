// Package cmd implements the goalweek CLI commands.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/goalweek/internal/config"
	"github.com/theirongolddev/goalweek/internal/model"
	"github.com/theirongolddev/goalweek/internal/store"
	"github.com/theirongolddev/goalweek/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	flagDataPath string
	flagYes      bool
)

var rootCmd = &cobra.Command{
	Use:   "goalweek",
	Short: "Weekly goal tracker",
	Long:  "Track weekly goals and log progress sessions against them, one Monday-to-Sunday week at a time.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataPath, "data", "d", "", "Database path (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
}

// dataPath resolves the database location: flag, then config, then default.
func dataPath() string {
	if flagDataPath != "" {
		return flagDataPath
	}
	cfg, _ := config.Load()
	if cfg.General.DataPath != "" {
		return cfg.General.DataPath
	}
	return store.DefaultPath()
}

// promptConfirmer asks y/N on stdin for destructive operations, honoring
// --yes and the assume_yes config setting.
func promptConfirmer() tracker.ConfirmFunc {
	cfg, _ := config.Load()
	return func(prompt string) bool {
		if flagYes || cfg.General.AssumeYes {
			return true
		}
		fmt.Printf("  %s [y/N]: ", prompt)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		line = strings.ToLower(strings.TrimSpace(line))
		return line == "y" || line == "yes"
	}
}

// openTracker is the shared setup path used by all commands.
func openTracker() (*tracker.Tracker, *store.Store, error) {
	st, err := store.Open(dataPath())
	if err != nil {
		return nil, nil, err
	}
	return tracker.New(st, promptConfirmer()), st, nil
}

// resolveGoal matches a user-supplied reference against goal ID prefixes
// and exact names.
func resolveGoal(tr *tracker.Tracker, ref string) (model.Goal, error) {
	var matches []model.Goal
	for _, g := range tr.Goals() {
		if g.ID == ref || g.Name == ref {
			return g, nil
		}
		if strings.HasPrefix(g.ID, ref) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Goal{}, fmt.Errorf("no goal matches %q (try `goalweek goal list`)", ref)
	default:
		return model.Goal{}, fmt.Errorf("%q is ambiguous: %d goals match", ref, len(matches))
	}
}

// resolveSession matches a user-supplied reference against session ID
// prefixes.
func resolveSession(tr *tracker.Tracker, ref string) (model.Session, error) {
	var matches []model.Session
	for _, s := range tr.Sessions() {
		if s.ID == ref {
			return s, nil
		}
		if strings.HasPrefix(s.ID, ref) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Session{}, fmt.Errorf("no session matches %q (try `goalweek sessions`)", ref)
	default:
		return model.Session{}, fmt.Errorf("%q is ambiguous: %d sessions match", ref, len(matches))
	}
}
