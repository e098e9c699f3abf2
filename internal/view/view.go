// Package view projects the current goal/session/view-date state into a
// render-ready model. It is a pure function of its inputs and carries no
// UI-toolkit types, so both the TUI and the CLI paint from the same
// projection and aggregation stays testable without a UI harness.
package view

import (
	"fmt"
	"sort"

	"github.com/theirongolddev/goalweek/internal/model"
	"github.com/theirongolddev/goalweek/internal/tracker"
	"github.com/theirongolddev/goalweek/internal/week"
)

// RecentLimit caps the recent-sessions list.
const RecentLimit = 12

// Empty-state copy shown when a collection has nothing to render.
const (
	EmptyGoals    = "No goals yet. Create one to get started."
	EmptySessions = "No sessions yet."
)

// GoalRow is one rendered goal with its weekly progress.
type GoalRow struct {
	ID       string
	Name     string
	Done     float64
	Target   float64
	Unit     string
	Sessions int
	Percent  int
}

// Meta renders the "done/target unit · N sessions" line for the row.
func (r GoalRow) Meta() string {
	noun := "sessions"
	if r.Sessions == 1 {
		noun = "session"
	}
	return fmt.Sprintf("%.2f / %.2f %s · %d %s", r.Done, r.Target, r.Unit, r.Sessions, noun)
}

// Option is one entry of the session-entry goal selector.
type Option struct {
	ID   string
	Name string
}

// SessionRow is one rendered entry of the recent-sessions list.
type SessionRow struct {
	ID        string
	GoalID    string
	Amount    float64
	Unit      string
	GoalName  string
	Date      string // YYYY-MM-DD
	DateLabel string // formatted for display
}

// Title renders the "amount unit — goal" line for the row.
func (r SessionRow) Title() string {
	if r.GoalName == "" {
		return fmt.Sprintf("%g — Unknown goal", r.Amount)
	}
	return fmt.Sprintf("%g %s — %s", r.Amount, r.Unit, r.GoalName)
}

// Model is everything a renderer needs for one full redraw.
type Model struct {
	WeekLabel string
	ViewDate  string

	Goals      []GoalRow
	GoalsEmpty bool

	// Selector holds the session-entry goal options; SelectorDisabled is
	// set (with a placeholder option) when no goals exist.
	Selector            []Option
	SelectorDisabled    bool
	SelectorPlaceholder string

	Recent        []SessionRow
	SessionsEmpty bool
}

// Project builds the full view model for the week containing viewDate.
func Project(goals []model.Goal, sessions []model.Session, viewDate string) Model {
	m := Model{
		WeekLabel: week.Label(viewDate),
		ViewDate:  viewDate,
	}

	day, err := week.ParseDay(viewDate)
	if err != nil {
		day, _ = week.ParseDay(week.Today())
	}
	start, end := week.StartOfWeek(day), week.EndOfWeek(day)

	if len(goals) == 0 {
		m.GoalsEmpty = true
		m.SelectorDisabled = true
		m.SelectorPlaceholder = "— No goals yet —"
	}
	for _, g := range goals {
		done := tracker.SumForGoalInRange(sessions, g.ID, start, end)
		m.Goals = append(m.Goals, GoalRow{
			ID:       g.ID,
			Name:     g.Name,
			Done:     done,
			Target:   g.Weekly,
			Unit:     g.Unit,
			Sessions: tracker.CountForGoalInRange(sessions, g.ID, start, end),
			Percent:  tracker.Percent(done, g.Weekly),
		})
		m.Selector = append(m.Selector, Option{ID: g.ID, Name: g.Name})
	}

	if len(sessions) == 0 {
		m.SessionsEmpty = true
		return m
	}

	byID := make(map[string]model.Goal, len(goals))
	for _, g := range goals {
		byID[g.ID] = g
	}

	recent := append([]model.Session(nil), sessions...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date // ISO strings sort by date
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	for _, s := range recent {
		row := SessionRow{
			ID:     s.ID,
			GoalID: s.GoalID,
			Amount: s.Amount,
			Date:   s.Date,
		}
		if g, ok := byID[s.GoalID]; ok {
			row.Unit = g.Unit
			row.GoalName = g.Name
		}
		if d, err := week.ParseDay(s.Date); err == nil {
			row.DateLabel = week.FormatDate(d)
		} else {
			row.DateLabel = s.Date
		}
		m.Recent = append(m.Recent, row)
	}

	return m
}
