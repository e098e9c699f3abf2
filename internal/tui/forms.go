package tui

import (
	"github.com/theirongolddev/goalweek/internal/view"
	"github.com/theirongolddev/goalweek/internal/week"

	"github.com/charmbracelet/huh"
)

// formKind identifies which huh form is currently on screen.
type formKind int

const (
	formNone formKind = iota
	formAddGoal
	formLogSession
	formEditAmount
	formSetDate
)

// goalValues backs the add-goal form fields.
type goalValues struct {
	name   string
	weekly string
	unit   string
}

// logValues backs the log-session form fields.
type logValues struct {
	goalID string
	amount string
	date   string
}

func newAddGoalForm(v *goalValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal name").
				Placeholder("Run").
				Value(&v.name),
			huh.NewInput().
				Title("Weekly target").
				Placeholder("10").
				Value(&v.weekly),
			huh.NewInput().
				Title("Unit").
				Placeholder("km").
				Value(&v.unit),
		).Title("New goal"),
	)
}

// newLogSessionForm builds the session-entry form. The goal selector is
// populated from the current projection; preselect picks the initially
// highlighted goal (a freshly created goal lands here).
func newLogSessionForm(v *logValues, options []view.Option, preselect string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Name, o.ID))
	}

	v.goalID = preselect
	if v.date == "" {
		v.date = week.Today()
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Goal").
				Options(opts...).
				Value(&v.goalID),
			huh.NewInput().
				Title("Amount").
				Placeholder("1").
				Value(&v.amount),
			huh.NewInput().
				Title("Date").
				Placeholder(week.Today()).
				Value(&v.date),
		).Title("Log session"),
	)
}

func newEditAmountForm(amount *string, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New amount").
				Value(amount),
		).Title(title),
	)
}

func newSetDateForm(date *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("View date (YYYY-MM-DD, blank for today)").
				Placeholder(week.Today()).
				Value(date),
		).Title("Jump to week"),
	)
}
