// Package tui provides the interactive Bubble Tea dashboard for goalweek.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/goalweek/internal/tracker"
	"github.com/theirongolddev/goalweek/internal/tui/components"
	"github.com/theirongolddev/goalweek/internal/tui/theme"
	"github.com/theirongolddev/goalweek/internal/view"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 60
	wideLayoutWidth  = 100

	paneGoals    = 0
	paneSessions = 1
)

// App is the root Bubble Tea model. Every successful mutation recomputes
// the projection and the whole screen is rebuilt from it; there is no
// incremental patching.
type App struct {
	tracker *tracker.Tracker
	vm      view.Model

	width  int
	height int

	activePane  int
	goalCursor  int
	sessCursor  int
	showHelp    bool
	notice      string
	noticeErr   bool
	quickTarget string // goal preselected in the log form (last added or highlighted)

	// Active huh form, if any
	form     *huh.Form
	formKind formKind
	goalVals goalValues
	logVals  logValues
	editVals string
	dateVals string
	editID   string // session being edited

	// Confirm overlay state. granted is shared with the tracker's
	// Confirmer so the overlay's answer flows through the injected
	// confirmation capability.
	confirmPrompt string
	confirmAction func() error
	granted       *bool
}

// NewApp builds the dashboard on top of the given storage.
func NewApp(storage tracker.Storage) App {
	granted := new(bool)
	tr := tracker.New(storage, tracker.ConfirmFunc(func(string) bool {
		return *granted
	}))

	a := App{
		tracker: tr,
		granted: granted,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// recompute rebuilds the projection and clamps the cursors.
func (a *App) recompute() {
	a.vm = view.Project(a.tracker.Goals(), a.tracker.Sessions(), a.tracker.ViewDate())

	if a.goalCursor >= len(a.vm.Goals) {
		a.goalCursor = len(a.vm.Goals) - 1
	}
	if a.goalCursor < 0 {
		a.goalCursor = 0
	}
	if a.sessCursor >= len(a.vm.Recent) {
		a.sessCursor = len(a.vm.Recent) - 1
	}
	if a.sessCursor < 0 {
		a.sessCursor = 0
	}
}

// runMutation executes a tracker operation, routing failures to the
// status-bar notice and recomputing the projection on success.
func (a *App) runMutation(op func() error) {
	a.notice = ""
	a.noticeErr = false
	if err := op(); err != nil {
		a.notice = err.Error()
		a.noticeErr = true
		return
	}
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// An active form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Confirm overlay intercepts all keys
		if a.confirmAction != nil {
			return a.updateConfirm(msg.String())
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = true
			return a, nil

		case key.Matches(msg, keys.Pane):
			a.activePane = 1 - a.activePane
			return a, nil

		case key.Matches(msg, keys.Down):
			if a.activePane == paneGoals {
				if a.goalCursor < len(a.vm.Goals)-1 {
					a.goalCursor++
				}
			} else if a.sessCursor < len(a.vm.Recent)-1 {
				a.sessCursor++
			}
			return a, nil
		case key.Matches(msg, keys.Up):
			if a.activePane == paneGoals {
				if a.goalCursor > 0 {
					a.goalCursor--
				}
			} else if a.sessCursor > 0 {
				a.sessCursor--
			}
			return a, nil

		case key.Matches(msg, keys.PrevWeek):
			a.runMutation(a.tracker.PrevWeek)
			return a, nil
		case key.Matches(msg, keys.NextWeek):
			a.runMutation(a.tracker.NextWeek)
			return a, nil
		case key.Matches(msg, keys.JumpWeek):
			a.dateVals = a.tracker.ViewDate()
			return a.openForm(formSetDate, newSetDateForm(&a.dateVals))

		case key.Matches(msg, keys.AddGoal):
			a.goalVals = goalValues{}
			return a.openForm(formAddGoal, newAddGoalForm(&a.goalVals))

		case key.Matches(msg, keys.Log):
			return a.openLogForm()
		case msg.Type == tea.KeyEnter:
			// enter on a highlighted goal also opens the log form
			if a.activePane == paneGoals && !a.vm.GoalsEmpty {
				return a.openLogForm()
			}
			return a, nil

		case key.Matches(msg, keys.Quick):
			if g, ok := a.selectedGoal(); ok {
				a.runMutation(func() error {
					_, err := a.tracker.QuickAdd(g.ID)
					return err
				})
			}
			return a, nil

		case key.Matches(msg, keys.Edit):
			if s, ok := a.selectedSession(); ok {
				a.editID = s.ID
				a.editVals = ""
				title := fmt.Sprintf("Edit amount — %s (%s)", s.GoalName, s.Unit)
				if s.GoalName == "" {
					title = "Edit amount"
				}
				return a.openForm(formEditAmount, newEditAmountForm(&a.editVals, title))
			}
			return a, nil

		case key.Matches(msg, keys.DelSess):
			if s, ok := a.selectedSession(); ok {
				id := s.ID
				a.confirmPrompt = "Delete this session?"
				a.confirmAction = func() error {
					_, err := a.tracker.DeleteSession(id)
					return err
				}
			}
			return a, nil

		case key.Matches(msg, keys.DelGoal):
			if g, ok := a.selectedGoal(); ok {
				id := g.ID
				a.confirmPrompt = fmt.Sprintf("Delete goal %q? This will also remove its sessions.", g.Name)
				a.confirmAction = func() error {
					_, err := a.tracker.DeleteGoal(id)
					return err
				}
			}
			return a, nil

		case key.Matches(msg, keys.Clear):
			a.confirmPrompt = "This will remove ALL goals and sessions. Continue?"
			a.confirmAction = func() error {
				_, err := a.tracker.ClearAll()
				return err
			}
			return a, nil
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.) to an active form
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) openForm(kind formKind, f *huh.Form) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.form = f
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	a.notice = ""
	return a, a.form.Init()
}

func (a App) openLogForm() (tea.Model, tea.Cmd) {
	if a.vm.SelectorDisabled {
		a.notice = view.EmptyGoals
		a.noticeErr = true
		return a, nil
	}
	preselect := a.quickTarget
	if preselect == "" {
		if g, ok := a.selectedGoal(); ok {
			preselect = g.ID
		}
	}
	a.logVals = logValues{}
	return a.openForm(formLogSession, newLogSessionForm(&a.logVals, a.vm.Selector, preselect))
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		a.submitForm(kind)
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

// submitForm dispatches a completed form into the tracker. Validation
// failures surface as notices; nothing is mutated or persisted on
// rejection.
func (a *App) submitForm(kind formKind) {
	switch kind {
	case formAddGoal:
		a.runMutation(func() error {
			g, err := a.tracker.AddGoal(a.goalVals.name, parseAmount(a.goalVals.weekly), a.goalVals.unit)
			if err != nil {
				return err
			}
			a.quickTarget = g.ID // preselect in the next log form
			return nil
		})

	case formLogSession:
		a.runMutation(func() error {
			_, err := a.tracker.AddSession(a.logVals.goalID, parseAmount(a.logVals.amount), strings.TrimSpace(a.logVals.date))
			return err
		})

	case formEditAmount:
		a.runMutation(func() error {
			return a.tracker.EditSessionAmount(a.editID, parseAmount(a.editVals))
		})

	case formSetDate:
		a.runMutation(func() error {
			return a.tracker.SetViewDate(strings.TrimSpace(a.dateVals))
		})
	}
}

// updateConfirm handles the y/n confirm overlay. The answer is granted to
// the tracker's injected Confirmer only for the duration of the call.
func (a App) updateConfirm(key string) (tea.Model, tea.Cmd) {
	action := a.confirmAction
	a.confirmAction = nil
	a.confirmPrompt = ""

	switch key {
	case "y", "Y", "enter":
		*a.granted = true
		a.runMutation(action)
		*a.granted = false
	default:
		// Declined: a normal abort, nothing changed
	}
	return a, nil
}

// parseAmount turns form text into a number, mapping garbage to NaN so the
// tracker rejects it with its own validation error.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (a App) selectedGoal() (view.GoalRow, bool) {
	if len(a.vm.Goals) == 0 || a.goalCursor >= len(a.vm.Goals) {
		return view.GoalRow{}, false
	}
	return a.vm.Goals[a.goalCursor], true
}

func (a App) selectedSession() (view.SessionRow, bool) {
	if len(a.vm.Recent) == 0 || a.sessCursor >= len(a.vm.Recent) {
		return view.SessionRow{}, false
	}
	return a.vm.Recent[a.sessCursor], true
}

// ─── View ───────────────────────────────────────────────────────

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  goalweek needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.confirmAction != nil {
		return a.viewConfirm()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	h := a.height

	header := a.renderHeader(w)
	statusBar := components.RenderStatusBar(w, a.notice, a.noticeErr)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < 3 {
		contentH = 3
	}

	var content string
	if w >= wideLayoutWidth {
		paneW := w/2 - 2
		goals := a.renderGoalsPane(paneW)
		sessions := a.renderSessionsPane(paneW)
		content = lipgloss.JoinHorizontal(lipgloss.Top, goals, sessions)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left,
			a.renderGoalsPane(w-2),
			a.renderSessionsPane(w-2),
		)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)

	out := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, out,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderHeader(w int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	line := titleStyle.Render("◈ goalweek") +
		dimStyle.Render("  ·  ") +
		labelStyle.Render(a.vm.WeekLabel) +
		dimStyle.Render(fmt.Sprintf("  (viewing %s)", a.vm.ViewDate))

	return lipgloss.NewStyle().Width(w).Padding(0, 1).Render(line) + "\n"
}

func (a App) paneStyle(active bool, w int) lipgloss.Style {
	t := theme.Active
	border := t.Border
	if active {
		border = t.BorderAccent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(w).
		Padding(0, 1)
}

func (a App) renderGoalsPane(w int) string {
	t := theme.Active
	innerW := w - 4

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)
	cursorStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	var b strings.Builder
	b.WriteString(headStyle.Render("Goals"))
	b.WriteString("\n\n")

	if a.vm.GoalsEmpty {
		b.WriteString(emptyStyle.Render(view.EmptyGoals))
	}

	barW := innerW - 8
	if barW < 10 {
		barW = 10
	}
	if barW > 40 {
		barW = 40
	}

	for i, g := range a.vm.Goals {
		cursor := "  "
		if a.activePane == paneGoals && i == a.goalCursor {
			cursor = cursorStyle.Render("▸ ")
		}
		b.WriteString(cursor)
		b.WriteString(nameStyle.Render(truncStr(g.Name, innerW-2)))
		b.WriteString("\n  ")
		b.WriteString(metaStyle.Render(g.Meta()))
		b.WriteString("\n  ")
		b.WriteString(components.ProgressBar(g.Percent, barW))
		if i < len(a.vm.Goals)-1 {
			b.WriteString("\n\n")
		}
	}

	return a.paneStyle(a.activePane == paneGoals, w).Render(b.String())
}

func (a App) renderSessionsPane(w int) string {
	t := theme.Active
	innerW := w - 4

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)
	cursorStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("Recent sessions (latest %d)", view.RecentLimit)))
	b.WriteString("\n\n")

	if a.vm.SessionsEmpty {
		b.WriteString(emptyStyle.Render(view.EmptySessions))
	}

	for i, s := range a.vm.Recent {
		cursor := "  "
		if a.activePane == paneSessions && i == a.sessCursor {
			cursor = cursorStyle.Render("▸ ")
		}
		b.WriteString(cursor)
		b.WriteString(titleStyle.Render(truncStr(s.Title(), innerW-14)))
		b.WriteString(dateStyle.Render("  " + s.DateLabel))
		if i < len(a.vm.Recent)-1 {
			b.WriteString("\n")
		}
	}

	return a.paneStyle(a.activePane == paneSessions, w).Render(b.String())
}

func (a App) viewConfirm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3)

	promptStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	keysStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	card := cardStyle.Render(promptStyle.Render(a.confirmPrompt) + "\n\n" +
		keysStyle.Render("[y] yes    [n] no"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range helpBindings {
		h := bind.Help()
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-5s", h.Key)),
			descStyle.Render(h.Desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
