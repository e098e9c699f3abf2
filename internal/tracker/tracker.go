// Package tracker owns the in-memory goal and session collections and the
// mutate -> persist pipeline. Every mutation validates first, then updates
// the collections, then overwrites the persistent records; nothing is
// written when validation fails or a confirmation is declined. Rendering is
// the caller's concern and is always a full redraw after a successful
// mutation.
package tracker

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/theirongolddev/goalweek/internal/model"
	"github.com/theirongolddev/goalweek/internal/week"
)

// Storage is the persistence contract the tracker writes through.
// *store.Store satisfies it; tests substitute fakes.
type Storage interface {
	LoadGoals() []model.Goal
	SaveGoals([]model.Goal) error
	LoadSessions() []model.Session
	SaveSessions([]model.Session) error
	LoadState() model.ViewState
	SaveState(model.ViewState) error
}

// Confirmer answers yes/no for destructive operations. Declining aborts the
// operation with no state change; it is not an error.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Validation errors surfaced to the user. The operation aborts before any
// mutation or store write.
var (
	ErrNameRequired  = errors.New("goal name is required")
	ErrUnitRequired  = errors.New("unit is required")
	ErrInvalidWeekly = errors.New("weekly target must be a non-negative number")
	ErrInvalidAmount = errors.New("amount must be a non-negative number")
	ErrNoSuchGoal    = errors.New("no such goal — create one first")
	ErrNoSuchSession = errors.New("no such session")
)

// now is swappable for deterministic creation timestamps in tests.
var now = time.Now

// Tracker is the single controller owning all application state.
type Tracker struct {
	goals    []model.Goal
	sessions []model.Session
	state    model.ViewState

	storage Storage
	confirm Confirmer
}

// New loads all records from storage. An absent or corrupt record comes
// back as its default; a missing view date anchors to today.
func New(storage Storage, confirm Confirmer) *Tracker {
	t := &Tracker{
		goals:    storage.LoadGoals(),
		sessions: storage.LoadSessions(),
		state:    storage.LoadState(),
		storage:  storage,
		confirm:  confirm,
	}
	if t.state.ViewDate == "" {
		t.state.ViewDate = week.Today()
	}
	return t
}

// Goals returns the goal collection in insertion order.
func (t *Tracker) Goals() []model.Goal { return t.goals }

// Sessions returns the session collection in insertion order.
func (t *Tracker) Sessions() []model.Session { return t.sessions }

// ViewDate returns the anchor date of the currently displayed week.
func (t *Tracker) ViewDate() string { return t.state.ViewDate }

// GoalByID looks up a goal by ID.
func (t *Tracker) GoalByID(id string) (model.Goal, bool) {
	for _, g := range t.goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.Goal{}, false
}

// SessionByID looks up a session by ID.
func (t *Tracker) SessionByID(id string) (model.Session, bool) {
	for _, s := range t.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return model.Session{}, false
}

// persist overwrites all three stored records. Each record is an
// independent row; there is no cross-record transaction.
func (t *Tracker) persist() error {
	if err := t.storage.SaveGoals(t.goals); err != nil {
		return err
	}
	if err := t.storage.SaveSessions(t.sessions); err != nil {
		return err
	}
	return t.storage.SaveState(t.state)
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// AddGoal creates a goal from trimmed form values and persists it.
func (t *Tracker) AddGoal(name string, weekly float64, unit string) (model.Goal, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" {
		return model.Goal{}, ErrNameRequired
	}
	if unit == "" {
		return model.Goal{}, ErrUnitRequired
	}
	if !validAmount(weekly) {
		return model.Goal{}, ErrInvalidWeekly
	}

	g := model.Goal{
		ID:        model.NewID(),
		Name:      name,
		Weekly:    weekly,
		Unit:      unit,
		CreatedAt: now(),
	}
	t.goals = append(t.goals, g)
	return g, t.persist()
}

// DeleteGoal removes a goal and every session referencing it. Returns
// false with a nil error when the user declines the confirmation.
func (t *Tracker) DeleteGoal(goalID string) (bool, error) {
	g, ok := t.GoalByID(goalID)
	if !ok {
		return false, ErrNoSuchGoal
	}
	if !t.confirm.Confirm(fmt.Sprintf("Delete goal %q? This will also remove its sessions.", g.Name)) {
		return false, nil
	}

	goals := t.goals[:0]
	for _, g := range t.goals {
		if g.ID != goalID {
			goals = append(goals, g)
		}
	}
	t.goals = goals

	sessions := t.sessions[:0]
	for _, s := range t.sessions {
		if s.GoalID != goalID {
			sessions = append(sessions, s)
		}
	}
	t.sessions = sessions

	return true, t.persist()
}

// AddSession logs progress against an existing goal. An empty date
// defaults to today.
func (t *Tracker) AddSession(goalID string, amount float64, date string) (model.Session, error) {
	if _, ok := t.GoalByID(goalID); !ok {
		return model.Session{}, ErrNoSuchGoal
	}
	if !validAmount(amount) {
		return model.Session{}, ErrInvalidAmount
	}
	if date == "" {
		date = week.Today()
	}
	if _, err := week.ParseDay(date); err != nil {
		return model.Session{}, err
	}

	s := model.Session{
		ID:        model.NewID(),
		GoalID:    goalID,
		Amount:    amount,
		Date:      date,
		CreatedAt: now(),
	}
	t.sessions = append(t.sessions, s)
	return s, t.persist()
}

// QuickAdd logs one unit against a goal, dated to the viewed day.
func (t *Tracker) QuickAdd(goalID string) (model.Session, error) {
	return t.AddSession(goalID, 1, t.state.ViewDate)
}

// EditSessionAmount updates a session's amount in place. The date and goal
// reference are deliberately not editable.
func (t *Tracker) EditSessionAmount(sessionID string, amount float64) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	for i := range t.sessions {
		if t.sessions[i].ID == sessionID {
			t.sessions[i].Amount = amount
			return t.persist()
		}
	}
	return ErrNoSuchSession
}

// DeleteSession removes a single session. Returns false with a nil error
// when the user declines.
func (t *Tracker) DeleteSession(sessionID string) (bool, error) {
	if _, ok := t.SessionByID(sessionID); !ok {
		return false, ErrNoSuchSession
	}
	if !t.confirm.Confirm("Delete this session?") {
		return false, nil
	}

	sessions := t.sessions[:0]
	for _, s := range t.sessions {
		if s.ID != sessionID {
			sessions = append(sessions, s)
		}
	}
	t.sessions = sessions
	return true, t.persist()
}

// ClearAll empties both collections. Returns false with a nil error when
// the user declines.
func (t *Tracker) ClearAll() (bool, error) {
	if !t.confirm.Confirm("This will remove ALL goals and sessions. Continue?") {
		return false, nil
	}
	t.goals = []model.Goal{}
	t.sessions = []model.Session{}
	return true, t.persist()
}

// PrevWeek shifts the viewed week back by seven days and persists.
func (t *Tracker) PrevWeek() error {
	t.state.ViewDate = week.ShiftDays(t.state.ViewDate, -7)
	return t.persist()
}

// NextWeek shifts the viewed week forward by seven days and persists.
func (t *Tracker) NextWeek() error {
	t.state.ViewDate = week.ShiftDays(t.state.ViewDate, 7)
	return t.persist()
}

// SetViewDate anchors the displayed week to an explicit date. An empty
// value resets to today.
func (t *Tracker) SetViewDate(date string) error {
	if date == "" {
		date = week.Today()
	}
	if _, err := week.ParseDay(date); err != nil {
		return err
	}
	t.state.ViewDate = date
	return t.persist()
}
