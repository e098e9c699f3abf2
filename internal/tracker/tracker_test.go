package tracker

import (
	"errors"
	"testing"

	"github.com/theirongolddev/goalweek/internal/model"
	"github.com/theirongolddev/goalweek/internal/week"
)

// fakeStorage is an in-memory Storage that counts writes, so tests can
// assert that rejected operations never persist anything.
type fakeStorage struct {
	goals    []model.Goal
	sessions []model.Session
	state    model.ViewState
	writes   int
}

func (f *fakeStorage) LoadGoals() []model.Goal       { return f.goals }
func (f *fakeStorage) LoadSessions() []model.Session { return f.sessions }
func (f *fakeStorage) LoadState() model.ViewState    { return f.state }

func (f *fakeStorage) SaveGoals(g []model.Goal) error {
	f.goals = append([]model.Goal(nil), g...)
	f.writes++
	return nil
}

func (f *fakeStorage) SaveSessions(s []model.Session) error {
	f.sessions = append([]model.Session(nil), s...)
	f.writes++
	return nil
}

func (f *fakeStorage) SaveState(st model.ViewState) error {
	f.state = st
	f.writes++
	return nil
}

var (
	acceptAll  = ConfirmFunc(func(string) bool { return true })
	declineAll = ConfirmFunc(func(string) bool { return false })
)

func newTracker(t *testing.T) (*Tracker, *fakeStorage) {
	t.Helper()
	fs := &fakeStorage{}
	return New(fs, acceptAll), fs
}

func TestAddGoal_TrimsAndStoresFields(t *testing.T) {
	tr, _ := newTracker(t)

	g, err := tr.AddGoal("  Run  ", 10, " km ")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if g.ID == "" {
		t.Error("goal ID not assigned")
	}
	if g.CreatedAt.IsZero() {
		t.Error("goal CreatedAt not assigned")
	}

	got, ok := tr.GoalByID(g.ID)
	if !ok {
		t.Fatal("goal not found by returned ID")
	}
	if got.Name != "Run" || got.Unit != "km" || got.Weekly != 10 {
		t.Fatalf("goal = %+v, want trimmed Run/10/km", got)
	}
}

func TestAddGoal_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		weekly  float64
		unit    string
		wantErr error
	}{
		{"empty name", "   ", 10, "km", ErrNameRequired},
		{"empty unit", "Run", 10, "  ", ErrUnitRequired},
		{"negative weekly", "Run", -1, "km", ErrInvalidWeekly},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr, fs := newTracker(t)
			_, err := tr.AddGoal(c.in, c.weekly, c.unit)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
			if len(tr.Goals()) != 0 {
				t.Error("goal collection mutated on rejected input")
			}
			if fs.writes != 0 {
				t.Errorf("store written %d times on rejected input", fs.writes)
			}
		})
	}
}

func TestAddSession_UnknownGoalDoesNotMutateOrPersist(t *testing.T) {
	tr, fs := newTracker(t)

	_, err := tr.AddSession("nope", 4, "")
	if !errors.Is(err, ErrNoSuchGoal) {
		t.Fatalf("err = %v, want ErrNoSuchGoal", err)
	}
	if len(tr.Sessions()) != 0 {
		t.Error("session collection mutated")
	}
	if fs.writes != 0 {
		t.Errorf("store written %d times", fs.writes)
	}
}

func TestAddSession_DefaultsDateToToday(t *testing.T) {
	tr, _ := newTracker(t)
	g, err := tr.AddGoal("Run", 10, "km")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}

	s, err := tr.AddSession(g.ID, 2, "")
	if err != nil {
		t.Fatalf("AddSession: %v", err)
	}
	if s.Date != week.Today() {
		t.Fatalf("session date = %s, want today %s", s.Date, week.Today())
	}
}

func TestAddSession_RejectsNegativeAmount(t *testing.T) {
	tr, fs := newTracker(t)
	g, _ := tr.AddGoal("Run", 10, "km")
	before := fs.writes

	_, err := tr.AddSession(g.ID, -3, "")
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	if len(tr.Sessions()) != 0 {
		t.Error("session collection mutated")
	}
	if fs.writes != before {
		t.Error("store written on rejected amount")
	}
}

func TestDeleteGoal_CascadesToOwnSessionsOnly(t *testing.T) {
	tr, _ := newTracker(t)
	run, _ := tr.AddGoal("Run", 10, "km")
	read, _ := tr.AddGoal("Read", 5, "chapters")
	if _, err := tr.AddSession(run.ID, 4, ""); err != nil {
		t.Fatalf("AddSession: %v", err)
	}
	if _, err := tr.AddSession(read.ID, 1, ""); err != nil {
		t.Fatalf("AddSession: %v", err)
	}

	ok, err := tr.DeleteGoal(run.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteGoal = %v, %v", ok, err)
	}

	if _, found := tr.GoalByID(run.ID); found {
		t.Error("deleted goal still present")
	}
	if _, found := tr.GoalByID(read.ID); !found {
		t.Error("unrelated goal removed")
	}
	if len(tr.Sessions()) != 1 || tr.Sessions()[0].GoalID != read.ID {
		t.Fatalf("sessions after cascade = %+v, want only Read's", tr.Sessions())
	}
}

func TestDeleteGoal_DeclinedIsNoOp(t *testing.T) {
	fs := &fakeStorage{}
	tr := New(fs, acceptAll)
	g, _ := tr.AddGoal("Run", 10, "km")

	tr.confirm = declineAll
	before := fs.writes

	ok, err := tr.DeleteGoal(g.ID)
	if err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if ok {
		t.Error("declined delete reported as performed")
	}
	if _, found := tr.GoalByID(g.ID); !found {
		t.Error("goal removed despite declined confirmation")
	}
	if fs.writes != before {
		t.Error("store written despite declined confirmation")
	}
}

func TestEditSessionAmount_RejectsNegativeKeepsOriginal(t *testing.T) {
	tr, fs := newTracker(t)
	g, _ := tr.AddGoal("Run", 10, "km")
	s, _ := tr.AddSession(g.ID, 4, "")
	before := fs.writes

	err := tr.EditSessionAmount(s.ID, -5)
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	got, _ := tr.SessionByID(s.ID)
	if got.Amount != 4 {
		t.Fatalf("amount = %v, want original 4", got.Amount)
	}
	if fs.writes != before {
		t.Error("store written on rejected edit")
	}
}

func TestEditSessionAmount_UpdatesInPlace(t *testing.T) {
	tr, _ := newTracker(t)
	g, _ := tr.AddGoal("Run", 10, "km")
	s, _ := tr.AddSession(g.ID, 4, "")

	if err := tr.EditSessionAmount(s.ID, 6.5); err != nil {
		t.Fatalf("EditSessionAmount: %v", err)
	}
	got, _ := tr.SessionByID(s.ID)
	if got.Amount != 6.5 {
		t.Fatalf("amount = %v, want 6.5", got.Amount)
	}
	if got.Date != s.Date || got.GoalID != s.GoalID {
		t.Error("edit touched fields other than amount")
	}
}

func TestDeleteSession_RemovesOnlyThatSession(t *testing.T) {
	tr, _ := newTracker(t)
	g, _ := tr.AddGoal("Run", 10, "km")
	s1, _ := tr.AddSession(g.ID, 1, "")
	s2, _ := tr.AddSession(g.ID, 2, "")

	ok, err := tr.DeleteSession(s1.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteSession = %v, %v", ok, err)
	}
	if _, found := tr.SessionByID(s1.ID); found {
		t.Error("deleted session still present")
	}
	if _, found := tr.SessionByID(s2.ID); !found {
		t.Error("unrelated session removed")
	}
}

func TestClearAll_EmptiesBothCollections(t *testing.T) {
	tr, fs := newTracker(t)
	g, _ := tr.AddGoal("Run", 10, "km")
	_, _ = tr.AddSession(g.ID, 1, "")

	ok, err := tr.ClearAll()
	if err != nil || !ok {
		t.Fatalf("ClearAll = %v, %v", ok, err)
	}
	if len(tr.Goals()) != 0 || len(tr.Sessions()) != 0 {
		t.Error("collections not emptied")
	}
	if len(fs.goals) != 0 || len(fs.sessions) != 0 {
		t.Error("stored records not emptied")
	}
}

func TestQuickAdd_LogsOneUnitOnViewDate(t *testing.T) {
	tr, _ := newTracker(t)
	g, _ := tr.AddGoal("Run", 10, "km")
	if err := tr.SetViewDate("2024-01-03"); err != nil {
		t.Fatalf("SetViewDate: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := tr.QuickAdd(g.ID); err != nil {
			t.Fatalf("QuickAdd: %v", err)
		}
	}

	start, end := tr.weekWindow()
	if n := CountForGoalInRange(tr.Sessions(), g.ID, start, end); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	if sum := SumForGoalInRange(tr.Sessions(), g.ID, start, end); sum != 2 {
		t.Errorf("sum = %v, want 2", sum)
	}
	for _, s := range tr.Sessions() {
		if s.Amount != 1 || s.Date != "2024-01-03" {
			t.Errorf("quick-added session = %+v, want amount 1 on 2024-01-03", s)
		}
	}
}

func TestWeekNavigation_RoundTripReturnsExactDate(t *testing.T) {
	tr, _ := newTracker(t)
	if err := tr.SetViewDate("2024-06-12"); err != nil {
		t.Fatalf("SetViewDate: %v", err)
	}

	if err := tr.NextWeek(); err != nil {
		t.Fatalf("NextWeek: %v", err)
	}
	if tr.ViewDate() != "2024-06-19" {
		t.Fatalf("after NextWeek viewDate = %s, want 2024-06-19", tr.ViewDate())
	}
	if err := tr.PrevWeek(); err != nil {
		t.Fatalf("PrevWeek: %v", err)
	}
	if tr.ViewDate() != "2024-06-12" {
		t.Fatalf("round trip viewDate = %s, want 2024-06-12", tr.ViewDate())
	}
}

func TestSetViewDate_EmptyResetsToToday(t *testing.T) {
	tr, _ := newTracker(t)
	_ = tr.SetViewDate("2024-01-01")
	if err := tr.SetViewDate(""); err != nil {
		t.Fatalf("SetViewDate: %v", err)
	}
	if tr.ViewDate() != week.Today() {
		t.Fatalf("viewDate = %s, want today", tr.ViewDate())
	}
}

func TestSetViewDate_RejectsGarbage(t *testing.T) {
	tr, _ := newTracker(t)
	orig := tr.ViewDate()
	if err := tr.SetViewDate("12/06/2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
	if tr.ViewDate() != orig {
		t.Error("viewDate mutated on rejected input")
	}
}

func TestNew_DefaultsViewDateToToday(t *testing.T) {
	tr, _ := newTracker(t)
	if tr.ViewDate() != week.Today() {
		t.Fatalf("fresh viewDate = %s, want today", tr.ViewDate())
	}
}

func TestNew_KeepsPersistedViewDate(t *testing.T) {
	fs := &fakeStorage{state: model.ViewState{ViewDate: "2024-02-02"}}
	tr := New(fs, acceptAll)
	if tr.ViewDate() != "2024-02-02" {
		t.Fatalf("viewDate = %s, want persisted 2024-02-02", tr.ViewDate())
	}
}
