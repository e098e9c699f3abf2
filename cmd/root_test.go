package cmd

import (
	"testing"
	"time"

	"github.com/theirongolddev/goalweek/internal/model"
	"github.com/theirongolddev/goalweek/internal/tracker"
	"github.com/theirongolddev/goalweek/internal/week"
)

func mustMonday(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := week.ParseDay(iso)
	if err != nil {
		t.Fatalf("parsing %s: %v", iso, err)
	}
	return week.StartOfWeek(d)
}

type memStorage struct {
	goals    []model.Goal
	sessions []model.Session
	state    model.ViewState
}

func (m *memStorage) LoadGoals() []model.Goal              { return m.goals }
func (m *memStorage) LoadSessions() []model.Session        { return m.sessions }
func (m *memStorage) LoadState() model.ViewState           { return m.state }
func (m *memStorage) SaveGoals(g []model.Goal) error       { m.goals = g; return nil }
func (m *memStorage) SaveSessions(s []model.Session) error { m.sessions = s; return nil }
func (m *memStorage) SaveState(st model.ViewState) error   { m.state = st; return nil }

func testTracker() *tracker.Tracker {
	st := &memStorage{
		goals: []model.Goal{
			{ID: "aaa111", Name: "Run", Weekly: 10, Unit: "km"},
			{ID: "aab222", Name: "Read", Weekly: 5, Unit: "chapters"},
		},
		sessions: []model.Session{
			{ID: "s1x", GoalID: "aaa111", Amount: 4, Date: "2024-01-03"},
			{ID: "s2y", GoalID: "aab222", Amount: 1, Date: "2024-01-04"},
		},
	}
	return tracker.New(st, tracker.ConfirmFunc(func(string) bool { return true }))
}

func TestResolveGoal(t *testing.T) {
	tr := testTracker()

	g, err := resolveGoal(tr, "Run")
	if err != nil || g.ID != "aaa111" {
		t.Fatalf("by name: goal = %v, err = %v", g, err)
	}

	g, err = resolveGoal(tr, "aab")
	if err != nil || g.ID != "aab222" {
		t.Fatalf("by prefix: goal = %v, err = %v", g, err)
	}

	if _, err := resolveGoal(tr, "aa"); err == nil {
		t.Fatal("ambiguous prefix accepted")
	}
	if _, err := resolveGoal(tr, "zzz"); err == nil {
		t.Fatal("unknown reference accepted")
	}
}

func TestResolveSession(t *testing.T) {
	tr := testTracker()

	s, err := resolveSession(tr, "s1")
	if err != nil || s.ID != "s1x" {
		t.Fatalf("by prefix: session = %v, err = %v", s, err)
	}
	if _, err := resolveSession(tr, "s"); err == nil {
		t.Fatal("ambiguous prefix accepted")
	}
	if _, err := resolveSession(tr, "nope"); err == nil {
		t.Fatal("unknown reference accepted")
	}
}

func TestDailySums(t *testing.T) {
	tr := testTracker()
	start := mustMonday(t, "2024-01-03") // week of Jan 1

	sums := dailySums(tr.Sessions(), "aaa111", start)
	want := []float64{0, 0, 4, 0, 0, 0, 0} // Wed Jan 3
	for i := range want {
		if sums[i] != want[i] {
			t.Fatalf("sums = %v, want %v", sums, want)
		}
	}
}
