package tracker

import (
	"math"
	"time"

	"github.com/theirongolddev/goalweek/internal/model"
	"github.com/theirongolddev/goalweek/internal/week"
)

// inRange reports whether a session's day falls within [start, end]
// inclusive, at full timestamp precision. Sessions with unparseable dates
// never match.
func inRange(s model.Session, start, end time.Time) bool {
	d, err := week.ParseDay(s.Date)
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// SumForGoalInRange totals the logged amount for a goal across [start, end].
func SumForGoalInRange(sessions []model.Session, goalID string, start, end time.Time) float64 {
	var sum float64
	for _, s := range sessions {
		if s.GoalID == goalID && inRange(s, start, end) {
			sum += s.Amount
		}
	}
	return sum
}

// CountForGoalInRange counts the sessions for a goal across [start, end].
func CountForGoalInRange(sessions []model.Session, goalID string, start, end time.Time) int {
	n := 0
	for _, s := range sessions {
		if s.GoalID == goalID && inRange(s, start, end) {
			n++
		}
	}
	return n
}

// Percent returns the weekly progress percentage, rounded and clamped to
// [0, 100]. A zero target is defined as 0% to avoid division by zero.
func Percent(sum, weekly float64) int {
	if weekly <= 0 {
		return 0
	}
	pct := int(math.Round(100 * sum / weekly))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// WeekSum totals a goal's progress over the currently viewed week.
func (t *Tracker) WeekSum(goalID string) float64 {
	start, end := t.weekWindow()
	return SumForGoalInRange(t.sessions, goalID, start, end)
}

// WeekCount counts a goal's sessions over the currently viewed week.
func (t *Tracker) WeekCount(goalID string) int {
	start, end := t.weekWindow()
	return CountForGoalInRange(t.sessions, goalID, start, end)
}

func (t *Tracker) weekWindow() (time.Time, time.Time) {
	d, err := week.ParseDay(t.state.ViewDate)
	if err != nil {
		d, _ = week.ParseDay(week.Today())
	}
	return week.StartOfWeek(d), week.EndOfWeek(d)
}
