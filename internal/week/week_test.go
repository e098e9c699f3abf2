package week

import (
	"testing"
	"time"
)

func mustDay(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := ParseDay(iso)
	if err != nil {
		t.Fatalf("parse day %q: %v", iso, err)
	}
	return d
}

func TestStartOfWeek_MondayStart(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-05", "2024-01-01"}, // Friday -> preceding Monday
		{"2024-01-01", "2024-01-01"}, // Monday maps to itself
		{"2024-01-07", "2024-01-01"}, // Sunday belongs to the week it ends
		{"2024-03-03", "2024-02-26"}, // month boundary
	}
	for _, c := range cases {
		got := StartOfWeek(mustDay(t, c.in))
		if got.Format(ISO) != c.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", c.in, got.Format(ISO), c.want)
		}
		if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
			t.Errorf("StartOfWeek(%s) not at midnight: %v", c.in, got)
		}
	}
}

func TestEndOfWeek_CoversWholeSunday(t *testing.T) {
	end := EndOfWeek(mustDay(t, "2024-01-03"))
	if end.Format(ISO) != "2024-01-07" {
		t.Fatalf("EndOfWeek = %s, want 2024-01-07", end.Format(ISO))
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 || end.Nanosecond() != 999_000_000 {
		t.Fatalf("EndOfWeek not at 23:59:59.999: %v", end)
	}

	// Last instant of Sunday is inside the window; first instant of next
	// Monday is not.
	sundayNight := time.Date(2024, 1, 7, 23, 59, 59, 999_000_000, time.Local)
	if sundayNight.After(end) {
		t.Error("end of Sunday fell outside the week window")
	}
	if !mustDay(t, "2024-01-08").After(end) {
		t.Error("next Monday fell inside the week window")
	}
}

func TestWeekWindow_SameForEveryDayOfWeek(t *testing.T) {
	want := StartOfWeek(mustDay(t, "2024-01-01"))
	for d := 1; d <= 7; d++ {
		iso := time.Date(2024, 1, d, 0, 0, 0, 0, time.Local).Format(ISO)
		if got := StartOfWeek(mustDay(t, iso)); !got.Equal(want) {
			t.Errorf("StartOfWeek(%s) = %v, want %v", iso, got, want)
		}
	}
}

func TestShiftDays_RoundTrip(t *testing.T) {
	orig := "2024-06-12"
	if got := ShiftDays(ShiftDays(orig, 7), -7); got != orig {
		t.Fatalf("shift +7 then -7 = %s, want %s", got, orig)
	}
}

func TestShiftDays_BadInputDefaultsToToday(t *testing.T) {
	got := ShiftDays("not-a-date", 0)
	if got != Today() {
		t.Fatalf("ShiftDays on bad input = %s, want today %s", got, Today())
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(mustDay(t, "2024-01-05")); got != "Jan 5, 2024" {
		t.Fatalf("FormatDate = %q, want %q", got, "Jan 5, 2024")
	}
}

func TestLabel_SpansMondayToSunday(t *testing.T) {
	got := Label("2024-01-05")
	want := "Jan 1, 2024 — Jan 7, 2024"
	if got != want {
		t.Fatalf("Label = %q, want %q", got, want)
	}
}
