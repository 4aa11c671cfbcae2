package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ============================================================
// Month grid
// ============================================================

func TestMonthGridProperties(t *testing.T) {
	refs := []time.Time{
		date(2024, time.June, 10),
		date(2024, time.February, 29), // leap February
		date(2023, time.February, 1),
		date(2024, time.December, 31),
		date(2025, time.March, 1),    // starts on a Saturday
		date(2026, time.February, 1), // exactly four whole weeks
	}

	for _, ref := range refs {
		days := MonthGrid(ref)

		if len(days)%7 != 0 {
			t.Fatalf("%s: grid length %d not a multiple of 7", ref.Format("Jan 2006"), len(days))
		}
		if days[0].Weekday() != time.Sunday {
			t.Fatalf("%s: first cell is %s, want Sunday", ref.Format("Jan 2006"), days[0].Weekday())
		}
		if days[len(days)-1].Weekday() != time.Saturday {
			t.Fatalf("%s: last cell is %s, want Saturday", ref.Format("Jan 2006"), days[len(days)-1].Weekday())
		}

		// Every day of the reference month appears exactly once.
		seen := make(map[int]int)
		for _, d := range days {
			if SameMonth(d, ref) {
				seen[d.Day()]++
			}
		}
		daysInMonth := date(ref.Year(), ref.Month(), 1).AddDate(0, 1, -1).Day()
		if len(seen) != daysInMonth {
			t.Fatalf("%s: %d distinct month days in grid, want %d", ref.Format("Jan 2006"), len(seen), daysInMonth)
		}
		for day, n := range seen {
			if n != 1 {
				t.Fatalf("%s: day %d appears %d times", ref.Format("Jan 2006"), day, n)
			}
		}
	}
}

func TestMonthGridConsecutive(t *testing.T) {
	days := MonthGrid(date(2024, time.June, 15))
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("cell %d (%s) does not follow %s", i, days[i], days[i-1])
		}
	}
}

func TestMonthGridSameForAnyDayInMonth(t *testing.T) {
	a := MonthGrid(date(2024, time.June, 1))
	b := MonthGrid(date(2024, time.June, 30))
	if len(a) != len(b) {
		t.Fatalf("grid lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("cell %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestMonthGridJune2024(t *testing.T) {
	// June 2024 starts on a Saturday and ends on a Sunday: 6 weeks.
	days := MonthGrid(date(2024, time.June, 10))
	if len(days) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(days))
	}
	if !days[0].Equal(date(2024, time.May, 26)) {
		t.Fatalf("first cell: %s", days[0])
	}
	if !days[41].Equal(date(2024, time.July, 6)) {
		t.Fatalf("last cell: %s", days[41])
	}
}

func TestMonthGridFourWeekMonth(t *testing.T) {
	// February 2026 starts on a Sunday and has 28 days: exactly 4 weeks.
	days := MonthGrid(date(2026, time.February, 14))
	if len(days) != 28 {
		t.Fatalf("expected 28 cells, got %d", len(days))
	}
}

// ============================================================
// Week boundaries
// ============================================================

func TestStartOfWeek(t *testing.T) {
	sun := date(2024, time.June, 9)
	for i := 0; i < 7; i++ {
		d := sun.AddDate(0, 0, i)
		if got := StartOfWeek(d); !got.Equal(sun) {
			t.Fatalf("StartOfWeek(%s) = %s, want %s", d, got, sun)
		}
	}
}

func TestEndOfWeek(t *testing.T) {
	sat := date(2024, time.June, 15)
	for i := 0; i < 7; i++ {
		d := sat.AddDate(0, 0, -i)
		if got := EndOfWeek(d); !got.Equal(sat) {
			t.Fatalf("EndOfWeek(%s) = %s, want %s", d, got, sat)
		}
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.June, 10, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatal("same calendar day should match regardless of time")
	}
	if SameDay(a, b.AddDate(0, 0, 1)) {
		t.Fatal("different days should not match")
	}
}
