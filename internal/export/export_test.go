package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mertkk/moncal/internal/calendar"
)

func sampleEvents() []calendar.Event {
	return []calendar.Event{
		{
			ID:        "lunch-1",
			Title:     "Lunch",
			Date:      time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "12:00",
			EndTime:   "13:00",
			Color:     calendar.ColorBlue,
		},
		{
			ID:     "holiday-1",
			Title:  "Holiday",
			Date:   time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
			AllDay: true,
			Color:  calendar.ColorGreen,
		},
	}
}

// ============================================================
// JSON export
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ToJSON(sampleEvents(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export not valid json: %v", err)
	}
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected export: %+v", out)
	}
	if out.Events[0].Date != "2024-06-10" {
		t.Fatalf("date format: %q", out.Events[0].Date)
	}
	if out.Events[1].StartTime != "" {
		t.Fatal("all-day event should export without times")
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := ToJSON(nil, path); err != nil {
		t.Fatal(err)
	}

	var out jsonExport
	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 0 {
		t.Fatalf("count %d", out.Count)
	}
}

// ============================================================
// ICS export
// ============================================================

func TestToICS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ics")
	if err := ToICS(sampleEvents(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	for _, want := range []string{"BEGIN:VCALENDAR", "END:VCALENDAR", "SUMMARY:Lunch", "SUMMARY:Holiday", "UID:lunch-1"} {
		if !strings.Contains(text, want) {
			t.Fatalf("ics missing %q:\n%s", want, text)
		}
	}
	if !strings.Contains(text, "20240610T120000") {
		t.Fatalf("timed event start not serialized:\n%s", text)
	}
}

func TestToICSBadClock(t *testing.T) {
	events := []calendar.Event{{
		ID:        "bad",
		Title:     "Broken",
		Date:      time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "noon",
		EndTime:   "13:00",
	}}
	if err := ToICS(events, filepath.Join(t.TempDir(), "bad.ics")); err == nil {
		t.Fatal("expected error for unparseable time")
	}
}
