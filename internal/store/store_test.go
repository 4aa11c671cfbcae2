package store

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mertkk/moncal/internal/calendar"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func lunch() calendar.Event {
	return calendar.Event{
		ID:        "lunch-1",
		Title:     "Lunch",
		Date:      date(2024, time.June, 10),
		StartTime: "12:00",
		EndTime:   "13:00",
		Color:     calendar.ColorBlue,
	}
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/moncal.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen — should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

// ============================================================
// Key-value bridge
// ============================================================

func TestGetValueAbsent(t *testing.T) {
	s := newTestStore(t)
	_, ok, err := s.GetValue("nothing")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("absent key should report ok=false")
	}
}

func TestSetAndGetValue(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetValue("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetValue("k", "v2"); err != nil {
		t.Fatal(err)
	}

	v, ok, err := s.GetValue("k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != "v2" {
		t.Fatalf("got %q ok=%v", v, ok)
	}
}

// ============================================================
// Event store
// ============================================================

func TestUpsertAppendsAndReplaces(t *testing.T) {
	s := newTestStore(t)
	es := NewEventStore(s)

	es.Upsert(lunch())
	if es.Len() != 1 {
		t.Fatalf("expected 1 event, got %d", es.Len())
	}

	edited := lunch()
	edited.Title = "Long lunch"
	es.Upsert(edited)
	if es.Len() != 1 {
		t.Fatalf("edit should replace in place, got %d events", es.Len())
	}
	if es.All()[0].Title != "Long lunch" {
		t.Fatalf("edit not applied: %+v", es.All()[0])
	}
}

func TestUpsertIdempotent(t *testing.T) {
	s := newTestStore(t)
	es := NewEventStore(s)

	es.Upsert(lunch())
	es.Upsert(lunch())
	if es.Len() != 1 {
		t.Fatalf("repeated identical upsert should be idempotent, got %d", es.Len())
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s := newTestStore(t)
	es := NewEventStore(s)

	es.Upsert(lunch())
	es.Delete("does-not-exist")
	if es.Len() != 1 {
		t.Fatal("deleting a missing ID should not change the store")
	}

	es.Delete("lunch-1")
	if es.Len() != 0 {
		t.Fatal("delete should remove the event")
	}
}

func TestQueryByDayIgnoresTimeOfDay(t *testing.T) {
	s := newTestStore(t)
	es := NewEventStore(s)

	e := lunch()
	e.Date = time.Date(2024, time.June, 10, 18, 30, 0, 0, time.UTC)
	es.Upsert(e)

	got := es.QueryByDay(date(2024, time.June, 10))
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if len(es.QueryByDay(date(2024, time.June, 11))) != 0 {
		t.Fatal("wrong day should return nothing")
	}
}

func TestQueryByDayReturnsCopies(t *testing.T) {
	s := newTestStore(t)
	es := NewEventStore(s)
	es.Upsert(lunch())

	got := es.QueryByDay(date(2024, time.June, 10))
	got[0].Title = "mutated"

	if es.All()[0].Title != "Lunch" {
		t.Fatal("query result should be a read view, not the canonical record")
	}
}

// ============================================================
// Persistence round trip
// ============================================================

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)
	es := NewEventStore(s)

	es.Upsert(lunch())
	holiday := calendar.Event{
		ID:     "holiday-1",
		Title:  "Holiday",
		Date:   date(2024, time.June, 11),
		AllDay: true,
		Color:  calendar.ColorGreen,
	}
	es.Upsert(holiday)

	// A fresh store over the same kv backing must reconstruct the
	// collection, including the date as a comparable value.
	reloaded := NewEventStore(s)
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 events after reload, got %d", reloaded.Len())
	}

	got := reloaded.QueryByDay(date(2024, time.June, 10))
	if len(got) != 1 || got[0] != lunch() {
		t.Fatalf("lunch did not round-trip: %+v", got)
	}

	got = reloaded.QueryByDay(date(2024, time.June, 11))
	if len(got) != 1 || got[0] != holiday {
		t.Fatalf("holiday did not round-trip: %+v", got)
	}
}

func TestPersistWritesVersionTag(t *testing.T) {
	s := newTestStore(t)
	es := NewEventStore(s)
	es.Upsert(lunch())

	raw, ok, err := s.GetValue(eventsKey)
	if err != nil || !ok {
		t.Fatalf("events not persisted: ok=%v err=%v", ok, err)
	}

	var payload eventsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Version != schemaVersion {
		t.Fatalf("payload version %d, want %d", payload.Version, schemaVersion)
	}
	if !strings.Contains(raw, `"date":"2024-06-10"`) {
		t.Fatalf("date not serialized as a plain day: %s", raw)
	}
}

func TestDeletePersists(t *testing.T) {
	s := newTestStore(t)
	es := NewEventStore(s)
	es.Upsert(lunch())
	es.Delete("lunch-1")

	if NewEventStore(s).Len() != 0 {
		t.Fatal("delete should write through")
	}
}

// ============================================================
// Load tolerance
// ============================================================

func TestLoadMissingKey(t *testing.T) {
	s := newTestStore(t)
	es := NewEventStore(s)
	if es.Len() != 0 {
		t.Fatal("missing backing value should yield an empty collection")
	}
}

func TestLoadUnparseableValue(t *testing.T) {
	s := newTestStore(t)
	s.SetValue(eventsKey, "{not json")

	es := NewEventStore(s)
	if es.Len() != 0 {
		t.Fatal("unparseable backing value should yield an empty collection")
	}

	// The store must stay usable for the session.
	es.Upsert(lunch())
	if NewEventStore(s).Len() != 1 {
		t.Fatal("store unusable after bad load")
	}
}

func TestLoadDropsMalformedRecords(t *testing.T) {
	s := newTestStore(t)
	payload := `{"version":1,"events":[
		{"id":"ok","title":"Keep","date":"2024-06-10","allDay":true,"color":"red"},
		{"id":"","title":"No ID","date":"2024-06-10","color":"blue"},
		{"id":"bad-date","title":"Bad","date":"June 10th","color":"blue"},
		{"id":"no-title","title":"  ","date":"2024-06-10","color":"blue"}
	]}`
	s.SetValue(eventsKey, payload)

	es := NewEventStore(s)
	if es.Len() != 1 {
		t.Fatalf("expected only the valid record, got %d", es.Len())
	}
	if es.All()[0].ID != "ok" {
		t.Fatalf("wrong record survived: %+v", es.All()[0])
	}
}

func TestLoadRepairsRecords(t *testing.T) {
	s := newTestStore(t)
	payload := `{"version":1,"events":[
		{"id":"c","title":"Odd color","date":"2024-06-10","allDay":true,"color":"magenta"},
		{"id":"t","title":"All day with times","date":"2024-06-10","allDay":true,"startTime":"09:00","endTime":"10:00","color":"blue"}
	]}`
	s.SetValue(eventsKey, payload)

	es := NewEventStore(s)
	if es.Len() != 2 {
		t.Fatalf("repairable records should load, got %d", es.Len())
	}
	for _, e := range es.All() {
		switch e.ID {
		case "c":
			if e.Color != calendar.ColorBlue {
				t.Fatalf("unknown color should repair to blue: %q", e.Color)
			}
		case "t":
			if e.StartTime != "" || e.EndTime != "" {
				t.Fatal("all-day event should load with blank times")
			}
		}
	}
}
