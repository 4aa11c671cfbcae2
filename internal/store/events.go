package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mertkk/moncal/internal/calendar"
)

// eventsKey is the fixed kv key holding the serialized collection.
const eventsKey = "events"

// schemaVersion tags the persisted payload so a future format change
// can migrate old data instead of silently misreading it.
const schemaVersion = 1

const dateLayout = "2006-01-02"

type eventRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	AllDay    bool   `json:"allDay"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Color     string `json:"color"`
}

type eventsPayload struct {
	Version int           `json:"version"`
	Events  []eventRecord `json:"events"`
}

// EventStore owns the canonical in-memory event collection. Every
// mutation writes through to the backing kv store; the in-memory state
// stays authoritative for the session when a write fails.
type EventStore struct {
	kv     *Store
	events []calendar.Event
}

// NewEventStore loads the persisted collection. An absent or
// unparseable backing value yields an empty collection.
func NewEventStore(kv *Store) *EventStore {
	es := &EventStore{kv: kv}
	es.load()
	return es
}

func (es *EventStore) load() {
	raw, ok, err := es.kv.GetValue(eventsKey)
	if err != nil {
		log.WithError(err).Warn("event load failed, starting empty")
		return
	}
	if !ok {
		return
	}

	var payload eventsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.WithError(err).Warn("stored events unparseable, starting empty")
		return
	}

	// Stored records are not trusted blindly: each one is checked
	// against the event invariants and dropped when it cannot be
	// repaired.
	for _, rec := range payload.Events {
		e, err := rec.event()
		if err != nil {
			log.WithField("id", rec.ID).WithError(err).Warn("dropping malformed stored event")
			continue
		}
		es.events = append(es.events, e)
	}
}

func (r eventRecord) event() (calendar.Event, error) {
	if r.ID == "" {
		return calendar.Event{}, errors.New("missing id")
	}
	if strings.TrimSpace(r.Title) == "" {
		return calendar.Event{}, errors.New("missing title")
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("bad date %q: %w", r.Date, err)
	}

	e := calendar.Event{
		ID:     r.ID,
		Title:  r.Title,
		Date:   date,
		AllDay: r.AllDay,
		Color:  calendar.Color(r.Color),
	}
	if !calendar.ValidColor(e.Color) {
		e.Color = calendar.ColorBlue
	}
	if !e.AllDay {
		e.StartTime = r.StartTime
		e.EndTime = r.EndTime
	}
	return e, nil
}

func record(e calendar.Event) eventRecord {
	r := eventRecord{
		ID:     e.ID,
		Title:  e.Title,
		Date:   e.Date.Format(dateLayout),
		AllDay: e.AllDay,
		Color:  string(e.Color),
	}
	if !e.AllDay {
		r.StartTime = e.StartTime
		r.EndTime = e.EndTime
	}
	return r
}

// Upsert replaces the event with the same ID, or appends when the ID is
// new, then writes through.
func (es *EventStore) Upsert(e calendar.Event) {
	for i := range es.events {
		if es.events[i].ID == e.ID {
			es.events[i] = e
			es.persist()
			return
		}
	}
	es.events = append(es.events, e)
	es.persist()
}

// Delete removes the event with the given ID. A missing ID is a no-op.
func (es *EventStore) Delete(id string) {
	for i := range es.events {
		if es.events[i].ID == id {
			es.events = append(es.events[:i], es.events[i+1:]...)
			es.persist()
			return
		}
	}
}

// QueryByDay returns copies of all events on the same calendar day,
// ignoring time of day. Order is unspecified; the day layout sorts.
func (es *EventStore) QueryByDay(day time.Time) []calendar.Event {
	var out []calendar.Event
	for _, e := range es.events {
		if calendar.SameDay(e.Date, day) {
			out = append(out, e)
		}
	}
	return out
}

// All returns a copy of the whole collection.
func (es *EventStore) All() []calendar.Event {
	out := make([]calendar.Event, len(es.events))
	copy(out, es.events)
	return out
}

func (es *EventStore) Len() int {
	return len(es.events)
}

// persist is write-through and best effort: a storage failure is logged
// and the in-memory collection remains the source of truth.
func (es *EventStore) persist() {
	payload := eventsPayload{
		Version: schemaVersion,
		Events:  make([]eventRecord, 0, len(es.events)),
	}
	for _, e := range es.events {
		payload.Events = append(payload.Events, record(e))
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Warn("encode events failed, skipping persist")
		return
	}
	if err := es.kv.SetValue(eventsKey, string(data)); err != nil {
		log.WithError(err).Warn("persist events failed")
	}
}
