package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mertkk/moncal/internal/calendar"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Events     []jsonEvent `json:"events"`
}

type jsonEvent struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	AllDay    bool   `json:"all_day"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Color     string `json:"color"`
}

func ToJSON(events []calendar.Event, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(events),
	}

	for _, e := range events {
		out.Events = append(out.Events, jsonEvent{
			ID:        e.ID,
			Title:     e.Title,
			Date:      e.Date.Format("2006-01-02"),
			AllDay:    e.AllDay,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Color:     string(e.Color),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
