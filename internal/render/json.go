package render

import (
	"encoding/json"
	"io"
	"time"

	domaingames "github.com/preston-bernstein/gamesheet-schedule/internal/domain/games"
	"github.com/preston-bernstein/gamesheet-schedule/internal/timeutil"
)

// JSONFileName is the published name of the schedule document.
const JSONFileName = "schedule.json"

// NewScheduleResponse shapes a schedule into the published document.
func NewScheduleResponse(s domaingames.Schedule) domaingames.ScheduleResponse {
	entries := make([]domaingames.GameEntry, 0, len(s.Games))
	for _, g := range s.Games {
		entries = append(entries, domaingames.GameEntry{
			ID:                g.ID,
			Home:              g.HomeTeam.Name,
			Visitor:           g.VisitorTeam.Name,
			ScheduledAt:       g.StartTime.Format(time.RFC3339),
			ScheduledAtPretty: g.StartTimePretty,
			Location:          g.Location,
		})
	}
	return domaingames.ScheduleResponse{
		Games:       entries,
		LastUpdated: timeutil.FormatPretty(s.LastUpdated),
	}
}

// JSON writes the schedule document, indented, to w.
func JSON(w io.Writer, s domaingames.Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(NewScheduleResponse(s))
}
