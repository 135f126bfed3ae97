package render

import (
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	domaingames "github.com/preston-bernstein/gamesheet-schedule/internal/domain/games"
)

const (
	// CalendarFileName is the published name of the calendar feed.
	CalendarFileName = "schedule.ics"

	calendarProduct         = "gamesheet-schedule"
	defaultEventDuration    = 90 * time.Minute
	defaultCalendarName     = "Game Schedule"
	defaultCalendarCategory = "Game"
)

// lineBreaks folds CRLF and bare CR into LF; the text escaper only handles LF.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// CalendarOptions shapes the calendar feed.
type CalendarOptions struct {
	Name     string
	Category string
	// Duration is the assumed length of every game.
	Duration time.Duration
}

func (o CalendarOptions) withDefaults() CalendarOptions {
	if o.Name == "" {
		o.Name = defaultCalendarName
	}
	if o.Category == "" {
		o.Category = defaultCalendarCategory
	}
	if o.Duration <= 0 {
		o.Duration = defaultEventDuration
	}
	return o
}

// Calendar writes an iCalendar feed with one VEVENT per game.
// Event UIDs are the upstream game IDs so clients recognize unchanged events.
// DTSTAMP is the schedule's LastUpdated, which keeps output deterministic.
func Calendar(w io.Writer, s domaingames.Schedule, opts CalendarOptions) error {
	opts = opts.withDefaults()

	cal := ics.NewCalendarFor(calendarProduct)
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(opts.Name)

	for _, g := range s.Games {
		summary := lineBreaks.Replace(g.Summary())
		location := lineBreaks.Replace(g.Location)

		event := cal.AddEvent(g.ID)
		event.SetDtStampTime(s.LastUpdated)
		event.SetStartAt(g.StartTime)
		event.SetEndAt(g.StartTime.Add(opts.Duration))
		event.SetSummary(summary)
		event.SetDescription(summary + "\n" + location)
		event.SetLocation(location)
		event.SetStatus(ics.ObjectStatusConfirmed)
		event.AddProperty(ics.ComponentPropertyCategories, opts.Category)
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}
