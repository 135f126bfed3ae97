package config

// CalendarConfig shapes the published iCalendar feed.
type CalendarConfig struct {
	Name          string
	Category      string
	EventDuration Duration
}

func loadCalendar() CalendarConfig {
	return CalendarConfig{
		Name:          envOrDefault(envCalendarName, defaultCalendarName),
		Category:      envOrDefault(envCalendarCategory, defaultCalendarCategory),
		EventDuration: durationEnvOrDefault(envCalendarDuration, defaultCalendarDuration),
	}
}
