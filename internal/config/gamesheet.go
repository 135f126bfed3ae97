package config

// GamesheetConfig controls how we talk to the GameSheet stats API.
type GamesheetConfig struct {
	BaseURL     string
	Timezone    string
	PageLimit   int
	HTTPTimeout Duration
}

func loadGamesheet() GamesheetConfig {
	return GamesheetConfig{
		BaseURL:     envOrDefault(envGamesheetBaseURL, defaultGamesheetBaseURL),
		Timezone:    envOrDefault(envGamesheetTimezone, defaultGamesheetTimezone),
		PageLimit:   intEnvOrDefault(envGamesheetLimit, defaultGamesheetLimit),
		HTTPTimeout: durationEnvOrDefault(envGamesheetTimeout, defaultGamesheetTimeout),
	}
}
