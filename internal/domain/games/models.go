package games

import (
	"sort"
	"time"

	"github.com/preston-bernstein/gamesheet-schedule/internal/domain/teams"
)

// Game is a scheduled game whose teams and start time have been resolved.
type Game struct {
	ID              string     `json:"id"`
	HomeTeam        teams.Team `json:"homeTeam"`
	VisitorTeam     teams.Team `json:"visitorTeam"`
	StartTime       time.Time  `json:"startTime"`
	StartTimePretty string     `json:"startTimePretty"`
	Location        string     `json:"location"`
}

// Involves reports whether name is the home or visitor team (exact match).
func (g Game) Involves(name string) bool {
	return g.HomeTeam.Name == name || g.VisitorTeam.Name == name
}

// Summary is the "{visitor} at {home}" headline.
func (g Game) Summary() string {
	return g.VisitorTeam.Name + " at " + g.HomeTeam.Name
}

// Schedule is the chronologically ordered set of games for one run.
type Schedule struct {
	Games       []Game
	LastUpdated time.Time
}

// NewSchedule copies games, orders them by start time and stamps the schedule.
func NewSchedule(games []Game, lastUpdated time.Time) Schedule {
	ordered := make([]Game, len(games))
	copy(ordered, games)
	SortByStart(ordered)
	return Schedule{
		Games:       ordered,
		LastUpdated: lastUpdated,
	}
}

// SortByStart orders games ascending by start instant, then by ID for stable output.
func SortByStart(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		if !games[i].StartTime.Equal(games[j].StartTime) {
			return games[i].StartTime.Before(games[j].StartTime)
		}
		return games[i].ID < games[j].ID
	})
}

// ScheduleResponse is the payload published as schedule.json.
type ScheduleResponse struct {
	Games       []GameEntry `json:"games"`
	LastUpdated string      `json:"last_updated"`
}

// GameEntry is one game inside ScheduleResponse.
type GameEntry struct {
	ID                string `json:"id"`
	Home              string `json:"home"`
	Visitor           string `json:"visitor"`
	ScheduledAt       string `json:"scheduled_at"`
	ScheduledAtPretty string `json:"scheduled_at_pretty"`
	Location          string `json:"location"`
}
