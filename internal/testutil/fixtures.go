package testutil

import (
	"time"

	domaingames "github.com/preston-bernstein/gamesheet-schedule/internal/domain/games"
	"github.com/preston-bernstein/gamesheet-schedule/internal/domain/teams"
	"github.com/preston-bernstein/gamesheet-schedule/internal/timeutil"
)

// SampleGame returns a Hawks-hosting-Owls game with the provided id and start.
func SampleGame(id string, start time.Time) domaingames.Game {
	return domaingames.Game{
		ID:              id,
		HomeTeam:        teams.Team{ID: "1", Name: "Hawks"},
		VisitorTeam:     teams.Team{ID: "2", Name: "Owls"},
		StartTime:       start,
		StartTimePretty: timeutil.FormatPretty(start),
		Location:        "Rink A",
	}
}

// SampleScheduleJSON is a minimal upstream schedule body: two teams, one game
// between them and one record type nothing consumes.
const SampleScheduleJSON = `{
	"included": [
		{"type": "teams", "id": "1", "attributes": {"title": "Hawks"}},
		{"type": "teams", "id": "2", "attributes": {"title": "Owls"}},
		{"type": "divisions", "id": "9", "attributes": {"title": "North"}},
		{
			"type": "scheduled-games",
			"id": "g1",
			"attributes": {"scheduled_start_time": "2022-05-27T20:30:00Z", "location": "Rink A"},
			"relationships": {
				"home_team": {"data": {"type": "teams", "id": "1"}},
				"visitor_team": {"data": {"type": "teams", "id": "2"}}
			}
		}
	]
}`
