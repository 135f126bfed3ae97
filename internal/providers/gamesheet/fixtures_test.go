package gamesheet

// sampleResponse: two teams, one game between them, one record type we ignore.
const sampleResponse = `{
	"data": {"type": "seasons", "id": "2451"},
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
