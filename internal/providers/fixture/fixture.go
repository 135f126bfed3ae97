package fixture

import (
	"context"
	"time"

	domaingames "github.com/preston-bernstein/gamesheet-schedule/internal/domain/games"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers/gamesheet"
)

// upstreamLayout mimics the API: league wall-clock time with a UTC label.
const upstreamLayout = "2006-01-02T15:04:05Z"

// Provider returns a static schedule useful for local runs without network access.
// Its records go through the same join as the live client.
type Provider struct {
	now func() time.Time
	loc *time.Location
}

// New creates a fixture provider reading times in loc (UTC when nil).
func New(loc *time.Location) *Provider {
	if loc == nil {
		loc = time.UTC
	}
	return &Provider{
		now: time.Now,
		loc: loc,
	}
}

// FetchGames returns a deterministic set of games starting tomorrow, league time.
func (p *Provider) FetchGames(ctx context.Context, q providers.Query) ([]domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return gamesheet.Resolve(p.Document(), gamesheet.ResolveOptions{Team: q.Team, Location: p.loc}), nil
}

// Document builds the fixture records, including noise the join must drop.
func (p *Provider) Document() gamesheet.Document {
	today := p.now().In(p.loc)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	at := func(days, hour, minute int) string {
		return day.AddDate(0, 0, days).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute).Format(upstreamLayout)
	}

	return gamesheet.Document{Records: []gamesheet.Record{
		team("101", "Hawks"),
		team("102", "Owls"),
		team("103", "Falcons"),
		team("104", "Ravens"),
		{Kind: gamesheet.KindIgnored, Type: "divisions"},
		game("fixture-1", "101", "102", at(0, 19, 0), "Rink A"),
		game("fixture-2", "103", "104", at(0, 20, 30), "Rink B"),
		game("fixture-3", "102", "103", at(2, 18, 15), "Rink A"),
		game("fixture-4", "104", "101", at(5, 21, 0), "Civic Arena, Rink 2"),
		// References a team from another division; dropped by the join.
		game("fixture-5", "101", "999", at(6, 19, 0), "Rink C"),
	}}
}

func team(id, title string) gamesheet.Record {
	return gamesheet.Record{
		Kind: gamesheet.KindTeam,
		Type: string(gamesheet.KindTeam),
		Team: gamesheet.TeamRecord{ID: id, Title: title},
	}
}

func game(id, home, visitor, start, location string) gamesheet.Record {
	return gamesheet.Record{
		Kind: gamesheet.KindScheduledGame,
		Type: string(gamesheet.KindScheduledGame),
		Game: gamesheet.GameRecord{
			ID:                 id,
			ScheduledStartTime: start,
			Location:           location,
			HomeTeamID:         home,
			VisitorTeamID:      visitor,
		},
	}
}
