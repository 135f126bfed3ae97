package gamesheet

import (
	"time"

	domaingames "github.com/preston-bernstein/gamesheet-schedule/internal/domain/games"
	"github.com/preston-bernstein/gamesheet-schedule/internal/domain/teams"
	"github.com/preston-bernstein/gamesheet-schedule/internal/timeutil"
)

// ResolveOptions controls the join from game records to resolved games.
type ResolveOptions struct {
	// Team keeps only games with this exact home or visitor name. Empty keeps all.
	Team string
	// Location is the league zone the upstream clock readings belong to.
	Location *time.Location
}

// DropReason explains why a game record did not become a game.
type DropReason string

const (
	DropUnresolvedTeam DropReason = "unresolved_team"
	DropTeamFilter     DropReason = "team_filter"
	DropBadStartTime   DropReason = "bad_start_time"
)

// ResolveStats counts the outcome of a resolve pass.
type ResolveStats struct {
	Kept    int
	Dropped map[DropReason]int
}

// DroppedTotal sums drops across every reason.
func (s ResolveStats) DroppedTotal() int {
	total := 0
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// ReasonCounts keys the drop counts by reason name.
func (s ResolveStats) ReasonCounts() map[string]int {
	out := make(map[string]int, len(s.Dropped))
	for reason, n := range s.Dropped {
		out[string(reason)] = n
	}
	return out
}

// Resolve joins the document's game records to its team records.
// Records that fail to resolve are dropped; the result is unordered.
func Resolve(doc Document, opts ResolveOptions) []domaingames.Game {
	games, _ := ResolveWithStats(doc, opts)
	return games
}

// ResolveWithStats is Resolve plus per-reason drop counts.
func ResolveWithStats(doc Document, opts ResolveOptions) ([]domaingames.Game, ResolveStats) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	lookup := doc.TeamNames()
	stats := ResolveStats{Dropped: make(map[DropReason]int)}
	out := make([]domaingames.Game, 0)

	for _, rec := range doc.Games() {
		game, reason, ok := resolveGame(rec, lookup, opts)
		if !ok {
			stats.Dropped[reason]++
			continue
		}
		out = append(out, game)
	}
	stats.Kept = len(out)
	return out, stats
}

func resolveGame(rec GameRecord, lookup teams.Lookup, opts ResolveOptions) (domaingames.Game, DropReason, bool) {
	home, ok := lookup.Team(rec.HomeTeamID)
	if !ok {
		return domaingames.Game{}, DropUnresolvedTeam, false
	}
	visitor, ok := lookup.Team(rec.VisitorTeamID)
	if !ok {
		return domaingames.Game{}, DropUnresolvedTeam, false
	}

	game := domaingames.Game{
		ID:          rec.ID,
		HomeTeam:    home,
		VisitorTeam: visitor,
		Location:    rec.Location,
	}
	if opts.Team != "" && !game.Involves(opts.Team) {
		return domaingames.Game{}, DropTeamFilter, false
	}

	// Upstream labels these as UTC but they are league wall-clock readings.
	start, err := timeutil.ParseWallClock(rec.ScheduledStartTime, opts.Location)
	if err != nil {
		return domaingames.Game{}, DropBadStartTime, false
	}
	game.StartTime = start
	game.StartTimePretty = timeutil.FormatPretty(start)
	return game, "", true
}
