package providers

import (
	"context"

	domaingames "github.com/preston-bernstein/gamesheet-schedule/internal/domain/games"
)

// Query selects which games a provider returns.
type Query struct {
	// Season is the upstream season identifier.
	Season int
	// Team, when set, keeps only games where it is the home or visitor name.
	Team string
}

// ScheduleProvider fetches upstream schedule data and resolves it into games.
// Returned games are unordered; records that cannot be resolved are dropped, not reported.
type ScheduleProvider interface {
	FetchGames(ctx context.Context, q Query) ([]domaingames.Game, error)
}

// ResolveObserver receives the outcome of a provider's join pass.
type ResolveObserver interface {
	RecordResolve(provider string, kept int, dropped map[string]int)
}
