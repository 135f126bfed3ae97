package testutil

import (
	"context"

	domaingames "github.com/preston-bernstein/gamesheet-schedule/internal/domain/games"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers"
)

// GoodProvider returns the provided games with no error.
type GoodProvider struct {
	Games []domaingames.Game
}

func (p GoodProvider) FetchGames(ctx context.Context, q providers.Query) ([]domaingames.Game, error) {
	_ = ctx
	_ = q
	return p.Games, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchGames(ctx context.Context, q providers.Query) ([]domaingames.Game, error) {
	return nil, p.Err
}

// EmptyProvider returns no games, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchGames(ctx context.Context, q providers.Query) ([]domaingames.Game, error) {
	return []domaingames.Game{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchGames(ctx context.Context, q providers.Query) ([]domaingames.Game, error) {
	return nil, providers.ErrProviderUnavailable
}

// RecordingProvider returns games and remembers every query it was asked.
type RecordingProvider struct {
	Games   []domaingames.Game
	Queries []providers.Query
}

func (p *RecordingProvider) FetchGames(ctx context.Context, q providers.Query) ([]domaingames.Game, error) {
	_ = ctx
	p.Queries = append(p.Queries, q)
	return p.Games, nil
}
