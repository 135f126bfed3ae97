package gamesheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/gamesheet-schedule/internal/domain/games"
	"github.com/preston-bernstein/gamesheet-schedule/internal/logging"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers"
	"github.com/preston-bernstein/gamesheet-schedule/internal/timeutil"
)

// Config controls how the GameSheet client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Timezone   string
	PageLimit  int
	Logger     *slog.Logger
	Observer   providers.ResolveObserver
}

// Client fetches a season schedule from GameSheet and resolves it into games.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
	pageLimit  int
	logger     *slog.Logger
	observer   providers.ResolveObserver
}

// NewClient constructs a GameSheet client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
		pageLimit:  resolvePageLimit(cfg.PageLimit),
		logger:     cfg.Logger,
		observer:   cfg.Observer,
	}
}

// FetchGames retrieves the season's upcoming games and resolves team names.
func (c *Client) FetchGames(ctx context.Context, q providers.Query) ([]domaingames.Game, error) {
	doc, err := c.FetchDocument(ctx, q.Season)
	if err != nil {
		return nil, err
	}

	games, stats := ResolveWithStats(doc, ResolveOptions{Team: q.Team, Location: c.loc})
	providers.LogWithProvider(ctx, c.logger, slog.LevelDebug, providerName, "schedule resolved",
		logging.FieldSeason, q.Season,
		logging.FieldCount, stats.Kept,
		logging.FieldDropped, stats.DroppedTotal(),
		"teams", doc.Count(KindTeam),
	)
	if c.observer != nil {
		c.observer.RecordResolve(providerName, stats.Kept, stats.ReasonCounts())
	}
	return games, nil
}

// FetchDocument performs the single bounded schedule request and decodes it.
func (c *Client) FetchDocument(ctx context.Context, season int) (Document, error) {
	req, err := c.buildRequest(ctx, season)
	if err != nil {
		return Document{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("gamesheet: request schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return Document{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	doc, err := DecodeDocument(resp.Body)
	if err != nil {
		return Document{}, err
	}
	providers.LogWithProvider(ctx, c.logger, slog.LevelDebug, providerName, "schedule fetched",
		logging.FieldSeason, season,
		logging.FieldCount, len(doc.Records),
	)
	return doc, nil
}

func (c *Client) buildRequest(ctx context.Context, season int) (*http.Request, error) {
	if season <= 0 {
		return nil, fmt.Errorf("gamesheet: invalid season id %d", season)
	}
	endpoint := c.baseURL + fmt.Sprintf(schedulePathFormat, season)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("offset", "0")
	q.Set("limit", strconv.Itoa(c.pageLimit))
	q.Set("start_time_from", c.startTimeFrom())
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// startTimeFrom is midnight of today's league date, carrying the same bogus
// UTC label the API puts on its own timestamps.
func (c *Client) startTimeFrom() string {
	return timeutil.FormatDate(timeutil.StartOfDay(c.now(), c.loc)) + "T00:00:00Z"
}
