package gamesheet

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/gamesheet-schedule/internal/providers"
	"github.com/preston-bernstein/gamesheet-schedule/internal/testutil"
)

func TestFetchGamesHitsAPIAndResolvesResponse(t *testing.T) {
	// 03:00 UTC on May 28 is still May 27 in New York.
	fixed := time.Date(2022, 5, 28, 3, 0, 0, 0, time.UTC)
	var captured *http.Request

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(sampleResponse)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/",
		HTTPClient: &http.Client{Transport: rt},
		Timezone:   "America/New_York",
	})
	client.now = func() time.Time { return fixed }

	games, err := client.FetchGames(context.Background(), providers.Query{Season: 2451})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.URL.Path != "/api/stats/v1/seasons/2451/schedule" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	q := captured.URL.Query()
	if q.Get("offset") != "0" || q.Get("limit") != "50" {
		t.Fatalf("expected a single bounded page, got %s", captured.URL.RawQuery)
	}
	if q.Get("start_time_from") != "2022-05-27T00:00:00Z" {
		t.Fatalf("expected league-day midnight, got %s", q.Get("start_time_from"))
	}
	if captured.Header.Get("Accept") != "application/json" {
		t.Fatalf("expected json accept header")
	}

	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].HomeTeam.Name != "Hawks" || games[0].VisitorTeam.Name != "Owls" {
		t.Fatalf("unexpected game %+v", games[0])
	}
	if games[0].StartTime.Location().String() != "America/New_York" {
		t.Fatalf("expected league zone on start time, got %s", games[0].StartTime.Location())
	}
}

func TestFetchGamesAppliesTeamFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sampleResponse)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	games, err := client.FetchGames(context.Background(), providers.Query{Season: 1, Team: "Falcons"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no games, got %+v", games)
	}
}

type observedResolve struct {
	provider string
	kept     int
	dropped  map[string]int
}

func (o *observedResolve) RecordResolve(provider string, kept int, dropped map[string]int) {
	o.provider, o.kept, o.dropped = provider, kept, dropped
}

func TestFetchGamesReportsResolveStats(t *testing.T) {
	observer := &observedResolve{}
	client := NewClient(Config{HTTPClient: testutil.StaticClient(http.StatusOK, sampleResponse), Observer: observer})

	if _, err := client.FetchGames(context.Background(), providers.Query{Season: 1, Team: "Falcons"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if observer.provider != "gamesheet" || observer.kept != 0 {
		t.Fatalf("unexpected observation %+v", observer)
	}
	if observer.dropped[string(DropTeamFilter)] != 1 {
		t.Fatalf("expected one team filter drop, got %v", observer.dropped)
	}
}

func TestFetchGamesHandlesNon2xx(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader(" boom \n")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchGames(context.Background(), providers.Query{Season: 1})
	statusErr, ok := providers.AsStatusError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway || statusErr.Body != "boom" || statusErr.Provider != "gamesheet" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestFetchGamesHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{bad json")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchGames(context.Background(), providers.Query{Season: 1}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchGamesHandlesTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return nil, boom
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchGames(context.Background(), providers.Query{Season: 1})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestFetchGamesRejectsInvalidSeason(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("unexpected call")
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchGames(context.Background(), providers.Query{Season: 0}); err == nil {
		t.Fatal("expected error for season 0")
	}
	if calls != 0 {
		t.Fatalf("expected no request for invalid season")
	}
}

func TestFetchGamesRespectsCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = w
		_ = r
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchGames(ctx, providers.Query{Season: 1}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestNewClientSetsDefaults(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.loc.String() != defaultTimezone {
		t.Fatalf("expected league zone default, got %s", c.loc)
	}
	if c.baseURL != defaultBaseURL || c.pageLimit != defaultPageLimit {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestStartTimeFromUsesLeagueDay(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before_midnight_est", time.Date(2024, 1, 2, 4, 30, 0, 0, time.UTC), "2024-01-01T00:00:00Z"},
		{"after_midnight_est", time.Date(2024, 1, 2, 5, 30, 0, 0, time.UTC), "2024-01-02T00:00:00Z"},
		{"summer_edt", time.Date(2022, 7, 1, 3, 59, 0, 0, time.UTC), "2022-06-30T00:00:00Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClient(Config{Timezone: "America/New_York"})
			c.now = func() time.Time { return tc.now }
			if got := c.startTimeFrom(); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
