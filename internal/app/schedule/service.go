package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/gamesheet-schedule/internal/domain/games"
	"github.com/preston-bernstein/gamesheet-schedule/internal/logging"
	"github.com/preston-bernstein/gamesheet-schedule/internal/metrics"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers"
	"github.com/preston-bernstein/gamesheet-schedule/internal/publish"
	"github.com/preston-bernstein/gamesheet-schedule/internal/render"
)

const (
	contentTypeJSON     = "application/json"
	contentTypeCalendar = "text/calendar; charset=utf-8"
)

// Publisher commits one rendered artifact.
type Publisher interface {
	Publish(ctx context.Context, a publish.Artifact) (publish.Result, error)
}

// Options wires a Service.
type Options struct {
	Provider     providers.ScheduleProvider
	ProviderName string
	Publisher    Publisher
	// Location is the league zone used for LastUpdated.
	Location *time.Location
	Calendar render.CalendarOptions
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Service runs one fetch, join and publish cycle.
type Service struct {
	provider     providers.ScheduleProvider
	providerName string
	publisher    Publisher
	loc          *time.Location
	calendar     render.CalendarOptions
	logger       *slog.Logger
	metrics      *metrics.Recorder
	now          func() time.Time
}

// Summary reports what a run produced.
type Summary struct {
	Schedule domaingames.Schedule
	Results  []publish.Result
}

// NewService constructs a Service with the provided options.
func NewService(opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	name := opts.ProviderName
	if name == "" {
		name = "provider"
	}
	return &Service{
		provider:     opts.Provider,
		providerName: name,
		publisher:    opts.Publisher,
		loc:          loc,
		calendar:     opts.Calendar,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		now:          time.Now,
	}
}

// Run fetches the season schedule and publishes schedule.json then schedule.ics.
// It stops at the first failure; artifacts already committed stay in place.
func (s *Service) Run(ctx context.Context, q providers.Query) (summary Summary, err error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordRun(time.Since(start), err)
	}()

	if s.provider == nil || s.publisher == nil {
		return Summary{}, errors.New("schedule: provider and publisher required")
	}

	lastUpdated := s.now().In(s.loc)

	fetchStart := time.Now()
	games, err := s.provider.FetchGames(ctx, q)
	s.metrics.RecordProviderAttempt(s.providerName, time.Since(fetchStart), err)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch schedule: %w", err)
	}

	summary.Schedule = domaingames.NewSchedule(games, lastUpdated)
	logging.Info(s.logger, "schedule fetched",
		logging.FieldProvider, s.providerName,
		logging.FieldSeason, q.Season,
		logging.FieldTeam, q.Team,
		logging.FieldCount, len(summary.Schedule.Games),
		logging.FieldDurationMS, time.Since(fetchStart).Milliseconds(),
	)

	for _, a := range s.artifacts(summary.Schedule) {
		res, pubErr := s.publisher.Publish(ctx, a)
		s.metrics.RecordPublish(a.Name, res.Bytes, res.Unchanged, pubErr)
		if pubErr != nil {
			return summary, fmt.Errorf("publish %s: %w", a.Name, pubErr)
		}
		summary.Results = append(summary.Results, res)
	}

	logging.Info(s.logger, "schedule published",
		logging.FieldCount, len(summary.Schedule.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return summary, nil
}

func (s *Service) artifacts(schedule domaingames.Schedule) []publish.Artifact {
	return []publish.Artifact{
		{
			Name:        render.JSONFileName,
			ContentType: contentTypeJSON,
			Render: func(w io.Writer) error {
				return render.JSON(w, schedule)
			},
		},
		{
			Name:        render.CalendarFileName,
			ContentType: contentTypeCalendar,
			Render: func(w io.Writer) error {
				return render.Calendar(w, schedule, s.calendar)
			},
		},
	}
}
