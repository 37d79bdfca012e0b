// Package charts serves the dashboard's daily series.
package charts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	coreagg "github.com/crystal-vistas/vistas-ops/internal/core/aggregation"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid chart query")

// NoticeUnavailable is set on a dashboard series whose records could not be loaded.
const NoticeUnavailable = "data unavailable, showing an empty chart"

// Options bound the windows clients may ask for.
type Options struct {
	Location    *time.Location
	DefaultDays int
	MaxDays     int
}

type Service struct {
	charts      coreagg.ChartRepository
	sources     Sources
	loc         *time.Location
	defaultDays int
	maxDays     int
	nowFn       func() time.Time
}

// Dashboard is every chart over the same window. Partial is set when at
// least one series is an empty placeholder for a chart that failed to load.
type Dashboard struct {
	Days    int              `json:"days"`
	Partial bool             `json:"partial,omitempty"`
	Series  []coreagg.Series `json:"series"`
}

func NewService(charts coreagg.ChartRepository, sources Sources, opts Options) *Service {
	if charts == nil {
		panic("charts: chart repository must not be nil")
	}
	if sources.Jobs == nil || sources.Expenses == nil || sources.Quotes == nil {
		panic("charts: every source store must be set")
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DefaultDays <= 0 {
		opts.DefaultDays = 7
	}
	if opts.MaxDays < opts.DefaultDays {
		opts.MaxDays = opts.DefaultDays
	}
	return &Service{
		charts:      charts,
		sources:     sources,
		loc:         opts.Location,
		defaultDays: opts.DefaultDays,
		maxDays:     opts.MaxDays,
		nowFn:       time.Now,
	}
}

// Series aggregates the named chart over the last days calendar days.
func (s *Service) Series(ctx context.Context, name string, days int) (*coreagg.Series, error) {
	chart, err := s.charts.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	w, err := s.window(days)
	if err != nil {
		return nil, err
	}
	return s.aggregate(ctx, *chart, w)
}

// Dashboard aggregates every chart concurrently over one shared window.
// A chart whose records cannot be loaded is replaced by an empty series
// carrying NoticeUnavailable. An error is returned only when every chart fails.
func (s *Service) Dashboard(ctx context.Context, days int) (*Dashboard, error) {
	list, err := s.charts.List(ctx)
	if err != nil {
		return nil, err
	}
	w, err := s.window(days)
	if err != nil {
		return nil, err
	}

	out := make([]coreagg.Series, len(list))
	failures := make([]error, len(list))
	var g errgroup.Group
	for i, chart := range list {
		i, chart := i, chart
		g.Go(func() error {
			series, err := s.aggregate(ctx, chart, w)
			if err != nil {
				slog.Warn("[Charts] Chart unavailable, serving empty series", "chart", chart.Name, "error", err)
				failures[i] = err
				series = unavailableSeries(chart, w)
			}
			out[i] = *series
			return nil
		})
	}
	_ = g.Wait()

	dash := &Dashboard{Days: w.Days, Series: out}
	failed := 0
	var firstErr error
	for _, err := range failures {
		if err == nil {
			continue
		}
		failed++
		if firstErr == nil {
			firstErr = err
		}
	}
	if failed > 0 && failed == len(list) {
		return nil, firstErr
	}
	dash.Partial = failed > 0
	return dash, nil
}

func unavailableSeries(chart coreagg.Chart, w coreagg.DayWindow) *coreagg.Series {
	series := coreagg.AggregateDaily(nil, chart, w)
	series.Notice = NoticeUnavailable
	return &series
}

func (s *Service) window(days int) (coreagg.DayWindow, error) {
	if days == 0 {
		days = s.defaultDays
	}
	if days < 1 || days > s.maxDays {
		return coreagg.DayWindow{}, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidQuery, s.maxDays)
	}
	return coreagg.NewDayWindow(s.nowFn(), days, s.loc)
}

func (s *Service) aggregate(ctx context.Context, chart coreagg.Chart, w coreagg.DayWindow) (*coreagg.Series, error) {
	records, err := s.sources.loadRecords(ctx, chart.Source, w)
	if err != nil {
		return nil, fmt.Errorf("load %s records for chart %s: %w", chart.Source, chart.Name, err)
	}

	series := coreagg.AggregateDaily(records, chart, w)
	slog.Debug("[Charts] Aggregated series",
		"chart", chart.Name,
		"days", w.Days,
		"records", len(records),
		"skipped", series.Skipped,
		"dropped", series.Dropped)
	return &series, nil
}
