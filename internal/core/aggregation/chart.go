package aggregation

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record sources a chart can read from.
const (
	SourceJobs          = "jobs"
	SourceExpenses      = "expenses"
	SourceQuoteRequests = "quote_requests"
)

// ErrUnknownChart is returned by ChartRepository.Get for an unregistered name.
var ErrUnknownChart = errors.New("unknown chart")

// BuiltinCharts are always available; files in the chart directory add to them.
func BuiltinCharts() []Chart {
	return []Chart{
		{
			Name:   "income",
			Title:  "Income Overview",
			Source: SourceJobs,
			Measures: []Measure{
				{Name: "net_income", Operator: OpSum, Field: "net_profit"},
				{Name: "expenses", Operator: OpSum, Field: "expenses"},
			},
			Derived: []DerivedMeasure{
				{Name: "gross_income", Operator: DerivedSubtract, Left: "net_income", Right: "expenses"},
			},
			Fingerprint: "builtin",
		},
		{
			Name:   "quote_requests",
			Title:  "Quote Request Submissions",
			Source: SourceQuoteRequests,
			Measures: []Measure{
				{Name: "count", Operator: OpCount},
			},
			Fingerprint: "builtin",
		},
		{
			Name:   "expenses",
			Title:  "Expenses",
			Source: SourceExpenses,
			Measures: []Measure{
				{Name: "total", Operator: OpSum, Field: "total_price"},
				{Name: "receipts", Operator: OpCount},
			},
			Fingerprint: "builtin",
		},
	}
}

// ChartRepository provides chart definitions by name.
type ChartRepository interface {
	// Get returns the chart with the given name, or an error if not found.
	Get(ctx context.Context, name string) (*Chart, error)

	// List returns all charts sorted by name.
	List(ctx context.Context) ([]Chart, error)
}

// FileSystemChartRepository serves the built-in charts plus one chart per
// *.yaml file in a directory. Files are loaded once at startup.
type FileSystemChartRepository struct {
	dir    string
	charts map[string]Chart
}

// NewFileSystemChartRepository loads built-ins and every chart file in dir.
// A file may replace a built-in of the same name. A missing dir is valid and
// yields only the built-ins. A malformed or invalid file fails the whole load.
func NewFileSystemChartRepository(dir string) (*FileSystemChartRepository, error) {
	repo := &FileSystemChartRepository{
		dir:    dir,
		charts: make(map[string]Chart),
	}
	for _, c := range BuiltinCharts() {
		repo.charts[c.Name] = c
	}
	if dir == "" {
		return repo, nil
	}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *FileSystemChartRepository) load() error {
	info, err := os.Stat(r.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("chart dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("chart path %q is not a directory", r.dir)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("reading chart dir: %w", err)
	}

	fromFile := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(r.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading chart file %s: %w", path, err)
		}

		var chart Chart
		if err := yaml.Unmarshal(data, &chart); err != nil {
			return fmt.Errorf("parsing chart file %s: %w", path, err)
		}
		if chart.Name == "" {
			continue // empty / comment-only file
		}
		if err := ValidateChart(chart); err != nil {
			return fmt.Errorf("chart file %s: %w", path, err)
		}
		if prev, dup := fromFile[chart.Name]; dup {
			return fmt.Errorf("chart %q: duplicate name in %s and %s", chart.Name, prev, path)
		}

		chart.Fingerprint = fmt.Sprintf("%x", sha256.Sum256(data))
		fromFile[chart.Name] = path
		r.charts[chart.Name] = chart
	}
	return nil
}

// ValidateChart checks a definition before it is served.
func ValidateChart(c Chart) error {
	switch c.Source {
	case SourceJobs, SourceExpenses, SourceQuoteRequests:
	default:
		return fmt.Errorf("chart %q: unsupported source %q", c.Name, c.Source)
	}
	if len(c.Measures) == 0 {
		return fmt.Errorf("chart %q: at least one measure is required", c.Name)
	}

	names := make(map[string]bool)
	for _, m := range c.Measures {
		if m.Name == "" {
			return fmt.Errorf("chart %q: measure name must not be empty", c.Name)
		}
		agg, ok := Operators[m.Operator]
		if !ok {
			return fmt.Errorf("chart %q: measure %q: unsupported operator %q", c.Name, m.Name, m.Operator)
		}
		if agg.NeedsField() && m.Field == "" {
			return fmt.Errorf("chart %q: measure %q: operator %s requires a field", c.Name, m.Name, m.Operator)
		}
		if names[m.Name] {
			return fmt.Errorf("chart %q: duplicate measure %q", c.Name, m.Name)
		}
		names[m.Name] = true
	}

	for _, d := range c.Derived {
		if !ValidDerivedOperator(d.Operator) {
			return fmt.Errorf("chart %q: derived %q: unsupported operator %q", c.Name, d.Name, d.Operator)
		}
		if !names[d.Left] || !names[d.Right] {
			return fmt.Errorf("chart %q: derived %q must reference declared measures", c.Name, d.Name)
		}
		if names[d.Name] {
			return fmt.Errorf("chart %q: duplicate measure %q", c.Name, d.Name)
		}
		names[d.Name] = true
	}
	return nil
}

// Get returns the chart with the given name, or an error if not found.
func (r *FileSystemChartRepository) Get(_ context.Context, name string) (*Chart, error) {
	chart, ok := r.charts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	return &chart, nil
}

// List returns all charts sorted by name.
func (r *FileSystemChartRepository) List(_ context.Context) ([]Chart, error) {
	out := make([]Chart, 0, len(r.charts))
	for _, c := range r.charts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
