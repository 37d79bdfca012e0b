package aggregation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeChartFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestFileSystemChartRepository_BuiltinsOnly(t *testing.T) {
	repo, err := NewFileSystemChartRepository("")
	require.NoError(t, err)

	charts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, charts, 3)
	require.Equal(t, "expenses", charts[0].Name)
	require.Equal(t, "income", charts[1].Name)
	require.Equal(t, "quote_requests", charts[2].Name)

	income, err := repo.Get(context.Background(), "income")
	require.NoError(t, err)
	require.Equal(t, []string{"net_income", "expenses", "gross_income"}, income.MeasureNames())
	require.Equal(t, "builtin", income.Fingerprint)
}

func TestFileSystemChartRepository_MissingDirIsValid(t *testing.T) {
	repo, err := NewFileSystemChartRepository(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	charts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, charts, 3)
}

func TestFileSystemChartRepository_LoadsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	writeChartFile(t, dir, "mileage.yaml", `
name: mileage
title: Mileage
source: jobs
measures:
  - name: miles
    operator: sum
    field: mileage
`)
	writeChartFile(t, dir, "income.yml", `
name: income
title: Income (custom)
source: jobs
measures:
  - name: net_income
    operator: sum
    field: net_profit
`)
	writeChartFile(t, dir, "empty.yaml", "# nothing here\n")
	writeChartFile(t, dir, "README.md", "ignored")

	repo, err := NewFileSystemChartRepository(dir)
	require.NoError(t, err)

	mileage, err := repo.Get(context.Background(), "mileage")
	require.NoError(t, err)
	require.Equal(t, SourceJobs, mileage.Source)
	require.Len(t, mileage.Fingerprint, 64)

	income, err := repo.Get(context.Background(), "income")
	require.NoError(t, err)
	require.Equal(t, "Income (custom)", income.Title)
	require.Empty(t, income.Derived)

	charts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, charts, 4)
}

func TestFileSystemChartRepository_DuplicateFileNames(t *testing.T) {
	dir := t.TempDir()
	body := `
name: dup
source: quote_requests
measures:
  - name: count
    operator: count
`
	writeChartFile(t, dir, "a.yaml", body)
	writeChartFile(t, dir, "b.yaml", body)

	_, err := NewFileSystemChartRepository(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate name")
}

func TestFileSystemChartRepository_InvalidFileFailsLoad(t *testing.T) {
	dir := t.TempDir()
	writeChartFile(t, dir, "bad.yaml", `
name: bad
source: invoices
measures:
  - name: count
    operator: count
`)

	_, err := NewFileSystemChartRepository(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported source")
}

func TestFileSystemChartRepository_GetUnknown(t *testing.T) {
	repo, err := NewFileSystemChartRepository("")
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrUnknownChart)
}

func TestValidateChart(t *testing.T) {
	base := func() Chart {
		return Chart{
			Name:   "c",
			Source: SourceJobs,
			Measures: []Measure{
				{Name: "a", Operator: OpSum, Field: "net_profit"},
				{Name: "b", Operator: OpCount},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Chart)
		wantErr string
	}{
		{name: "valid", mutate: func(*Chart) {}},
		{name: "no measures", mutate: func(c *Chart) { c.Measures = nil }, wantErr: "at least one measure"},
		{name: "unknown operator", mutate: func(c *Chart) { c.Measures[0].Operator = "avg" }, wantErr: "unsupported operator"},
		{name: "sum without field", mutate: func(c *Chart) { c.Measures[0].Field = "" }, wantErr: "requires a field"},
		{name: "empty measure name", mutate: func(c *Chart) { c.Measures[1].Name = "" }, wantErr: "must not be empty"},
		{name: "duplicate measure", mutate: func(c *Chart) { c.Measures[1].Name = "a" }, wantErr: "duplicate measure"},
		{
			name: "derived references unknown",
			mutate: func(c *Chart) {
				c.Derived = []DerivedMeasure{{Name: "d", Operator: DerivedAdd, Left: "a", Right: "zzz"}}
			},
			wantErr: "must reference declared measures",
		},
		{
			name: "derived bad operator",
			mutate: func(c *Chart) {
				c.Derived = []DerivedMeasure{{Name: "d", Operator: "divide", Left: "a", Right: "b"}}
			},
			wantErr: "unsupported operator",
		},
		{
			name: "derived ok",
			mutate: func(c *Chart) {
				c.Derived = []DerivedMeasure{{Name: "d", Operator: DerivedSubtract, Left: "a", Right: "b"}}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(&c)
			err := ValidateChart(c)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
