package aggregation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one timestamped document read for charting. The aggregator only reads it.
//
// The calendar day comes from At when it is set (converted into the window's
// location), otherwise from Date, which holds "2006-01-02" or an RFC3339 value
// whose date part is used as-is.
type Record struct {
	ID   string
	Date string
	At   time.Time
	Data map[string]interface{}
}

// Measure folds one field of every record in a bucket with an operator.
type Measure struct {
	Name     string `yaml:"name" json:"name"`
	Operator string `yaml:"operator" json:"operator"`
	Field    string `yaml:"field" json:"field,omitempty"` // empty for count
}

// DerivedMeasure is computed per bucket from two accumulated measures, after
// all records have been folded.
type DerivedMeasure struct {
	Name     string `yaml:"name" json:"name"`
	Operator string `yaml:"operator" json:"operator"` // add, subtract
	Left     string `yaml:"left" json:"left"`
	Right    string `yaml:"right" json:"right"`
}

// Chart describes a daily series over one source collection.
type Chart struct {
	Name        string           `yaml:"name" json:"name"`
	Title       string           `yaml:"title" json:"title,omitempty"`
	Source      string           `yaml:"source" json:"source"`
	Measures    []Measure        `yaml:"measures" json:"measures"`
	Derived     []DerivedMeasure `yaml:"derived" json:"derived,omitempty"`
	Fingerprint string           `yaml:"-" json:"fingerprint,omitempty"`
}

// MeasureNames returns accumulated and derived measure names in declaration order.
func (c Chart) MeasureNames() []string {
	names := make([]string, 0, len(c.Measures)+len(c.Derived))
	for _, m := range c.Measures {
		names = append(names, m.Name)
	}
	for _, d := range c.Derived {
		names = append(names, d.Name)
	}
	return names
}

// DailyBucket holds the accumulators for one calendar day of the window.
type DailyBucket struct {
	Date        string                     `json:"date"`  // 2006-01-02
	Label       string                     `json:"label"` // 01/02
	Values      map[string]decimal.Decimal `json:"values"`
	RecordCount int64                      `json:"record_count"`
}

// Series is the aggregated result for one chart over one window.
type Series struct {
	Chart    string                     `json:"chart"`
	Title    string                     `json:"title,omitempty"`
	Timezone string                     `json:"timezone"`
	Start    string                     `json:"start"`
	End      string                     `json:"end"`
	Days     int                        `json:"days"`
	Buckets  []DailyBucket              `json:"buckets"`
	Totals   map[string]decimal.Decimal `json:"totals"`
	Skipped  int                        `json:"skipped"`
	Dropped  int                        `json:"dropped"`
	Notice   string                     `json:"notice,omitempty"`
}
