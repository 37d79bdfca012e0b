package aggregation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

type compiledMeasure struct {
	measure Measure
	agg     Aggregator
}

// AggregateDaily folds records into one bucket per calendar day of w, oldest
// first. The result always has exactly w.Days buckets, including days with no
// records.
//
// Records whose day falls outside w are dropped. Malformed records (no usable
// date, or a missing or non-numeric measure field) are skipped with a warning
// and do not abort the aggregation.
func AggregateDaily(records []Record, chart Chart, w DayWindow) Series {
	measures := compileMeasures(chart)

	buckets := make([]DailyBucket, w.Days)
	index := make(map[string]int, w.Days)
	for i := 0; i < w.Days; i++ {
		day := w.Day(i)
		key := day.Format(DateLayout)
		buckets[i] = DailyBucket{
			Date:   key,
			Label:  day.Format(labelLayout),
			Values: zeroValues(chart),
		}
		index[key] = i
	}

	series := Series{
		Chart:    chart.Name,
		Title:    chart.Title,
		Timezone: w.Loc.String(),
		Start:    w.StartDate(),
		End:      w.EndDate(),
		Days:     w.Days,
	}

	for _, rec := range records {
		day, err := recordDay(rec, w.Loc)
		if err != nil {
			slog.Warn("[Aggregator] Skipping record with unusable date",
				"chart", chart.Name, "record_id", rec.ID, "date", rec.Date, "error", err)
			series.Skipped++
			continue
		}

		i, ok := index[day.Format(DateLayout)]
		if !ok {
			series.Dropped++
			continue
		}

		incoming, err := extractMeasures(rec, measures)
		if err != nil {
			slog.Warn("[Aggregator] Skipping malformed record",
				"chart", chart.Name, "record_id", rec.ID, "error", err)
			series.Skipped++
			continue
		}

		b := &buckets[i]
		for j, cm := range measures {
			name := cm.measure.Name
			if b.RecordCount == 0 {
				b.Values[name] = cm.agg.Initial(incoming[j])
			} else {
				b.Values[name] = cm.agg.Apply(b.Values[name], incoming[j])
			}
		}
		b.RecordCount++
	}

	for i := range buckets {
		applyDerived(buckets[i].Values, chart.Derived)
	}

	if series.Dropped > 0 {
		slog.Debug("[Aggregator] Dropped records outside window",
			"chart", chart.Name, "dropped", series.Dropped, "start", series.Start, "end", series.End)
	}
	if series.Skipped > 0 {
		series.Notice = fmt.Sprintf("%d record(s) skipped because of malformed data", series.Skipped)
	}

	series.Buckets = buckets
	series.Totals = rollupTotals(buckets, chart, measures)
	return series
}

func compileMeasures(chart Chart) []compiledMeasure {
	out := make([]compiledMeasure, 0, len(chart.Measures))
	for _, m := range chart.Measures {
		agg, ok := Operators[m.Operator]
		if !ok {
			slog.Warn("[Aggregator] Skip measure with unknown operator",
				"chart", chart.Name, "measure", m.Name, "operator", m.Operator)
			continue
		}
		out = append(out, compiledMeasure{measure: m, agg: agg})
	}
	return out
}

func zeroValues(chart Chart) map[string]decimal.Decimal {
	values := make(map[string]decimal.Decimal, len(chart.Measures)+len(chart.Derived))
	for _, name := range chart.MeasureNames() {
		values[name] = decimal.Zero
	}
	return values
}

func recordDay(rec Record, loc *time.Location) (time.Time, error) {
	if !rec.At.IsZero() {
		return DayOf(rec.At, loc), nil
	}
	return ParseRecordDate(rec.Date, loc)
}

// extractMeasures validates every field-based measure before any is folded,
// so a record contributes to all measures of its bucket or to none.
func extractMeasures(rec Record, measures []compiledMeasure) ([]decimal.Decimal, error) {
	values := make([]decimal.Decimal, len(measures))
	for i, cm := range measures {
		if !cm.agg.NeedsField() {
			continue
		}
		v, ok := LookupDecimal(rec.Data, cm.measure.Field)
		if !ok {
			return nil, fmt.Errorf("field %q is missing or not numeric", cm.measure.Field)
		}
		values[i] = v
	}
	return values, nil
}

func applyDerived(values map[string]decimal.Decimal, derived []DerivedMeasure) {
	for _, d := range derived {
		fn, ok := derivedOperators[d.Operator]
		if !ok {
			continue
		}
		values[d.Name] = fn(values[d.Left], values[d.Right])
	}
}

// rollupTotals sums count/sum measures across the window and takes the global
// min/max over buckets that saw records. Derived totals are recomputed from the
// rolled-up operands.
func rollupTotals(buckets []DailyBucket, chart Chart, measures []compiledMeasure) map[string]decimal.Decimal {
	totals := zeroValues(chart)

	for _, cm := range measures {
		name := cm.measure.Name
		initialized := false
		for _, b := range buckets {
			if b.RecordCount == 0 {
				continue
			}
			v := b.Values[name]
			switch cm.measure.Operator {
			case OpCount, OpSum:
				totals[name] = totals[name].Add(v)
			case OpMin:
				if !initialized || v.LessThan(totals[name]) {
					totals[name] = v
				}
			case OpMax:
				if !initialized || v.GreaterThan(totals[name]) {
					totals[name] = v
				}
			}
			initialized = true
		}
	}

	applyDerived(totals, chart.Derived)
	return totals
}
