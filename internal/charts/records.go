package charts

import (
	"context"
	"encoding/json"
	"fmt"

	coreagg "github.com/crystal-vistas/vistas-ops/internal/core/aggregation"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
)

// Sources are the collections a chart can read.
type Sources struct {
	Jobs     storage.JobStore
	Expenses storage.ExpenseStore
	Quotes   storage.QuoteStore
}

// loadRecords queries source for the window and flattens the documents into
// records. The store query narrows by the window; the aggregator checks the
// day of every record again.
func (s Sources) loadRecords(ctx context.Context, source string, w coreagg.DayWindow) ([]coreagg.Record, error) {
	switch source {
	case coreagg.SourceJobs:
		jobs, err := s.Jobs.ListJobsBetween(ctx, w.StartDate(), w.EndDate())
		if err != nil {
			return nil, err
		}
		out := make([]coreagg.Record, 0, len(jobs))
		for _, j := range jobs {
			rec, err := toRecord(j.ID, j)
			if err != nil {
				return nil, err
			}
			rec.Date = j.Date
			out = append(out, rec)
		}
		return out, nil

	case coreagg.SourceExpenses:
		expenses, err := s.Expenses.ListExpensesBetween(ctx, w.StartDate(), w.EndDate())
		if err != nil {
			return nil, err
		}
		out := make([]coreagg.Record, 0, len(expenses))
		for _, e := range expenses {
			rec, err := toRecord(e.ID, e)
			if err != nil {
				return nil, err
			}
			rec.Date = e.Date
			out = append(out, rec)
		}
		return out, nil

	case coreagg.SourceQuoteRequests:
		start, end := w.InstantRange()
		quotes, err := s.Quotes.ListQuoteRequestsBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		out := make([]coreagg.Record, 0, len(quotes))
		for _, q := range quotes {
			rec, err := toRecord(q.ID, q)
			if err != nil {
				return nil, err
			}
			rec.At = q.SubmittedAt
			out = append(out, rec)
		}
		return out, nil
	}
	return nil, fmt.Errorf("chart source %q is not readable", source)
}

// toRecord exposes a document's JSON fields as record data, so chart files can
// name fields the way the API spells them.
func toRecord(id string, doc interface{}) (coreagg.Record, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return coreagg.Record{}, fmt.Errorf("encode %s: %w", id, err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return coreagg.Record{}, fmt.Errorf("decode %s: %w", id, err)
	}
	return coreagg.Record{ID: id, Data: data}, nil
}
