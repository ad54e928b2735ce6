// Package dashboard derives the monthly view from the remote service:
// the row set, the summary text, and the per-day chart series.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"kwarta/internal/api"
	"kwarta/internal/expense"
	"kwarta/internal/session"
)

// MonthlySource provides the monthly report. Satisfied by *api.Client.
type MonthlySource interface {
	MonthlyData(ctx context.Context, start, end time.Time) (api.MonthlyReport, error)
}

// Refresher recomputes the dashboard after mutating actions: login,
// successful store, and exit from the expense form.
type Refresher struct {
	src MonthlySource
	now func() time.Time
}

// New creates a refresher reading the current month from the wall clock.
func New(src MonthlySource) *Refresher {
	return &Refresher{src: src, now: time.Now}
}

// NewAt creates a refresher with a fixed clock, for tests.
func NewAt(src MonthlySource, now func() time.Time) *Refresher {
	return &Refresher{src: src, now: now}
}

// MonthRange returns the current month as [first-of-month, first-of-next-month).
func MonthRange(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}

// Refresh fetches the current month and updates the session's dashboard
// cache in place. When the server reports no data, MonthlyRows and Chart
// become nil but a previously populated Summary is left alone: the summary
// is only ever cleared by sign-out.
func (r *Refresher) Refresh(ctx context.Context, s *session.Session) error {
	start, end := MonthRange(r.now())

	report, err := r.src.MonthlyData(ctx, start, end)
	if err != nil {
		return err
	}

	if len(report.Rows) == 0 && report.Summary == "" {
		s.MonthlyRows = nil
		s.Chart = nil
		return nil
	}

	s.MonthlyRows = report.Rows
	if report.Summary != "" {
		s.Summary = report.Summary
	}
	s.Chart = DailySeries(report.Rows, start, end)
	return nil
}

// DailySeries sums row amounts by calendar day across [start, end), one
// point per day with missing days zero-filled.
func DailySeries(rows []expense.Row, start, end time.Time) []session.DaySpend {
	totals := make(map[time.Time]decimal.Decimal)
	for _, row := range rows {
		day := row.Day()
		totals[day] = totals[day].Add(row.Amount)
	}

	var series []session.DaySpend
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		series = append(series, session.DaySpend{Day: day, Total: totals[day]})
	}
	return series
}
