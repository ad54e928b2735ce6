package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"kwarta/internal/api"
	"kwarta/internal/expense"
	"kwarta/internal/session"
)

type fakeSource struct {
	report api.MonthlyReport
	err    error

	start time.Time
	end   time.Time
	calls int
}

func (f *fakeSource) MonthlyData(ctx context.Context, start, end time.Time) (api.MonthlyReport, error) {
	f.calls++
	f.start = start
	f.end = end
	return f.report, f.err
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
}

func row(day int, amount string) expense.Row {
	return expense.Row{
		Category: "Leisure",
		Amount:   decimal.RequireFromString(amount),
		Date:     time.Date(2025, time.June, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(fixedNow())
	if !start.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestMonthRange_DecemberRollsOver(t *testing.T) {
	dec := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)
	start, end := MonthRange(dec)
	if !start.Equal(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, want first of January next year", end)
	}
}

func TestRefreshReplacesRowsAndSummary(t *testing.T) {
	src := &fakeSource{report: api.MonthlyReport{
		Rows:    []expense.Row{row(1, "100"), row(1, "50"), row(3, "25.50")},
		Summary: "You spent Php 175.50 this month.",
	}}
	r := NewAt(src, fixedNow)
	s := session.New()
	s.Summary = "stale"

	if err := r.Refresh(context.Background(), s); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if len(s.MonthlyRows) != 3 {
		t.Errorf("MonthlyRows = %d rows, want 3", len(s.MonthlyRows))
	}
	if s.Summary != "You spent Php 175.50 this month." {
		t.Errorf("Summary = %q", s.Summary)
	}

	// June has 30 days: one chart point per day, missing days zero-filled
	if len(s.Chart) != 30 {
		t.Fatalf("Chart has %d points, want 30", len(s.Chart))
	}
	if !s.Chart[0].Total.Equal(decimal.RequireFromString("150")) {
		t.Errorf("June 1 total = %s, want 150", s.Chart[0].Total)
	}
	if !s.Chart[1].Total.IsZero() {
		t.Errorf("June 2 total = %s, want 0", s.Chart[1].Total)
	}
	if !s.Chart[2].Total.Equal(decimal.RequireFromString("25.5")) {
		t.Errorf("June 3 total = %s, want 25.5", s.Chart[2].Total)
	}

	if !src.start.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("requested start = %v", src.start)
	}
}

func TestRefreshNoDataKeepsSummary(t *testing.T) {
	src := &fakeSource{report: api.MonthlyReport{}}
	r := NewAt(src, fixedNow)
	s := session.New()
	s.Summary = "previously fetched"
	s.MonthlyRows = []expense.Row{row(1, "10")}
	s.Chart = []session.DaySpend{{}}

	if err := r.Refresh(context.Background(), s); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if s.MonthlyRows != nil {
		t.Error("MonthlyRows not cleared on no-data")
	}
	if s.Chart != nil {
		t.Error("Chart not cleared on no-data")
	}
	if s.Summary != "previously fetched" {
		t.Errorf("Summary = %q, want previous value kept", s.Summary)
	}
}

func TestRefreshIdempotent(t *testing.T) {
	src := &fakeSource{report: api.MonthlyReport{
		Rows:    []expense.Row{row(10, "99.99")},
		Summary: "one expense",
	}}
	r := NewAt(src, fixedNow)
	s := session.New()

	if err := r.Refresh(context.Background(), s); err != nil {
		t.Fatalf("first Refresh: %v", err)
	}
	firstRows := len(s.MonthlyRows)
	firstSummary := s.Summary
	firstChart := len(s.Chart)

	if err := r.Refresh(context.Background(), s); err != nil {
		t.Fatalf("second Refresh: %v", err)
	}

	if len(s.MonthlyRows) != firstRows || s.Summary != firstSummary || len(s.Chart) != firstChart {
		t.Error("second refresh with identical data changed the session")
	}
	if src.calls != 2 {
		t.Errorf("source called %d times, want 2", src.calls)
	}
}

func TestRefreshPropagatesErrors(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	r := NewAt(src, fixedNow)
	s := session.New()
	s.Summary = "kept"

	if err := r.Refresh(context.Background(), s); err == nil {
		t.Fatal("Refresh swallowed the source error")
	}
	if s.Summary != "kept" {
		t.Error("failed refresh mutated the summary")
	}
}

func TestDailySeriesEmptyRows(t *testing.T) {
	start, end := MonthRange(fixedNow())
	series := DailySeries(nil, start, end)
	if len(series) != 30 {
		t.Fatalf("series has %d points, want 30", len(series))
	}
	for _, p := range series {
		if !p.Total.IsZero() {
			t.Fatalf("day %v total = %s, want 0", p.Day, p.Total)
		}
	}
}
