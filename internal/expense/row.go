package expense

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one stored expense as returned by the server. Rows are immutable
// once fetched; a refresh replaces the whole set.
type Row struct {
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	User        string
}

// wireRow matches the server's JSON shape: amounts arrive as either a JSON
// number or a string, dates as milliseconds since the epoch.
type wireRow struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        json.Number     `json:"date"`
	User        string          `json:"user"`
}

// UnmarshalJSON decodes a server row, converting the ms-epoch date to a
// local calendar timestamp.
func (r *Row) UnmarshalJSON(data []byte) error {
	var w wireRow
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	r.Category = w.Category
	r.Description = w.Description
	r.Amount = w.Amount
	r.User = w.User
	r.Date = time.Time{}
	if w.Date != "" {
		if ms, err := w.Date.Float64(); err == nil {
			r.Date = time.UnixMilli(int64(ms))
		}
	}
	return nil
}

// Day returns the row's date truncated to its calendar day.
func (r Row) Day() time.Time {
	y, m, d := r.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.Date.Location())
}

// DateMillis converts a calendar date to the server's wire format: start of
// the following day as milliseconds since the epoch.
func DateMillis(day time.Time) int64 {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	return start.AddDate(0, 0, 1).UnixMilli()
}
