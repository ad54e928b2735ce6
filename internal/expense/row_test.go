package expense

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRowUnmarshal(t *testing.T) {
	raw := `{"category":"Leisure","description":"movies","amount":"350.75","date":1717200000000,"user":"alice"}`

	var row Row
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if row.Category != "Leisure" {
		t.Errorf("Category = %q, want Leisure", row.Category)
	}
	if !row.Amount.Equal(decimal.RequireFromString("350.75")) {
		t.Errorf("Amount = %s, want 350.75", row.Amount)
	}
	if got := row.Date.UnixMilli(); got != 1717200000000 {
		t.Errorf("Date = %d ms, want 1717200000000", got)
	}
	if row.User != "alice" {
		t.Errorf("User = %q, want alice", row.User)
	}
}

func TestRowUnmarshal_NumericAmount(t *testing.T) {
	raw := `{"category":"Utilities","amount":120.5,"date":1717200000000}`

	var row Row
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !row.Amount.Equal(decimal.NewFromFloat(120.5)) {
		t.Errorf("Amount = %s, want 120.5", row.Amount)
	}
}

func TestDateMillis(t *testing.T) {
	day := time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)

	got := DateMillis(day)
	want := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Fatalf("DateMillis = %d, want %d (start of following day)", got, want)
	}
}

func TestRowDay(t *testing.T) {
	row := Row{Date: time.Date(2025, time.June, 15, 23, 59, 1, 0, time.UTC)}
	want := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !row.Day().Equal(want) {
		t.Fatalf("Day = %v, want %v", row.Day(), want)
	}
}
