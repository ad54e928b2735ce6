package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kwarta/internal/log"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second, log.New(io.Discard, "test"))
}

func TestLoginReturnsDisplayName(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/db/auth-login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding login body: %v", err)
		}
		if req.Username != "alice" || req.Password != "secret" {
			t.Errorf("body = %+v", req)
		}
		_, _ = w.Write([]byte(`{"name": "Alice Lee"}`))
	})

	name, err := c.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if name != "Alice Lee" {
		t.Errorf("name = %q, want %q", name, "Alice Lee")
	}
}

func TestLoginFallsBackToUsername(t *testing.T) {
	for _, body := range []string{`{"name": ""}`, `{}`, `not json`} {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		name, err := c.Login(context.Background(), "alice", "secret")
		if err != nil {
			t.Fatalf("Login with body %q: %v", body, err)
		}
		if name != "alice" {
			t.Errorf("body %q: name = %q, want username fallback", body, name)
		}
	}
}

func TestLoginRejectedIsServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "alice", "wrong")
	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("err = %v, want *ServerError", err)
	}
	if serverErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d", serverErr.Status)
	}
}

func TestUnreachableServerIsErrConnection(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens here anymore
	c := New(srv.URL, time.Second, log.New(io.Discard, "test"))

	_, err := c.Login(context.Background(), "alice", "secret")
	if !errors.Is(err, ErrConnection) {
		t.Fatalf("err = %v, want ErrConnection", err)
	}
}

func TestStoreExpense(t *testing.T) {
	var got StoreExpenseRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/db/store" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding store body: %v", err)
		}
	})

	req := StoreExpenseRequest{
		Username:    "alice",
		Category:    "Leisure",
		Description: "coffee",
		Amount:      "4.50",
		Date:        1750032000000,
	}
	if err := c.StoreExpense(context.Background(), req); err != nil {
		t.Fatalf("StoreExpense: %v", err)
	}
	if got != req {
		t.Errorf("server saw %+v, want %+v", got, req)
	}
}

func TestStoreExpenseServerFailure(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.StoreExpense(context.Background(), StoreExpenseRequest{Username: "alice"})
	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("err = %v, want *ServerError", err)
	}
}

func TestMonthlyDataSendsWireDates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("start_date") != "06-01-2025" {
			t.Errorf("start_date = %q", q.Get("start_date"))
		}
		if q.Get("end_date") != "07-01-2025" {
			t.Errorf("end_date = %q", q.Get("end_date"))
		}
		_, _ = w.Write([]byte(`{
			"data": [{"category": "Leisure", "description": "coffee", "amount": "4.50", "date": 1750032000000, "user": "alice"}],
			"summary": "You spent Php 4.50."
		}`))
	})

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	report, err := c.MonthlyData(context.Background(), start, end)
	if err != nil {
		t.Fatalf("MonthlyData: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("got %d rows", len(report.Rows))
	}
	if report.Rows[0].Description != "coffee" {
		t.Errorf("description = %q", report.Rows[0].Description)
	}
	if report.Summary != "You spent Php 4.50." {
		t.Errorf("summary = %q", report.Summary)
	}
}

func TestMonthlyDataEmptyReport(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [], "summary": ""}`))
	})

	report, err := c.MonthlyData(context.Background(), time.Now(), time.Now())
	if err != nil {
		t.Fatalf("empty report must not be an error, got %v", err)
	}
	if len(report.Rows) != 0 || report.Summary != "" {
		t.Errorf("report = %+v, want empty", report)
	}
}

func TestHistorySendsUsernameInBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		var req historyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding history body: %v", err)
		}
		if req.Username != "alice" {
			t.Errorf("username = %q", req.Username)
		}
		_, _ = w.Write([]byte(`{"data": [
			{"category": "Utilities", "description": "power", "amount": 120, "date": 1750032000000, "user": "alice"}
		]}`))
	})

	rows, err := c.History(context.Background(), "alice")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(rows) != 1 || rows[0].Category != "Utilities" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestSendChatMessageFailuresAreSilent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	reply, ok := c.SendChatMessage(context.Background(), "alice", "hello")
	if ok {
		t.Error("ok = true on server failure")
	}
	if reply != "" {
		t.Errorf("reply = %q, want empty", reply)
	}
}

func TestSendChatMessage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding chat body: %v", err)
		}
		if req.User != "alice" || req.Message != "how much did I spend?" {
			t.Errorf("body = %+v", req)
		}
		_, _ = w.Write([]byte(`{"message": "Php 4.50 so far."}`))
	})

	reply, ok := c.SendChatMessage(context.Background(), "alice", "how much did I spend?")
	if !ok {
		t.Fatal("ok = false")
	}
	if reply != "Php 4.50 so far." {
		t.Errorf("reply = %q", reply)
	}
}

func TestClearDatabase(t *testing.T) {
	var hit bool
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		hit = r.Method == http.MethodPost && r.URL.Path == "/api/db/clear-db"
	})

	if err := c.ClearDatabase(context.Background()); err != nil {
		t.Fatalf("ClearDatabase: %v", err)
	}
	if !hit {
		t.Error("clear-db endpoint not hit")
	}
}
