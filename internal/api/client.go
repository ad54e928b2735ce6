// Package api provides a typed client for the remote expense service.
// Every transport fault is normalized at this boundary: callers see either
// ErrConnection, a *ServerError, or a wrapped decode error, never a raw
// net/http failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kwarta/internal/expense"
	"kwarta/internal/log"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB

	// wireDateFormat is the MM-DD-YYYY format the server expects for
	// monthly-data range parameters.
	wireDateFormat = "01-02-2006"
)

// ErrConnection indicates the service could not be reached at all.
// Its message is shown to the user verbatim.
var ErrConnection = errors.New("Request failed. Connection is not found")

// ServerError indicates the service answered with a non-200 status.
type ServerError struct {
	Op     string
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

// Client talks to the expense service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *log.Logger
}

// New creates a client for the given base URL. A zero timeout falls back
// to the default.
func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
		log:     logger,
	}
}

// StoreExpense persists one expense. A non-200 response is a *ServerError;
// the payload is not re-sent.
func (c *Client) StoreExpense(ctx context.Context, req StoreExpenseRequest) error {
	c.log.Info("storing expense", "category", req.Category, "user", req.Username)
	status, _, err := c.do(ctx, http.MethodPost, "/api/db/store", nil, req)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &ServerError{Op: "store", Status: status}
	}
	return nil
}

// MonthlyData fetches rows and summary for [start, end). Dates are sent in
// MM-DD-YYYY form. An empty report means the server has no data; that is
// not an error.
func (c *Client) MonthlyData(ctx context.Context, start, end time.Time) (MonthlyReport, error) {
	params := map[string]string{
		"start_date": start.Format(wireDateFormat),
		"end_date":   end.Format(wireDateFormat),
	}
	status, body, err := c.do(ctx, http.MethodGet, "/api/db/monthly-data", params, nil)
	if err != nil {
		return MonthlyReport{}, err
	}
	if status != http.StatusOK {
		return MonthlyReport{}, &ServerError{Op: "monthly-data", Status: status}
	}

	var report MonthlyReport
	if err := json.Unmarshal(body, &report); err != nil {
		return MonthlyReport{}, fmt.Errorf("parsing monthly data: %w", err)
	}
	return report, nil
}

// History fetches every stored expense for the user. The server reads the
// username from a JSON body on this GET; that contract is external and fixed.
func (c *Client) History(ctx context.Context, username string) ([]expense.Row, error) {
	c.log.Info("fetching expense history", "user", username)
	status, body, err := c.do(ctx, http.MethodGet, "/api/db/history", nil, historyRequest{Username: username})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &ServerError{Op: "history", Status: status}
	}

	var resp historyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	return resp.Rows, nil
}

// ClearDatabase deletes all stored expenses.
func (c *Client) ClearDatabase(ctx context.Context) error {
	status, _, err := c.do(ctx, http.MethodPost, "/api/db/clear-db", nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &ServerError{Op: "clear-db", Status: status}
	}
	return nil
}

// Register creates an account and returns the display name, falling back to
// the username when the server returns an empty name.
func (c *Client) Register(ctx context.Context, name, username, password string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/api/db/auth-register", nil, registerRequest{
		Name:     name,
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		c.log.Error("register failed", "user", username, "status", status)
		return "", &ServerError{Op: "register", Status: status}
	}
	return displayName(body, username), nil
}

// Login authenticates and returns the display name, with the same fallback
// rule as Register.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/api/db/auth-login", nil, loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		c.log.Error("login failed", "user", username, "status", status)
		return "", &ServerError{Op: "login", Status: status}
	}
	return displayName(body, username), nil
}

// SendChatMessage forwards one user message to the chat assistant. Any
// failure (transport or non-200) yields ok=false and is logged, never
// surfaced: the chat panel simply appends no assistant turn.
func (c *Client) SendChatMessage(ctx context.Context, user, text string) (string, bool) {
	status, body, err := c.do(ctx, http.MethodPost, "/api/chat/send-message", nil, chatRequest{
		User:    user,
		Message: text,
	})
	if err != nil {
		c.log.Error("chat request failed", "err", err)
		return "", false
	}
	if status != http.StatusOK {
		c.log.Error("chat request rejected", "status", status)
		return "", false
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.log.Error("parsing chat response", "err", err)
		return "", false
	}
	return resp.Message, true
}

// do performs one round trip and returns the status and body. Connection
// failures come back wrapped in ErrConnection.
func (c *Client) do(ctx context.Context, method, path string, params map[string]string, payload any) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if len(params) > 0 {
		q := req.URL.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "err", err)
		return 0, nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// displayName extracts the name from an auth response, defaulting to the
// username when absent or empty.
func displayName(body []byte, username string) string {
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Name == "" {
		return username
	}
	return resp.Name
}
