package api

import "kwarta/internal/expense"

// StoreExpenseRequest is the payload for POST /api/db/store.
// Amount stays a string on the wire; the server parses it.
type StoreExpenseRequest struct {
	Username    string `json:"username"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        int64  `json:"date"`
}

// MonthlyReport is the decoded response of GET /api/db/monthly-data.
// Both fields empty means the server has no data for the range, which is
// not an error.
type MonthlyReport struct {
	Rows    []expense.Row `json:"data"`
	Summary string        `json:"summary"`
}

type historyRequest struct {
	Username string `json:"username"`
}

type historyResponse struct {
	Rows []expense.Row `json:"data"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Name string `json:"name"`
}

type chatRequest struct {
	User    string `json:"user"`
	Message string `json:"message"`
}

type chatResponse struct {
	Message string `json:"message"`
}
