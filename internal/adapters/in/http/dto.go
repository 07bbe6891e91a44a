package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is returned by POST /chat on success and on failure alike.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// NewOrder is the body of POST /api/v1/orders. Total accepts a JSON number or
// a decimal string.
type NewOrder struct {
	OrderNumber  int64           `json:"orderNumber"`
	Status       string          `json:"status"`
	Items        []string        `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CustomerName string          `json:"customerName"`
	Address      string          `json:"address"`
	OrderDate    string          `json:"orderDate"`
}

// Order is the admin API view of a stored order.
type Order struct {
	OrderNumber  int64    `json:"orderNumber"`
	Status       string   `json:"status"`
	Items        []string `json:"items"`
	Total        string   `json:"total"`
	CustomerName string   `json:"customerName"`
	Address      string   `json:"address"`
	OrderDate    string   `json:"orderDate"`
}

// Error is the admin API error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health is the body of GET /health.
type Health struct {
	Status       string             `json:"status"`
	Dependencies []DependencyHealth `json:"dependencies"`
}

type DependencyHealth struct {
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Error     string     `json:"error,omitempty"`
	CheckedAt *time.Time `json:"checkedAt,omitempty"`
}
