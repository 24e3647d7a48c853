package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createClientRequest struct {
	Name       string   `json:"name"        validate:"required"`
	Phone      string   `json:"phone"       validate:"required"`
	FlatNumber string   `json:"flat_number"`
	TrustScore int      `json:"trust_score" validate:"gte=0,lte=100"`
	Tags       []string `json:"tags"`
	Notes      string   `json:"notes"`
}

type addTransactionRequest struct {
	ServiceName string     `json:"service_name" validate:"required"`
	Amount      float64    `json:"amount"       validate:"gte=0"`
	IsPaid      bool       `json:"is_paid"`
	DueDate     *time.Time `json:"due_date"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to
// internal changes.

type clientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	FlatNumber string    `json:"flat_number"`
	TrustScore int       `json:"trust_score"`
	Tags       []string  `json:"tags"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type listClientsResponse struct {
	Data []clientResponse `json:"data"`
}

type transactionResponse struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	ClientName  string     `json:"client_name"`
	ServiceName string     `json:"service_name"`
	Amount      float64    `json:"amount"`
	IsPaid      bool       `json:"is_paid"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type listTransactionsResponse struct {
	Data []transactionResponse `json:"data"`
}

type flatSummaryResponse struct {
	FlatNumber  string `json:"flat_number"`
	ClientCount int    `json:"client_count"`
}

type listFlatsResponse struct {
	Data []flatSummaryResponse `json:"data"`
}
