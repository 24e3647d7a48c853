package domain

import (
	"errors"
	"time"
)

var ErrTransactionNotFound = errors.New("transaction not found")
var ErrNegativeAmount = errors.New("amount must be non-negative")

// Transaction records a single service rendered to a client. The only
// mutation after creation is flipping the paid flag. A transaction with no
// due date is never classified as upcoming.
type Transaction struct {
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
