package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")
var ErrInvalidTrustScore = errors.New("trust score must be between 0 and 100")
var ErrForbidden = errors.New("access forbidden")

// Client is a registry entry for a customer of the business.
type Client struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Phone      string    `json:"phone" bson:"phone"`
	FlatNumber string    `json:"flat_number" bson:"flat_number"`
	TrustScore int       `json:"trust_score" bson:"trust_score"`
	Tags       []string  `json:"tags" bson:"tags"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// FlatSummary aggregates clients by flat number.
type FlatSummary struct {
	FlatNumber  string `json:"flat_number" bson:"_id"`
	ClientCount int    `json:"client_count" bson:"client_count"`
}
