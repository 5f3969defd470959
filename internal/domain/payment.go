package domain

import "time"

// Payment records a completed ticket payment. Payments are created by the
// external payment flow; this service only looks them up.
type Payment struct {
	ID             int64     `json:"id"`
	TicketID       int64     `json:"ticket_id"`
	Value          int64     `json:"value"`
	CardIssuer     string    `json:"card_issuer"`
	CardLastDigits string    `json:"card_last_digits"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
