package domain

import "time"

// Enrollment registers a user for the event. It is created by the external
// registration flow and is read-only here; a user without one cannot book.
// HasAddress reports whether the registration flow stored an address for the
// enrollment. It is informational only; no booking rule reads it.
type Enrollment struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	CPF        string    `json:"cpf"`
	HasAddress bool      `json:"has_address"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
