package domain

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType is immutable reference data describing what a ticket entitles
// its holder to.
type TicketType struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	IsRemote      bool      `json:"is_remote"`
	IncludesHotel bool      `json:"includes_hotel"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Ticket links an enrollment to a ticket type. Its status is moved from
// RESERVED to PAID by the external payment flow; this service only reads it.
type Ticket struct {
	ID           int64        `json:"id"`
	EnrollmentID int64        `json:"enrollment_id"`
	TicketTypeID int64        `json:"ticket_type_id"`
	Status       TicketStatus `json:"status"`
	Type         TicketType   `json:"ticket_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
