package domain

import "time"

// Booking reserves one spot in a room for a user. A user holds at most one
// booking; its room is the only field that ever changes, and only through
// the update flow while the owning user stays the same.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RoomID    int64     `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingDetails is the read model for a user's booking.
type BookingDetails struct {
	ID   int64 `json:"id"`
	Room Room  `json:"Room"`
}
