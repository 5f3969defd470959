package domain

import "time"

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Room is static reference data; capacity is always positive.
type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotel_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HotelRooms struct {
	Hotel Hotel  `json:"hotel"`
	Rooms []Room `json:"rooms"`
}
