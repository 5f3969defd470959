package dto

import (
	"time"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
)

type BookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	HotelID  int64  `json:"hotelId"`
}

type BookingResponse struct {
	ID   int64        `json:"id"`
	Room RoomResponse `json:"Room"`
}

type HotelResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	CreatedAt string `json:"createdAt"`
}

type HotelRoomsResponse struct {
	Hotel HotelResponse  `json:"hotel"`
	Rooms []RoomResponse `json:"rooms"`
}

type TicketTypeResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

type PaymentResponse struct {
	ID             int64  `json:"id"`
	TicketID       int64  `json:"ticketId"`
	Value          int64  `json:"value"`
	CardIssuer     string `json:"cardIssuer"`
	CardLastDigits string `json:"cardLastDigits"`
	CreatedAt      string `json:"createdAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: r.Capacity,
		HotelID:  r.HotelID,
	}
}

func ToBookingResponse(b *domain.BookingDetails) BookingResponse {
	return BookingResponse{
		ID:   b.ID,
		Room: ToRoomResponse(&b.Room),
	}
}

func ToHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Image:     h.Image,
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
	}
}

func ToHotelRoomsResponse(hr *domain.HotelRooms) HotelRoomsResponse {
	rooms := make([]RoomResponse, 0, len(hr.Rooms))
	for i := range hr.Rooms {
		rooms = append(rooms, ToRoomResponse(&hr.Rooms[i]))
	}

	return HotelRoomsResponse{
		Hotel: ToHotelResponse(&hr.Hotel),
		Rooms: rooms,
	}
}

func ToTicketTypeResponse(tt *domain.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		ID:            tt.ID,
		Name:          tt.Name,
		Price:         tt.Price,
		IsRemote:      tt.IsRemote,
		IncludesHotel: tt.IncludesHotel,
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		TicketID:       p.TicketID,
		Value:          p.Value,
		CardIssuer:     p.CardIssuer,
		CardLastDigits: p.CardLastDigits,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}
