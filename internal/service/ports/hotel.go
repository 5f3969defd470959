package ports

import (
	"context"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
)

type HotelRepo interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	GetRooms(ctx context.Context, hotelID int64) (*domain.HotelRooms, error)
	FindRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}
