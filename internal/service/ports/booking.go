package ports

import (
	"context"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
)

// BookingRepo persists bookings. CreateWithinCapacity and
// ReassignWithinCapacity arbitrate room capacity atomically with the write:
// the count-then-write pair runs as one serializable unit per room, so two
// concurrent callers can never jointly overshoot a room's capacity.
type BookingRepo interface {
	FindByUser(ctx context.Context, userID int64) (*domain.Booking, error)
	FindByRoom(ctx context.Context, roomID int64) (*domain.Booking, error)
	CountForRoom(ctx context.Context, roomID int64) (int, error)
	CreateWithinCapacity(ctx context.Context, userID, roomID int64) (*domain.Booking, error)
	ReassignWithinCapacity(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error)
}
