package ports

import (
	"context"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, room *domain.Room)
	NotifyBookingMoved(ctx context.Context, booking *domain.Booking, room *domain.Room)
}
