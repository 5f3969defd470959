package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/Kuhaakuore/Driven.t-API/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo    ports.BookingRepo
	enrollmentRepo ports.EnrollmentRepo
	ticketRepo     ports.TicketRepo
	hotelRepo      ports.HotelRepo
	notifier       ports.BookingNotifier
	logger         logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	enrollmentRepo ports.EnrollmentRepo,
	ticketRepo ports.TicketRepo,
	hotelRepo ports.HotelRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		hotelRepo:      hotelRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Get returns the caller's booking together with its room.
func (s *BookingService) Get(ctx context.Context, userID int64) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	room, err := s.hotelRepo.FindRoom(ctx, booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get booked room: %w", err)
	}

	return &domain.BookingDetails{ID: booking.ID, Room: *room}, nil
}

// Create books a room for the user. Eligibility is decided first with plain
// reads; the capacity check happens inside the repository write so the
// count-then-insert pair is atomic per room. No lock is held while the
// enrollment, ticket and room lookups run.
func (s *BookingService) Create(ctx context.Context, userID, roomID int64) (int64, error) {
	if err := s.validateCreate(ctx, userID, roomID); err != nil {
		return 0, err
	}

	booking, err := s.bookingRepo.CreateWithinCapacity(ctx, userID, roomID)
	if err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("user_id", userID),
		logger.Int64("room_id", roomID),
	)

	if room, roomErr := s.hotelRepo.FindRoom(ctx, roomID); roomErr == nil {
		go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, room)
	}

	return booking.ID, nil
}

// Update moves the caller's existing booking to another room. The booking
// keeps its identity; only the room changes.
func (s *BookingService) Update(ctx context.Context, userID, roomID int64) (int64, error) {
	current, err := s.validateUpdate(ctx, userID, roomID)
	if err != nil {
		return 0, err
	}

	booking, err := s.bookingRepo.ReassignWithinCapacity(ctx, current.ID, roomID)
	if err != nil {
		return 0, fmt.Errorf("change booking: %w", err)
	}

	s.logger.Info("booking moved",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("user_id", userID),
		logger.Int64("room_id", roomID),
	)

	if room, roomErr := s.hotelRepo.FindRoom(ctx, roomID); roomErr == nil {
		go s.notifier.NotifyBookingMoved(context.WithoutCancel(ctx), booking, room)
	}

	return booking.ID, nil
}

// validateCreate runs the create eligibility chain. Order matters: each
// denial reason corresponds to the first failing check.
func (s *BookingService) validateCreate(ctx context.Context, userID, roomID int64) error {
	enrollment, err := s.enrollmentRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return domain.ErrNotEnrolled
		}
		return fmt.Errorf("find enrollment: %w", err)
	}

	ticket, err := s.ticketRepo.FindByEnrollment(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return domain.ErrNoTicket
		}
		return fmt.Errorf("find ticket: %w", err)
	}

	// The three sub-conditions are one denial category by contract.
	if ticket.Status != domain.TicketStatusPaid || ticket.Type.IsRemote || !ticket.Type.IncludesHotel {
		return domain.ErrTicketIneligible
	}

	if _, err = s.hotelRepo.FindRoom(ctx, roomID); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("find room: %w", err)
	}

	return nil
}

// validateUpdate runs the update eligibility chain and returns the caller's
// current booking. The count here is advisory only; the authoritative
// capacity check runs again inside the reassign transaction.
func (s *BookingService) validateUpdate(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	current, err := s.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, domain.ErrNoExistingBooking
		}
		return nil, fmt.Errorf("find current booking: %w", err)
	}

	room, err := s.hotelRepo.FindRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	// проверка, что комната уже бронировалась
	if _, err = s.bookingRepo.FindByRoom(ctx, roomID); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, domain.ErrRoomNeverBooked
		}
		return nil, fmt.Errorf("find room booking: %w", err)
	}

	count, err := s.bookingRepo.CountForRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("count room bookings: %w", err)
	}
	if count >= room.Capacity {
		return nil, domain.ErrRoomFullOnChange
	}

	return current, nil
}
