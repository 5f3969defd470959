package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/Kuhaakuore/Driven.t-API/internal/service/ports"
)

type HotelService struct {
	hotelRepo      ports.HotelRepo
	enrollmentRepo ports.EnrollmentRepo
	ticketRepo     ports.TicketRepo
}

func NewHotelService(
	hotelRepo ports.HotelRepo,
	enrollmentRepo ports.EnrollmentRepo,
	ticketRepo ports.TicketRepo,
) *HotelService {
	return &HotelService{
		hotelRepo:      hotelRepo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
	}
}

func (s *HotelService) GetHotels(ctx context.Context, userID int64) ([]domain.Hotel, error) {
	if err := s.validateEnrollment(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	if len(hotels) == 0 {
		return nil, domain.ErrHotelNotFound
	}

	return hotels, nil
}

func (s *HotelService) GetHotelRooms(ctx context.Context, userID, hotelID int64) (*domain.HotelRooms, error) {
	if err := s.validateEnrollment(ctx, userID); err != nil {
		return nil, err
	}

	rooms, err := s.hotelRepo.GetRooms(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel rooms: %w", err)
	}

	return rooms, nil
}

// validateEnrollment gates the hotel catalog behind the same paid, in-person,
// hotel-inclusive ticket that booking requires.
func (s *HotelService) validateEnrollment(ctx context.Context, userID int64) error {
	enrollment, err := s.enrollmentRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return domain.ErrEnrollmentNotFound
		}
		return fmt.Errorf("find enrollment: %w", err)
	}

	ticket, err := s.ticketRepo.FindByEnrollment(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return domain.ErrTicketNotFound
		}
		return fmt.Errorf("find ticket: %w", err)
	}

	if !ticket.Type.IncludesHotel || ticket.Type.IsRemote || ticket.Status != domain.TicketStatusPaid {
		return domain.ErrPaymentRequired
	}

	return nil
}
