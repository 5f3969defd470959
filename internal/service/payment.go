package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/Kuhaakuore/Driven.t-API/internal/service/ports"
)

type PaymentService struct {
	paymentRepo    ports.PaymentRepo
	ticketRepo     ports.TicketRepo
	enrollmentRepo ports.EnrollmentRepo
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	ticketRepo ports.TicketRepo,
	enrollmentRepo ports.EnrollmentRepo,
) *PaymentService {
	return &PaymentService{
		paymentRepo:    paymentRepo,
		ticketRepo:     ticketRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// GetTicketPayment returns the payment for a ticket, verifying the ticket
// belongs to the caller's enrollment.
func (s *PaymentService) GetTicketPayment(ctx context.Context, userID, ticketID int64) (*domain.Payment, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}

	enrollment, err := s.enrollmentRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}

	if ticket.EnrollmentID != enrollment.ID {
		return nil, domain.ErrUnauthorizedTicket
	}

	payment, err := s.paymentRepo.FindByTicket(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}

	return payment, nil
}
