package ports

import (
	"context"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
)

type TicketRepo interface {
	FindByEnrollment(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
	FindByID(ctx context.Context, id int64) (*domain.Ticket, error)
	ListTypes(ctx context.Context) ([]domain.TicketType, error)
}
