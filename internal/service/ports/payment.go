package ports

import (
	"context"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
)

type PaymentRepo interface {
	FindByTicket(ctx context.Context, ticketID int64) (*domain.Payment, error)
}
