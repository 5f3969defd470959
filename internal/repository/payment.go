package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func (r *PaymentRepository) FindByTicket(ctx context.Context, ticketID int64) (*domain.Payment, error) {
	query := `SELECT id, ticket_id, value, card_issuer, card_last_digits, created_at, updated_at
			  FROM payments
			  WHERE ticket_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.Payment
	if err = row.Scan(&p.ID, &p.TicketID, &p.Value, &p.CardIssuer, &p.CardLastDigits, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, nil
}
