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

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

const ticketColumns = `t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
			tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at`

func (r *TicketRepository) FindByEnrollment(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets t
			  JOIN ticket_types tt ON tt.id = t.ticket_type_id
			  WHERE t.enrollment_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	return scanTicket(row)
}

func (r *TicketRepository) FindByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets t
			  JOIN ticket_types tt ON tt.id = t.ticket_type_id
			  WHERE t.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	return scanTicket(row)
}

func (r *TicketRepository) ListTypes(ctx context.Context) ([]domain.TicketType, error) {
	query := `SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
			  FROM ticket_types
			  ORDER BY price`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	defer rows.Close()

	var res []domain.TicketType
	for rows.Next() {
		var tt domain.TicketType
		if err = rows.Scan(&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket type: %w", err)
		}
		res = append(res, tt)
	}

	return res, rows.Err()
}

func scanTicket(row *sql.Row) (*domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(
		&t.ID, &t.EnrollmentID, &t.TicketTypeID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		&t.Type.ID, &t.Type.Name, &t.Type.Price, &t.Type.IsRemote, &t.Type.IncludesHotel,
		&t.Type.CreatedAt, &t.Type.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}
