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

type EnrollmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEnrollmentRepo(db *dbpg.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func (r *EnrollmentRepository) FindByUser(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	query := `SELECT e.id, e.user_id, e.name, e.cpf,
			  		EXISTS (SELECT 1 FROM addresses a WHERE a.enrollment_id = e.id),
			  		e.created_at, e.updated_at
			  FROM enrollments e
			  WHERE e.user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	var e domain.Enrollment
	if err = row.Scan(&e.ID, &e.UserID, &e.Name, &e.CPF, &e.HasAddress, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}

	return &e, nil
}
