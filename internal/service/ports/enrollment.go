package ports

import (
	"context"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
)

type EnrollmentRepo interface {
	FindByUser(ctx context.Context, userID int64) (*domain.Enrollment, error)
}
