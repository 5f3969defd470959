package service

import (
	"context"
	"fmt"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/Kuhaakuore/Driven.t-API/internal/service/ports"
)

type TicketService struct {
	repo ports.TicketRepo
}

func NewTicketService(repo ports.TicketRepo) *TicketService {
	return &TicketService{repo: repo}
}

func (s *TicketService) ListTypes(ctx context.Context) ([]domain.TicketType, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}

	return types, nil
}
