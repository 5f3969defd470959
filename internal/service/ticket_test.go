package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/Kuhaakuore/Driven.t-API/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTicketService_ListTypes_Success(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	repo.EXPECT().ListTypes(mock.Anything).Return([]domain.TicketType{
		{ID: 1, Name: "In-person + hotel", Price: 60000, IncludesHotel: true},
		{ID: 2, Name: "Remote", Price: 10000, IsRemote: true},
	}, nil)

	types, err := NewTicketService(repo).ListTypes(context.Background())

	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.True(t, types[0].IncludesHotel)
}

func TestTicketService_ListTypes_RepoError(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	repo.EXPECT().ListTypes(mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := NewTicketService(repo).ListTypes(context.Background())

	require.Error(t, err)
}
