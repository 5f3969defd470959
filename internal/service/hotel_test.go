package service

import (
	"context"
	"testing"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/Kuhaakuore/Driven.t-API/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type hotelMocks struct {
	hotelRepo      *mocks.MockHotelRepo
	enrollmentRepo *mocks.MockEnrollmentRepo
	ticketRepo     *mocks.MockTicketRepo
}

func newHotelService(t *testing.T) (*HotelService, hotelMocks) {
	t.Helper()
	m := hotelMocks{
		hotelRepo:      mocks.NewMockHotelRepo(t),
		enrollmentRepo: mocks.NewMockEnrollmentRepo(t),
		ticketRepo:     mocks.NewMockTicketRepo(t),
	}
	return NewHotelService(m.hotelRepo, m.enrollmentRepo, m.ticketRepo), m
}

func TestHotelService_GetHotels_Success(t *testing.T) {
	svc, m := newHotelService(t)

	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(&domain.Enrollment{ID: 1, UserID: 1}, nil)
	m.ticketRepo.EXPECT().FindByEnrollment(mock.Anything, int64(1)).Return(paidTicket(), nil)
	m.hotelRepo.EXPECT().List(mock.Anything).Return([]domain.Hotel{{ID: 1, Name: "Palace"}}, nil)

	hotels, err := svc.GetHotels(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Palace", hotels[0].Name)
}

func TestHotelService_GetHotels_NotEnrolled(t *testing.T) {
	svc, m := newHotelService(t)

	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(nil, domain.ErrEnrollmentNotFound)

	_, err := svc.GetHotels(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
}

func TestHotelService_GetHotels_TicketUnpaid(t *testing.T) {
	svc, m := newHotelService(t)

	ticket := paidTicket()
	ticket.Status = domain.TicketStatusReserved

	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(&domain.Enrollment{ID: 1, UserID: 1}, nil)
	m.ticketRepo.EXPECT().FindByEnrollment(mock.Anything, int64(1)).Return(ticket, nil)

	_, err := svc.GetHotels(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentRequired)
}

func TestHotelService_GetHotels_RemoteTicket(t *testing.T) {
	svc, m := newHotelService(t)

	ticket := paidTicket()
	ticket.Type.IsRemote = true

	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(&domain.Enrollment{ID: 1, UserID: 1}, nil)
	m.ticketRepo.EXPECT().FindByEnrollment(mock.Anything, int64(1)).Return(ticket, nil)

	_, err := svc.GetHotels(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentRequired)
}

func TestHotelService_GetHotels_NoneRegistered(t *testing.T) {
	svc, m := newHotelService(t)

	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(&domain.Enrollment{ID: 1, UserID: 1}, nil)
	m.ticketRepo.EXPECT().FindByEnrollment(mock.Anything, int64(1)).Return(paidTicket(), nil)
	m.hotelRepo.EXPECT().List(mock.Anything).Return(nil, nil)

	_, err := svc.GetHotels(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}

func TestHotelService_GetHotelRooms_Success(t *testing.T) {
	svc, m := newHotelService(t)

	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(&domain.Enrollment{ID: 1, UserID: 1}, nil)
	m.ticketRepo.EXPECT().FindByEnrollment(mock.Anything, int64(1)).Return(paidTicket(), nil)
	m.hotelRepo.EXPECT().GetRooms(mock.Anything, int64(2)).Return(&domain.HotelRooms{
		Hotel: domain.Hotel{ID: 2, Name: "Resort"},
		Rooms: []domain.Room{{ID: 10, Name: "101", Capacity: 3, HotelID: 2}},
	}, nil)

	rooms, err := svc.GetHotelRooms(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(2), rooms.Hotel.ID)
	require.Len(t, rooms.Rooms, 1)
}

func TestHotelService_GetHotelRooms_HotelNotFound(t *testing.T) {
	svc, m := newHotelService(t)

	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(&domain.Enrollment{ID: 1, UserID: 1}, nil)
	m.ticketRepo.EXPECT().FindByEnrollment(mock.Anything, int64(1)).Return(paidTicket(), nil)
	m.hotelRepo.EXPECT().GetRooms(mock.Anything, int64(99)).Return(nil, domain.ErrHotelNotFound)

	_, err := svc.GetHotelRooms(context.Background(), 1, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}
