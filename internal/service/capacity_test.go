package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/Kuhaakuore/Driven.t-API/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// capacityStore is an in-memory ports.BookingRepo that enforces room
// capacity under a mutex, standing in for the row-locked transaction.
type capacityStore struct {
	mu       sync.Mutex
	capacity int
	nextID   int64
	byUser   map[int64]*domain.Booking
}

func newCapacityStore(capacity int) *capacityStore {
	return &capacityStore{capacity: capacity, byUser: make(map[int64]*domain.Booking)}
}

func (s *capacityStore) FindByUser(_ context.Context, userID int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.byUser[userID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (s *capacityStore) FindByRoom(_ context.Context, roomID int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, booking := range s.byUser {
		if booking.RoomID == roomID {
			return booking, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (s *capacityStore) CountForRoom(_ context.Context, roomID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(roomID), nil
}

func (s *capacityStore) CreateWithinCapacity(_ context.Context, userID, roomID int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[userID]; ok {
		return nil, domain.ErrAlreadyBooked
	}
	if s.countLocked(roomID) >= s.capacity {
		return nil, domain.ErrRoomFull
	}
	s.nextID++
	booking := &domain.Booking{ID: s.nextID, UserID: userID, RoomID: roomID}
	s.byUser[userID] = booking
	return booking, nil
}

func (s *capacityStore) ReassignWithinCapacity(_ context.Context, bookingID, roomID int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, booking := range s.byUser {
		if booking.ID != bookingID {
			continue
		}
		occupied := 0
		for _, other := range s.byUser {
			if other.RoomID == roomID && other.ID != bookingID {
				occupied++
			}
		}
		if occupied >= s.capacity {
			return nil, domain.ErrRoomFullOnChange
		}
		booking.RoomID = roomID
		return booking, nil
	}
	return nil, domain.ErrBookingNotFound
}

func (s *capacityStore) countLocked(roomID int64) int {
	n := 0
	for _, booking := range s.byUser {
		if booking.RoomID == roomID {
			n++
		}
	}
	return n
}

type nopNotifier struct{}

func (nopNotifier) NotifyBookingCreated(context.Context, *domain.Booking, *domain.Room) {}
func (nopNotifier) NotifyBookingMoved(context.Context, *domain.Booking, *domain.Room)   {}

func TestBookingService_Create_FillsLastSpot(t *testing.T) {
	const capacity = 2

	store := newCapacityStore(capacity)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	ticketRepo := mocks.NewMockTicketRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)

	room := &domain.Room{ID: 10, Name: "101", Capacity: capacity, HotelID: 1}

	enrollmentRepo.EXPECT().FindByUser(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, userID int64) (*domain.Enrollment, error) {
			return &domain.Enrollment{ID: userID, UserID: userID}, nil
		})
	ticketRepo.EXPECT().FindByEnrollment(mock.Anything, mock.Anything).Return(paidTicket(), nil)
	hotelRepo.EXPECT().FindRoom(mock.Anything, int64(10)).Return(room, nil)

	svc := NewBookingService(store, enrollmentRepo, ticketRepo, hotelRepo, nopNotifier{}, newTestLogger(t))

	// room 10 already at capacity-1
	_, err := store.CreateWithinCapacity(context.Background(), 100, 10)
	require.NoError(t, err)

	bookingID, err := svc.Create(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.NotZero(t, bookingID)

	count, err := store.CountForRoom(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, capacity, count)

	// another eligible user is turned away and the count holds
	_, err = svc.Create(context.Background(), 2, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomFull)

	count, err = store.CountForRoom(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, capacity, count)
}

func TestBookingService_Create_ConcurrentCapacity(t *testing.T) {
	const (
		capacity = 5
		users    = 20
	)

	store := newCapacityStore(capacity)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	ticketRepo := mocks.NewMockTicketRepo(t)
	hotelRepo := mocks.NewMockHotelRepo(t)

	room := &domain.Room{ID: 10, Name: "101", Capacity: capacity, HotelID: 1}

	enrollmentRepo.EXPECT().FindByUser(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, userID int64) (*domain.Enrollment, error) {
			return &domain.Enrollment{ID: userID, UserID: userID}, nil
		})
	ticketRepo.EXPECT().FindByEnrollment(mock.Anything, mock.Anything).Return(paidTicket(), nil)
	hotelRepo.EXPECT().FindRoom(mock.Anything, int64(10)).Return(room, nil)

	svc := NewBookingService(store, enrollmentRepo, ticketRepo, hotelRepo, nopNotifier{}, newTestLogger(t))

	errs := make([]error, users)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), int64(i+1), 10)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.True(t, errors.Is(err, domain.ErrRoomFull), "unexpected error: %v", err)
	}
	assert.Equal(t, capacity, succeeded)

	count, err := store.CountForRoom(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, capacity, count)
}
