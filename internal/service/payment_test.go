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

type paymentMocks struct {
	paymentRepo    *mocks.MockPaymentRepo
	ticketRepo     *mocks.MockTicketRepo
	enrollmentRepo *mocks.MockEnrollmentRepo
}

func newPaymentService(t *testing.T) (*PaymentService, paymentMocks) {
	t.Helper()
	m := paymentMocks{
		paymentRepo:    mocks.NewMockPaymentRepo(t),
		ticketRepo:     mocks.NewMockTicketRepo(t),
		enrollmentRepo: mocks.NewMockEnrollmentRepo(t),
	}
	return NewPaymentService(m.paymentRepo, m.ticketRepo, m.enrollmentRepo), m
}

func TestPaymentService_GetTicketPayment_Success(t *testing.T) {
	svc, m := newPaymentService(t)

	m.ticketRepo.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(&domain.Ticket{ID: 5, EnrollmentID: 1, Status: domain.TicketStatusPaid}, nil)
	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(&domain.Enrollment{ID: 1, UserID: 1}, nil)
	m.paymentRepo.EXPECT().FindByTicket(mock.Anything, int64(5)).
		Return(&domain.Payment{ID: 9, TicketID: 5, Value: 25000}, nil)

	payment, err := svc.GetTicketPayment(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(9), payment.ID)
	assert.Equal(t, int64(5), payment.TicketID)
}

func TestPaymentService_GetTicketPayment_TicketNotFound(t *testing.T) {
	svc, m := newPaymentService(t)

	m.ticketRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, domain.ErrTicketNotFound)

	_, err := svc.GetTicketPayment(context.Background(), 1, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestPaymentService_GetTicketPayment_ForeignTicket(t *testing.T) {
	svc, m := newPaymentService(t)

	m.ticketRepo.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(&domain.Ticket{ID: 5, EnrollmentID: 2, Status: domain.TicketStatusPaid}, nil)
	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(&domain.Enrollment{ID: 1, UserID: 1}, nil)

	_, err := svc.GetTicketPayment(context.Background(), 1, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedTicket)
}

func TestPaymentService_GetTicketPayment_PaymentNotFound(t *testing.T) {
	svc, m := newPaymentService(t)

	m.ticketRepo.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(&domain.Ticket{ID: 5, EnrollmentID: 1, Status: domain.TicketStatusReserved}, nil)
	m.enrollmentRepo.EXPECT().FindByUser(mock.Anything, int64(1)).Return(&domain.Enrollment{ID: 1, UserID: 1}, nil)
	m.paymentRepo.EXPECT().FindByTicket(mock.Anything, int64(5)).Return(nil, domain.ErrPaymentNotFound)

	_, err := svc.GetTicketPayment(context.Background(), 1, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}
