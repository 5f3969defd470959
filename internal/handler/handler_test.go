package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/Kuhaakuore/Driven.t-API/internal/handler/dto"
	hmocks "github.com/Kuhaakuore/Driven.t-API/internal/handler/mocks"
	"github.com/Kuhaakuore/Driven.t-API/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testUserID int64 = 1

type handlerMocks struct {
	bookingSvc *hmocks.MockBookingSvc
	hotelSvc   *hmocks.MockHotelSvc
	ticketSvc  *hmocks.MockTicketSvc
	paymentSvc *hmocks.MockPaymentSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		bookingSvc: hmocks.NewMockBookingSvc(t),
		hotelSvc:   hmocks.NewMockHotelSvc(t),
		ticketSvc:  hmocks.NewMockTicketSvc(t),
		paymentSvc: hmocks.NewMockPaymentSvc(t),
	}

	h := NewHandler(m.bookingSvc, m.hotelSvc, m.ticketSvc, m.paymentSvc)

	r := ginext.New("test")
	api := r.Group("/", func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, testUserID)
		c.Next()
	})
	{
		api.GET("/booking", h.GetBooking)
		api.POST("/booking", h.CreateBooking)
		api.PUT("/booking/:bookingId", h.UpdateBooking)
		api.GET("/hotels", h.GetHotels)
		api.GET("/hotels/:hotelId", h.GetHotelRooms)
		api.GET("/tickets/types", h.ListTicketTypes)
		api.GET("/payments", h.GetTicketPayment)
	}

	return m, r
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// --- Bookings ---

func TestHandler_GetBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Get(mock.Anything, testUserID).Return(&domain.BookingDetails{
		ID:   3,
		Room: domain.Room{ID: 5, Name: "101", Capacity: 3, HotelID: 1},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, int64(5), resp.Room.ID)
	assert.Contains(t, w.Body.String(), `"Room"`)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Get(mock.Anything, testUserID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Create(mock.Anything, testUserID, int64(10)).Return(int64(7), nil)

	body, _ := json.Marshal(dto.BookingRequest{RoomID: 10})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.BookingID)
}

func TestHandler_CreateBooking_InvalidBody(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader([]byte(`{"roomId":0}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Denied(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Create(mock.Anything, testUserID, int64(10)).Return(int64(0), domain.ErrTicketIneligible)

	body, _ := json.Marshal(dto.BookingRequest{RoomID: 10})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t,
		"Users with tickets that have not being paid, are remote or do not include accommodations cannot book rooms",
		errorBody(t, w))
}

func TestHandler_CreateBooking_RoomFull(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Create(mock.Anything, testUserID, int64(10)).Return(int64(0), domain.ErrRoomFull)

	body, _ := json.Marshal(dto.BookingRequest{RoomID: 10})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t,
		"Room's maximum capacity reached cannot create new bookings for this room",
		errorBody(t, w))
}

func TestHandler_CreateBooking_RoomNotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Create(mock.Anything, testUserID, int64(99)).Return(int64(0), domain.ErrRoomNotFound)

	body, _ := json.Marshal(dto.BookingRequest{RoomID: 99})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_AlreadyBooked(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Create(mock.Anything, testUserID, int64(10)).Return(int64(0), domain.ErrAlreadyBooked)

	body, _ := json.Marshal(dto.BookingRequest{RoomID: 10})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Update(mock.Anything, testUserID, int64(11)).Return(int64(3), nil)

	body, _ := json.Marshal(dto.BookingRequest{RoomID: 11})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/3", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.BookingID)
}

func TestHandler_UpdateBooking_BadBookingID(t *testing.T) {
	_, r := setupRouter(t)

	body, _ := json.Marshal(dto.BookingRequest{RoomID: 11})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/abc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBooking_NoExistingBooking(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Update(mock.Anything, testUserID, int64(11)).Return(int64(0), domain.ErrNoExistingBooking)

	body, _ := json.Marshal(dto.BookingRequest{RoomID: 11})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/3", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Users that haven't booked a room cannot change their booking", errorBody(t, w))
}

// --- Hotels ---

func TestHandler_GetHotels_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.hotelSvc.EXPECT().GetHotels(mock.Anything, testUserID).Return([]domain.Hotel{{ID: 1, Name: "Palace"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotels", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.HotelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Palace", resp[0].Name)
}

func TestHandler_GetHotels_PaymentRequired(t *testing.T) {
	m, r := setupRouter(t)

	m.hotelSvc.EXPECT().GetHotels(mock.Anything, testUserID).Return(nil, domain.ErrPaymentRequired)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotels", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestHandler_GetHotelRooms_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.hotelSvc.EXPECT().GetHotelRooms(mock.Anything, testUserID, int64(2)).Return(&domain.HotelRooms{
		Hotel: domain.Hotel{ID: 2, Name: "Resort"},
		Rooms: []domain.Room{{ID: 10, Name: "101", Capacity: 3, HotelID: 2}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotels/2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.HotelRoomsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Hotel.ID)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, 3, resp.Rooms[0].Capacity)
}

func TestHandler_GetHotelRooms_BadHotelID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotels/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Tickets ---

func TestHandler_ListTicketTypes_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.ticketSvc.EXPECT().ListTypes(mock.Anything).Return([]domain.TicketType{
		{ID: 1, Name: "In-person + hotel", Price: 60000, IncludesHotel: true},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets/types", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TicketTypeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.True(t, resp[0].IncludesHotel)
}

// --- Payments ---

func TestHandler_GetTicketPayment_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.paymentSvc.EXPECT().GetTicketPayment(mock.Anything, testUserID, int64(5)).
		Return(&domain.Payment{ID: 9, TicketID: 5, Value: 25000, CardIssuer: "VISA", CardLastDigits: "1234"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments?ticketId=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.TicketID)
	assert.Equal(t, "1234", resp.CardLastDigits)
}

func TestHandler_GetTicketPayment_MissingTicketID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTicketPayment_ForeignTicket(t *testing.T) {
	m, r := setupRouter(t)

	m.paymentSvc.EXPECT().GetTicketPayment(mock.Anything, testUserID, int64(5)).
		Return(nil, domain.ErrUnauthorizedTicket)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments?ticketId=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetTicketPayment_TicketNotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.paymentSvc.EXPECT().GetTicketPayment(mock.Anything, testUserID, int64(99)).
		Return(nil, domain.ErrTicketNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments?ticketId=99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.bookingSvc.EXPECT().Get(mock.Anything, testUserID).Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", errorBody(t, w))
}
