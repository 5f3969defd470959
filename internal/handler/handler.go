package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/Kuhaakuore/Driven.t-API/internal/handler/dto"
	"github.com/Kuhaakuore/Driven.t-API/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Get(ctx context.Context, userID int64) (*domain.BookingDetails, error)
	Create(ctx context.Context, userID, roomID int64) (int64, error)
	Update(ctx context.Context, userID, roomID int64) (int64, error)
}

type HotelSvc interface {
	GetHotels(ctx context.Context, userID int64) ([]domain.Hotel, error)
	GetHotelRooms(ctx context.Context, userID, hotelID int64) (*domain.HotelRooms, error)
}

type TicketSvc interface {
	ListTypes(ctx context.Context) ([]domain.TicketType, error)
}

type PaymentSvc interface {
	GetTicketPayment(ctx context.Context, userID, ticketID int64) (*domain.Payment, error)
}

type Handler struct {
	bookingService BookingSvc
	hotelService   HotelSvc
	ticketService  TicketSvc
	paymentService PaymentSvc
}

func NewHandler(bookingService BookingSvc, hotelService HotelSvc, ticketService TicketSvc, paymentService PaymentSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		hotelService:   hotelService,
		ticketService:  ticketService,
		paymentService: paymentService,
	}
}

// Bookings

func (h *Handler) GetBooking(c *ginext.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	booking, err := h.bookingService.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookingID, err := h.bookingService.Create(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: bookingID})
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	if _, err := strconv.ParseInt(c.Param("bookingId"), 10, 64); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookingID, err := h.bookingService.Update(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: bookingID})
}

// Hotels

func (h *Handler) GetHotels(c *ginext.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	hotels, err := h.hotelService.GetHotels(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HotelResponse, 0, len(hotels))
	for i := range hotels {
		resp = append(resp, dto.ToHotelResponse(&hotels[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetHotelRooms(c *ginext.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hotel id"})
		return
	}

	rooms, err := h.hotelService.GetHotelRooms(c.Request.Context(), userID, hotelID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelRoomsResponse(rooms))
}

// Tickets

func (h *Handler) ListTicketTypes(c *ginext.Context) {
	types, err := h.ticketService.ListTypes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketTypeResponse, 0, len(types))
	for i := range types {
		resp = append(resp, dto.ToTicketTypeResponse(&types[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Payments

func (h *Handler) GetTicketPayment(c *ginext.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	raw := c.Query("ticketId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrMissingTicketID.Error()})
		return
	}

	ticketID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	payment, err := h.paymentService.GetTicketPayment(c.Request.Context(), userID, ticketID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var denied *domain.BookingDenied

	switch {
	case errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrHotelNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &denied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: denied.Message})

	case errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorizedTicket):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMissingTicketID):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
