package domain

import "errors"

// DenialReason is the stable code attached to a business refusal. The codes
// and message texts are part of the external contract.
type DenialReason string

const (
	DenialNotEnrolled       DenialReason = "NOT_ENROLLED"
	DenialNoTicket          DenialReason = "NO_TICKET"
	DenialTicketIneligible  DenialReason = "TICKET_INELIGIBLE"
	DenialNoExistingBooking DenialReason = "NO_EXISTING_BOOKING"
	DenialRoomNeverBooked   DenialReason = "ROOM_NEVER_BOOKED"
	DenialRoomFull          DenialReason = "ROOM_FULL"
)

// BookingDenied is a terminal refusal of a create/update booking request.
// It is never retried and never converted to success.
type BookingDenied struct {
	Reason  DenialReason
	Message string
}

func (e *BookingDenied) Error() string { return e.Message }

// Is matches denials by reason, so errors.Is works against the exported
// denial values regardless of message variant.
func (e *BookingDenied) Is(target error) bool {
	var t *BookingDenied
	return errors.As(target, &t) && t.Reason == e.Reason
}

var (
	ErrNotEnrolled = &BookingDenied{
		Reason:  DenialNotEnrolled,
		Message: "Users that are not enrolled cannot book rooms",
	}
	ErrNoTicket = &BookingDenied{
		Reason:  DenialNoTicket,
		Message: "Users that do not have a ticket cannot book rooms",
	}
	ErrTicketIneligible = &BookingDenied{
		Reason:  DenialTicketIneligible,
		Message: "Users with tickets that have not being paid, are remote or do not include accommodations cannot book rooms",
	}
	ErrNoExistingBooking = &BookingDenied{
		Reason:  DenialNoExistingBooking,
		Message: "Users that haven't booked a room cannot change their booking",
	}
	ErrRoomNeverBooked = &BookingDenied{
		Reason:  DenialRoomNeverBooked,
		Message: "Room has not being booked yet",
	}
	ErrRoomFull = &BookingDenied{
		Reason:  DenialRoomFull,
		Message: "Room's maximum capacity reached cannot create new bookings for this room",
	}
	// ErrRoomFullOnChange shares the ROOM_FULL reason; only the message
	// differs between the create and update flows.
	ErrRoomFullOnChange = &BookingDenied{
		Reason:  DenialRoomFull,
		Message: "Room's maximum capacity reached cannot change your booking for this room",
	}
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPaymentNotFound    = errors.New("payment not found")
)

var (
	ErrAlreadyBooked      = errors.New("user already has a booking")
	ErrPaymentRequired    = errors.New("ticket was not paid, is remote or includes no hotel")
	ErrUnauthorizedTicket = errors.New("ticket does not belong to this user")
	ErrMissingTicketID    = errors.New("ticket id is required")
)

var (
	ErrValidation = errors.New("validation error")
)
