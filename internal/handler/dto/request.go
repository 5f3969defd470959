package dto

type BookingRequest struct {
	RoomID int64 `json:"roomId" binding:"required,gt=0"`
}
