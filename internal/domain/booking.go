package domain

import "errors"

var ErrRoomNotFound = errors.New("room not found")

// Booking dates are kept as the client sent them.
type Booking struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	RoomID    int64  `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
