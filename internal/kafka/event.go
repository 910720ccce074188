package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	EventUserRegistered = "user_registered"
	EventBookingCreated = "booking_created"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email,omitempty"`
	Name       string    `json:"name,omitempty"`
	BookingID  int64     `json:"booking_id,omitempty"`
	RoomID     int64     `json:"room_id,omitempty"`
	StartDate  string    `json:"start_date,omitempty"`
	EndDate    string    `json:"end_date,omitempty"`
}

func NewUserRegisteredEvent(u *domain.User) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       EventUserRegistered,
		OccurredAt: time.Now().UTC(),
		UserID:     u.ID,
		Email:      u.Email,
		Name:       u.Name,
	}
}

func NewBookingCreatedEvent(b *domain.Booking) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       EventBookingCreated,
		OccurredAt: time.Now().UTC(),
		UserID:     b.UserID,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	}
}

// Key groups a user's events on one partition.
func (e Event) Key() string {
	return fmt.Sprintf("user-%d", e.UserID)
}

func DecodeEvent(msg kafka.Message) (Event, error) {
	var event Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if event.Type == "" {
		return Event{}, fmt.Errorf("decode event: missing type")
	}
	return event, nil
}
