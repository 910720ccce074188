package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/bookingapi/internal/kafka"
	"github.com/Domenick1991/bookingapi/internal/logger"
)

// Sender renders notification emails. Delivery is a log line; there is no
// mail transport.
type Sender struct {
	log *logger.Logger
}

func NewSender(log *logger.Logger) *Sender {
	if log == nil {
		log = logger.Nop()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.Event) error {
	subject, body := Render(event)
	if subject == "" {
		s.log.Debug("no email for event", "type", event.Type, "event_id", event.ID)
		return nil
	}
	s.log.InfoContext(ctx, "send email",
		"event_id", event.ID,
		"user_id", event.UserID,
		"to", event.Email,
		"subject", subject,
		"body", body,
	)
	return nil
}

// Render returns an empty subject for event types that need no email.
func Render(event kafka.Event) (subject, body string) {
	switch event.Type {
	case kafka.EventUserRegistered:
		return "Welcome", fmt.Sprintf("Hello %s, your account #%d is ready.", event.Name, event.UserID)
	case kafka.EventBookingCreated:
		return fmt.Sprintf("Booking #%d created", event.BookingID),
			fmt.Sprintf("Room %d is booked from %s to %s.", event.RoomID, event.StartDate, event.EndDate)
	default:
		return "", ""
	}
}
