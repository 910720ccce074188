package booking

import (
	"context"
	"fmt"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/Domenick1991/bookingapi/internal/kafka"
	"github.com/Domenick1991/bookingapi/internal/logger"
	"github.com/Domenick1991/bookingapi/internal/metrics"
	"github.com/Domenick1991/bookingapi/internal/repository"
	"github.com/Domenick1991/bookingapi/internal/service"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
}

type CreateBookingInput struct {
	UserID    int64
	RoomID    int64
	StartDate string
	EndDate   string
}

type BookingService struct {
	bookings    repository.BookingRepository
	rooms       repository.RoomRepository
	producer    service.Producer
	eventsTopic string
	log         *logger.Logger
}

type BookingServiceOption func(*BookingService)

func WithEvents(producer service.Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func WithLogger(log *logger.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.log = log
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	rooms repository.RoomRepository,
	opts ...BookingServiceOption,
) *BookingService {
	s := &BookingService{
		bookings: bookings,
		rooms:    rooms,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBooking fails with domain.ErrRoomNotFound when the room does not
// exist. The user reference and the dates are stored unchecked.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	exists, err := s.rooms.Exists(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check room %d: %w", input.RoomID, err)
	}
	if !exists {
		metrics.IncBookingCreated("room_not_found")
		return nil, domain.ErrRoomNotFound
	}

	booking := &domain.Booking{
		UserID:    input.UserID,
		RoomID:    input.RoomID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated("created")
	s.log.InfoContext(ctx, "booking created", "booking_id", booking.ID, "room_id", booking.RoomID, "user_id", booking.UserID)

	if err := s.publish(ctx, booking); err != nil {
		s.log.WarnContext(ctx, "failed to publish booking_created", "booking_id", booking.ID, "error", err)
	}
	return booking, nil
}

func (s *BookingService) publish(ctx context.Context, booking *domain.Booking) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.NewBookingCreatedEvent(booking)
	return s.producer.Publish(ctx, s.eventsTopic, event.Key(), event)
}

var _ BookingUseCase = (*BookingService)(nil)
