package repository

import (
	"context"

	"github.com/Domenick1991/bookingapi/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
}

type MemBookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) BookingRepository {
	return &MemBookingRepository{store: store}
}

// Create assigns the next booking ID and appends the booking. The room and
// user references are not checked here.
func (r *MemBookingRepository) Create(_ context.Context, booking *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.lastBookingID++
	booking.ID = r.store.lastBookingID
	r.store.bookings = append(r.store.bookings, *booking)
	return nil
}

func (r *MemBookingRepository) List(_ context.Context) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookings := make([]domain.Booking, len(r.store.bookings))
	copy(bookings, r.store.bookings)
	return bookings, nil
}

var _ BookingRepository = (*MemBookingRepository)(nil)
