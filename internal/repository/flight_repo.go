package repository

import (
	"context"
	"strings"

	"github.com/Domenick1991/bookingapi/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, q domain.FlightSearch) ([]domain.Flight, error)
	MarkCheapest(ctx context.Context, ids []int64, cheapestID int64) error
}

type MemFlightRepository struct {
	store *Store
}

func NewFlightRepository(store *Store) FlightRepository {
	return &MemFlightRepository{store: store}
}

func (r *MemFlightRepository) List(_ context.Context) ([]domain.Flight, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	flights := make([]domain.Flight, len(r.store.flights))
	copy(flights, r.store.flights)
	return flights, nil
}

// Search returns copies of the flights on the route (cities compared
// ignoring case) with at least q.Passengers free seats, in store order.
func (r *MemFlightRepository) Search(_ context.Context, q domain.FlightSearch) ([]domain.Flight, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	from := strings.ToLower(q.FromCity)
	to := strings.ToLower(q.ToCity)

	flights := make([]domain.Flight, 0)
	for _, f := range r.store.flights {
		if strings.ToLower(f.FromCity) == from &&
			strings.ToLower(f.ToCity) == to &&
			f.AvailableSeats >= q.Passengers {
			flights = append(flights, f)
		}
	}
	return flights, nil
}

// MarkCheapest writes IsCheapest on the stored flights listed in ids.
// Flights outside ids keep their current flag.
func (r *MemFlightRepository) MarkCheapest(_ context.Context, ids []int64, cheapestID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	marked := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		marked[id] = struct{}{}
	}
	for i := range r.store.flights {
		if _, ok := marked[r.store.flights[i].ID]; ok {
			r.store.flights[i].IsCheapest = r.store.flights[i].ID == cheapestID
		}
	}
	return nil
}

var _ FlightRepository = (*MemFlightRepository)(nil)
