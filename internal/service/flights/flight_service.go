package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/Domenick1991/bookingapi/internal/metrics"
	"github.com/Domenick1991/bookingapi/internal/repository"
)

const DefaultPassengers = 1

type FlightUseCase interface {
	Search(ctx context.Context, q domain.FlightSearch) ([]domain.Flight, error)
}

type FlightService struct {
	repo repository.FlightRepository
}

func NewFlightService(repo repository.FlightRepository) *FlightService {
	return &FlightService{repo: repo}
}

// Search returns the flights matching q with IsCheapest set on the lowest
// priced one (the earliest wins a tie). The flags are also written back to
// the stored flights of this result set, so a flag seen later reflects the
// last search that matched that flight.
func (s *FlightService) Search(ctx context.Context, q domain.FlightSearch) ([]domain.Flight, error) {
	matched, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	metrics.IncFlightSearch(len(matched) > 0)
	if len(matched) == 0 {
		return []domain.Flight{}, nil
	}

	cheapest := Cheapest(matched)
	ids := make([]int64, len(matched))
	for i := range matched {
		matched[i].IsCheapest = matched[i].ID == cheapest.ID
		ids[i] = matched[i].ID
	}

	if err := s.repo.MarkCheapest(ctx, ids, cheapest.ID); err != nil {
		return nil, fmt.Errorf("mark cheapest flight: %w", err)
	}
	return matched, nil
}

// Cheapest returns the first flight with the minimum price. flights must not
// be empty.
func Cheapest(flights []domain.Flight) domain.Flight {
	cheapest := flights[0]
	for _, f := range flights[1:] {
		if f.Price < cheapest.Price {
			cheapest = f
		}
	}
	return cheapest
}

var _ FlightUseCase = (*FlightService)(nil)
