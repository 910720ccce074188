package repository

import (
	"sync"

	"github.com/Domenick1991/bookingapi/internal/domain"
)

// Store is the process-wide in-memory data set. It is created once at
// startup and shared by every repository. All access goes through mu;
// user and booking IDs come from counters that only grow.
type Store struct {
	mu sync.RWMutex

	users    []domain.User
	hotels   []domain.Hotel
	rooms    []domain.Room
	bookings []domain.Booking
	flights  []domain.Flight

	lastUserID    int64
	lastBookingID int64
}

// NewStore returns a store holding the fixed seed records.
func NewStore() *Store {
	return &Store{
		hotels: []domain.Hotel{
			{ID: 1, Name: "Гранд Отель", City: "Москва", Stars: 5},
			{ID: 2, Name: "Спорт Отель", City: "Екатеринбург", Stars: 4},
		},
		rooms: []domain.Room{
			{ID: 1, HotelID: 1, RoomType: "standard", Price: 5000, Capacity: 2},
			{ID: 2, HotelID: 1, RoomType: "premium", Price: 10000, Capacity: 4},
		},
		flights: []domain.Flight{
			{ID: 1, FromCity: "Москва", ToCity: "Екатеринбург", Price: 8000, AvailableSeats: 50},
			{ID: 2, FromCity: "Москва", ToCity: "Екатеринбург", Price: 12000, AvailableSeats: 30},
		},
		users:    make([]domain.User, 0),
		bookings: make([]domain.Booking, 0),
	}
}

// NewEmptyStore returns a store without seed records.
func NewEmptyStore() *Store {
	return &Store{
		users:    make([]domain.User, 0),
		hotels:   make([]domain.Hotel, 0),
		rooms:    make([]domain.Room, 0),
		bookings: make([]domain.Booking, 0),
		flights:  make([]domain.Flight, 0),
	}
}

func (s *Store) AddHotel(h domain.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels = append(s.hotels, h)
}

func (s *Store) AddRoom(r domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, r)
}

func (s *Store) AddFlight(f domain.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = append(s.flights, f)
}
