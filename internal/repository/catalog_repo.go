package repository

import (
	"context"
	"strings"

	"github.com/Domenick1991/bookingapi/internal/domain"
)

type HotelRepository interface {
	List(ctx context.Context, city string) ([]domain.Hotel, error)
}

type RoomRepository interface {
	List(ctx context.Context, hotelID int64) ([]domain.Room, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type MemHotelRepository struct {
	store *Store
}

func NewHotelRepository(store *Store) HotelRepository {
	return &MemHotelRepository{store: store}
}

// List returns hotels whose city equals city ignoring case, or all hotels
// when city is empty.
func (r *MemHotelRepository) List(_ context.Context, city string) ([]domain.Hotel, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	hotels := make([]domain.Hotel, 0, len(r.store.hotels))
	if city == "" {
		return append(hotels, r.store.hotels...), nil
	}

	want := strings.ToLower(city)
	for _, h := range r.store.hotels {
		if strings.ToLower(h.City) == want {
			hotels = append(hotels, h)
		}
	}
	return hotels, nil
}

type MemRoomRepository struct {
	store *Store
}

func NewRoomRepository(store *Store) RoomRepository {
	return &MemRoomRepository{store: store}
}

// List returns rooms of the given hotel, or all rooms when hotelID is 0.
func (r *MemRoomRepository) List(_ context.Context, hotelID int64) ([]domain.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rooms := make([]domain.Room, 0, len(r.store.rooms))
	if hotelID == 0 {
		return append(rooms, r.store.rooms...), nil
	}

	for _, room := range r.store.rooms {
		if room.HotelID == hotelID {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

func (r *MemRoomRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, room := range r.store.rooms {
		if room.ID == id {
			return true, nil
		}
	}
	return false, nil
}

var (
	_ HotelRepository = (*MemHotelRepository)(nil)
	_ RoomRepository  = (*MemRoomRepository)(nil)
)
