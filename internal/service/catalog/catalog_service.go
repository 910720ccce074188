package catalog

import (
	"context"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/Domenick1991/bookingapi/internal/logger"
	"github.com/Domenick1991/bookingapi/internal/repository"
)

type CatalogUseCase interface {
	ListHotels(ctx context.Context, city string) ([]domain.Hotel, error)
	ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error)
}

type Cache interface {
	GetHotels(ctx context.Context, city string) ([]domain.Hotel, error)
	SetHotels(ctx context.Context, city string, hotels []domain.Hotel) error
	GetRooms(ctx context.Context, hotelID int64) ([]domain.Room, error)
	SetRooms(ctx context.Context, hotelID int64, rooms []domain.Room) error
}

type CatalogService struct {
	hotels repository.HotelRepository
	rooms  repository.RoomRepository
	cache  Cache
	log    *logger.Logger
}

// NewCatalogService accepts a nil cache.
func NewCatalogService(hotels repository.HotelRepository, rooms repository.RoomRepository, cache Cache, log *logger.Logger) *CatalogService {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogService{hotels: hotels, rooms: rooms, cache: cache, log: log}
}

func (s *CatalogService) ListHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	if s.cache != nil {
		cached, err := s.cache.GetHotels(ctx, city)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			s.log.Warn("hotels cache read failed", "city", city, "error", err)
		}
	}

	hotels, err := s.hotels.List(ctx, city)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetHotels(ctx, city, hotels); err != nil {
			s.log.Warn("hotels cache write failed", "city", city, "error", err)
		}
	}
	return hotels, nil
}

func (s *CatalogService) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRooms(ctx, hotelID)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			s.log.Warn("rooms cache read failed", "hotel_id", hotelID, "error", err)
		}
	}

	rooms, err := s.rooms.List(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetRooms(ctx, hotelID, rooms); err != nil {
			s.log.Warn("rooms cache write failed", "hotel_id", hotelID, "error", err)
		}
	}
	return rooms, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
