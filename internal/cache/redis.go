package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/bookingapi/config"
	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps catalog listings. Hotels and rooms never change at runtime,
// so entries only expire by TTL.
type RedisCache struct {
	client     redis.Cmdable
	catalogTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, catalogTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogTTL: catalogTTL,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	if closer, ok := c.client.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// GetHotels returns nil, nil on a cache miss.
func (c *RedisCache) GetHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	ok, err := c.get(ctx, hotelsKey(city), &hotels)
	if err != nil || !ok {
		return nil, err
	}
	return hotels, nil
}

func (c *RedisCache) SetHotels(ctx context.Context, city string, hotels []domain.Hotel) error {
	return c.set(ctx, hotelsKey(city), hotels)
}

// GetRooms returns nil, nil on a cache miss.
func (c *RedisCache) GetRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rooms []domain.Room
	ok, err := c.get(ctx, roomsKey(hotelID), &rooms)
	if err != nil || !ok {
		return nil, err
	}
	return rooms, nil
}

func (c *RedisCache) SetRooms(ctx context.Context, hotelID int64, rooms []domain.Room) error {
	return c.set(ctx, roomsKey(hotelID), rooms)
}

func (c *RedisCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.catalogTTL).Err()
}

// City matching ignores case, so the key does too.
func hotelsKey(city string) string {
	if city == "" {
		return "cache:hotels:all"
	}
	return "cache:hotels:city:" + strings.ToLower(city)
}

func roomsKey(hotelID int64) string {
	if hotelID == 0 {
		return "cache:rooms:all"
	}
	return fmt.Sprintf("cache:rooms:hotel:%d", hotelID)
}
