package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/bookingapi/config"
	"github.com/Domenick1991/bookingapi/internal/bootstrap"
	"github.com/Domenick1991/bookingapi/internal/cache"
	"github.com/Domenick1991/bookingapi/internal/kafka"
	"github.com/Domenick1991/bookingapi/internal/logger"
	"github.com/Domenick1991/bookingapi/internal/repository"
	"github.com/Domenick1991/bookingapi/internal/service/booking"
	"github.com/Domenick1991/bookingapi/internal/service/catalog"
	"github.com/Domenick1991/bookingapi/internal/service/flights"
	"github.com/Domenick1991/bookingapi/internal/service/users"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.New(logger.Config{}).Fatal("load config", "error", err)
	}

	log := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "booking-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := repository.NewStore()
	hotelRepo := repository.NewHotelRepository(store)
	roomRepo := repository.NewRoomRepository(store)
	userRepo := repository.NewUserRepository(store)
	bookingRepo := repository.NewBookingRepository(store)
	flightRepo := repository.NewFlightRepository(store)

	var catalogCache catalog.Cache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.CatalogTTLSeconds)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unreachable, catalog cache will fall back to the store", "addr", cfg.Redis.Addr, "error", err)
		}
		catalogCache = redisCache
	}

	var userOpts []users.UserServiceOption
	var bookingOpts []booking.BookingServiceOption
	userOpts = append(userOpts, users.WithLogger(log))
	bookingOpts = append(bookingOpts, booking.WithLogger(log))

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Warn("kafka unreachable, events may be lost", "error", err)
		}
		publisher := producer.WithRetry(cfg.Kafka.PublishRetry)
		userOpts = append(userOpts, users.WithEvents(publisher, cfg.Kafka.EventsTopic))
		bookingOpts = append(bookingOpts, booking.WithEvents(publisher, cfg.Kafka.EventsTopic))
	}

	services := bootstrap.Services{
		Catalog:  catalog.NewCatalogService(hotelRepo, roomRepo, catalogCache, log),
		Users:    users.NewUserService(userRepo, userOpts...),
		Bookings: booking.NewBookingService(bookingRepo, roomRepo, bookingOpts...),
		Flights:  flights.NewFlightService(flightRepo),
	}

	if err := bootstrap.Run(ctx, cfg, services, log); err != nil {
		log.Fatal("server error", "error", err)
	}
}
