package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/Domenick1991/bookingapi/config"
	"github.com/Domenick1991/bookingapi/internal/logger"
	"github.com/Domenick1991/bookingapi/internal/repository"
	"github.com/Domenick1991/bookingapi/internal/service/booking"
	"github.com/Domenick1991/bookingapi/internal/service/catalog"
	"github.com/Domenick1991/bookingapi/internal/service/flights"
	"github.com/Domenick1991/bookingapi/internal/service/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func testServices() Services {
	store := repository.NewStore()
	rooms := repository.NewRoomRepository(store)
	return Services{
		Catalog:  catalog.NewCatalogService(repository.NewHotelRepository(store), rooms, nil, nil),
		Users:    users.NewUserService(repository.NewUserRepository(store)),
		Bookings: booking.NewBookingService(repository.NewBookingRepository(store), rooms),
		Flights:  flights.NewFlightService(repository.NewFlightRepository(store)),
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := config.Default()
	cfg.HTTP.Address = "127.0.0.1:0"
	cfg.GRPC.Address = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, testServices(), nil) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Default()
	cfg.HTTP.Address = busy.Addr().String()

	err = Run(context.Background(), cfg, testServices(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen HTTP")
}

func TestNewServers_GRPCOptional(t *testing.T) {
	cfg := config.Default()

	s := newServers(cfg, testServices(), logger.Nop())
	assert.Nil(t, s.grpcServer)
	assert.NotNil(t, s.httpServer)

	cfg.GRPC.Address = ":9001"
	s = newServers(cfg, testServices(), logger.Nop())
	assert.NotNil(t, s.grpcServer)
}

func TestUnaryLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: logger.INFO, Format: logger.TEXT, Output: &buf})
	interceptor := UnaryLogger(log)
	info := &grpc.UnaryServerInfo{FullMethod: "/booking.v1.BookingService/CreateBooking"}

	resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Contains(t, buf.String(), "CreateBooking")
	assert.Contains(t, buf.String(), "code=OK")

	buf.Reset()
	_, err = interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "Room not found")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "code=NotFound")

	buf.Reset()
	_, err = interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, errors.New("boom")
	})
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "code=Unknown")
}
