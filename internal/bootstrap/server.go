package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/bookingapi/api"
	"github.com/Domenick1991/bookingapi/config"
	bookingapi "github.com/Domenick1991/bookingapi/internal/api/booking_service_api"
	"github.com/Domenick1991/bookingapi/internal/logger"
	"github.com/Domenick1991/bookingapi/internal/service/booking"
	"github.com/Domenick1991/bookingapi/internal/service/catalog"
	"github.com/Domenick1991/bookingapi/internal/service/flights"
	"github.com/Domenick1991/bookingapi/internal/service/users"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const shutdownTimeout = 5 * time.Second

type Services struct {
	Catalog  catalog.CatalogUseCase
	Users    users.UserUseCase
	Bookings booking.BookingUseCase
	Flights  flights.FlightUseCase
}

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the HTTP server and, when configured, the gRPC server. It
// blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	s := newServers(cfg, svc, log)

	errCh := make(chan error, 2)

	httpLis, err := net.Listen("tcp", cfg.HTTP.Address)
	if err != nil {
		return fmt.Errorf("listen HTTP %s: %w", cfg.HTTP.Address, err)
	}
	log.Info("http server listening", "address", httpLis.Addr().String())
	go func() {
		if err := s.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve HTTP: %w", err)
		}
	}()

	if s.grpcServer != nil {
		grpcLis, err := net.Listen("tcp", cfg.GRPC.Address)
		if err != nil {
			_ = s.httpServer.Close()
			return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
		}
		log.Info("grpc server listening", "address", grpcLis.Addr().String())
		go func() {
			if err := s.grpcServer.Serve(grpcLis); err != nil {
				errCh <- fmt.Errorf("serve gRPC: %w", err)
			}
		}()
	}

	select {
	case err := <-errCh:
		s.stop()
		return err
	case <-ctx.Done():
		log.Info("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if s.grpcServer != nil {
			s.grpcServer.GracefulStop()
		}
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, svc Services, log *logger.Logger) *Servers {
	router := api.NewRouter(api.RouterDeps{
		Catalog:     svc.Catalog,
		Users:       svc.Users,
		Bookings:    svc.Bookings,
		Flights:     svc.Flights,
		Log:         log,
		DocsEnabled: cfg.HTTP.DocsEnabled,
	})

	servers := &Servers{
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	if cfg.GRPC.Address != "" {
		grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(UnaryLogger(log)))
		bookingapi.RegisterBookingServiceServer(grpcSrv, bookingapi.NewServer(
			svc.Catalog, svc.Users, svc.Bookings, svc.Flights,
		))
		servers.grpcServer = grpcSrv
	}

	return servers
}

func (s *Servers) stop() {
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	_ = s.httpServer.Close()
}

// UnaryLogger logs every unary call with its status code.
func UnaryLogger(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		args := []any{
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			log.WarnContext(ctx, "grpc call", append(args, "error", err)...)
		} else {
			log.InfoContext(ctx, "grpc call", args...)
		}
		return resp, err
	}
}
