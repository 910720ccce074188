package booking_service_api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/Domenick1991/bookingapi/internal/service/booking"
	"github.com/Domenick1991/bookingapi/internal/service/catalog"
	"github.com/Domenick1991/bookingapi/internal/service/flights"
	"github.com/Domenick1991/bookingapi/internal/service/users"
	"github.com/Domenick1991/bookingapi/internal/validation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Server exposes the booking use cases over gRPC.
type Server struct {
	catalog  catalog.CatalogUseCase
	users    users.UserUseCase
	bookings booking.BookingUseCase
	flights  flights.FlightUseCase
}

func NewServer(
	catalogSvc catalog.CatalogUseCase,
	userSvc users.UserUseCase,
	bookingSvc booking.BookingUseCase,
	flightSvc flights.FlightUseCase,
) *Server {
	return &Server{
		catalog:  catalogSvc,
		users:    userSvc,
		bookings: bookingSvc,
		flights:  flightSvc,
	}
}

func (s *Server) ListHotels(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var errs validation.Errors
	city, _ := stringField(req, "city", &errs)
	if len(errs) > 0 {
		return nil, toStatus(errs)
	}

	hotels, err := s.catalog.ListHotels(ctx, city)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(map[string]any{"hotels": hotels})
}

func (s *Server) ListRooms(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var errs validation.Errors
	hotelID, _ := intField(req, "hotel_id", &errs)
	if len(errs) > 0 {
		return nil, toStatus(errs)
	}

	rooms, err := s.catalog.ListRooms(ctx, hotelID)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(map[string]any{"rooms": rooms})
}

func (s *Server) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var errs validation.Errors
	email := requireString(req, "email", &errs)
	name := requireString(req, "name", &errs)
	password := requireString(req, "password", &errs)
	if len(errs) > 0 {
		return nil, toStatus(errs)
	}

	user, err := s.users.Register(ctx, users.RegisterInput{Email: email, Name: name, Password: password})
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(map[string]any{"message": "Registration successful", "user_id": user.ID})
}

func (s *Server) CreateBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var errs validation.Errors
	userID := requireInt(req, "user_id", &errs)
	roomID := requireInt(req, "room_id", &errs)
	start := requireString(req, "start_date", &errs)
	end := requireString(req, "end_date", &errs)
	if len(errs) > 0 {
		return nil, toStatus(errs)
	}

	created, err := s.bookings.CreateBooking(ctx, booking.CreateBookingInput{
		UserID:    userID,
		RoomID:    roomID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(map[string]any{"message": "Booking created", "booking_id": created.ID})
}

func (s *Server) SearchFlights(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var errs validation.Errors
	from := requireString(req, "from_city", &errs)
	to := requireString(req, "to_city", &errs)
	passengers := int64(flights.DefaultPassengers)
	if n, ok := intField(req, "passengers", &errs); ok {
		passengers = n
	}
	if len(errs) > 0 {
		return nil, toStatus(errs)
	}

	found, err := s.flights.Search(ctx, domain.FlightSearch{
		FromCity:   from,
		ToCity:     to,
		Passengers: int(passengers),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(map[string]any{"flights": found})
}

func stringField(req *structpb.Struct, name string, errs *validation.Errors) (string, bool) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", false
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		*errs = append(*errs, validation.FieldError{
			Loc:  []string{validation.LocBody, name},
			Msg:  "str type expected",
			Type: "type_error.str",
		})
		return "", false
	}
	return sv.StringValue, true
}

// intField accepts integral numbers and numeric strings within int64 range.
func intField(req *structpb.Struct, name string, errs *validation.Errors) (int64, bool) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, false
	}

	var n int64
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n, ok = validation.IntFromFloat(kind.NumberValue)
	case *structpb.Value_StringValue:
		n, ok = validation.ParseInt(kind.StringValue)
	default:
		ok = false
	}
	if !ok {
		*errs = append(*errs, validation.NotInteger(validation.LocBody, name))
		return 0, false
	}
	return n, true
}

func requireString(req *structpb.Struct, name string, errs *validation.Errors) string {
	if _, ok := req.GetFields()[name]; !ok {
		*errs = append(*errs, validation.Missing(validation.LocBody, name))
		return ""
	}
	s, _ := stringField(req, name, errs)
	return s
}

func requireInt(req *structpb.Struct, name string, errs *validation.Errors) int64 {
	if _, ok := req.GetFields()[name]; !ok {
		*errs = append(*errs, validation.Missing(validation.LocBody, name))
		return 0
	}
	n, _ := intField(req, name, errs)
	return n
}

// toStruct goes through JSON so the domain json tags name the fields.
func toStruct(v map[string]any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out, err := structpb.NewStruct(generic)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

func toStatus(err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return status.Error(codes.InvalidArgument, verrs.Error())
	case errors.Is(err, domain.ErrRoomNotFound):
		return status.Error(codes.NotFound, "Room not found")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

var _ BookingServiceServer = (*Server)(nil)
