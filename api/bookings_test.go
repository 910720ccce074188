package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/Domenick1991/bookingapi/internal/service/booking"
	"github.com/Domenick1991/bookingapi/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, validation.New())

	payload, _ := json.Marshal(map[string]any{"user_id": 1, "room_id": 1, "start_date": "2025-01-01", "end_date": "2025-01-05"})
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	input := booking.CreateBookingInput{UserID: 1, RoomID: 1, StartDate: "2025-01-01", EndDate: "2025-01-05"}
	mockService.On("CreateBooking", c.Request.Context(), input).
		Return(&domain.Booking{ID: 1, UserID: 1, RoomID: 1, StartDate: "2025-01-01", EndDate: "2025-01-05"}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response bookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.BookingID)
	assert.Equal(t, msgBookingCreated, response.Message)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_RoomNotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, validation.New())

	c, w := newBookingContext(t, `{"user_id":1,"room_id":9999,"start_date":"a","end_date":"b"}`)

	input := booking.CreateBookingInput{UserID: 1, RoomID: 9999, StartDate: "a", EndDate: "b"}
	mockService.On("CreateBooking", c.Request.Context(), input).Return(nil, domain.ErrRoomNotFound)

	handler.create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Room not found"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_ZeroIDsArePresent(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, validation.New())

	c, w := newBookingContext(t, `{"user_id":0,"room_id":0,"start_date":"","end_date":""}`)

	mockService.On("CreateBooking", c.Request.Context(), booking.CreateBookingInput{}).Return(nil, domain.ErrRoomNotFound)

	handler.create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantLoc string
	}{
		{name: "missing room", body: `{"user_id":1,"start_date":"a","end_date":"b"}`, wantLoc: "room_id"},
		{name: "string id", body: `{"user_id":"abc","room_id":1,"start_date":"a","end_date":"b"}`, wantLoc: "user_id"},
		{name: "missing dates", body: `{"user_id":1,"room_id":1}`, wantLoc: "start_date"},
		{name: "broken json", body: `{"user_id" 1}`, wantLoc: "body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService, validation.New())

			c, w := newBookingContext(t, tc.body)

			handler.create(c)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), `"`+tc.wantLoc+`"`)
			mockService.AssertNotCalled(t, "CreateBooking")
		})
	}
}
