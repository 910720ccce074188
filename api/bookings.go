package api

import (
	"net/http"

	"github.com/Domenick1991/bookingapi/internal/service/booking"
	"github.com/Domenick1991/bookingapi/internal/validation"
	"github.com/gin-gonic/gin"
)

const msgBookingCreated = "Booking created"

type BookingHandler struct {
	service  booking.BookingUseCase
	validate *validation.Validator
}

type createBookingRequest struct {
	UserID    *validation.Int `json:"user_id" validate:"required"`
	RoomID    *validation.Int `json:"room_id" validate:"required"`
	StartDate *string         `json:"start_date" validate:"required"`
	EndDate   *string         `json:"end_date" validate:"required"`
}

type bookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
}

func NewBookingHandler(service booking.BookingUseCase, validate *validation.Validator) *BookingHandler {
	return &BookingHandler{service: service, validate: validate}
}

func (h *BookingHandler) Register(router gin.IRoutes) {
	router.POST("/bookings", h.create)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.FromDecodeError(err))
		return
	}
	if err := h.validate.Struct(validation.LocBody, req); err != nil {
		writeError(c, err)
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		UserID:    req.UserID.Int64(),
		RoomID:    req.RoomID.Int64(),
		StartDate: *req.StartDate,
		EndDate:   *req.EndDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingResponse{Message: msgBookingCreated, BookingID: created.ID})
}
