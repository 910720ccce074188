package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/Domenick1991/bookingapi/internal/validation"
	"github.com/gin-gonic/gin"
)

const (
	msgRoomNotFound = "Room not found"
	msgInternal     = "internal server error"

	msgNotFound         = "Not Found"
	msgMethodNotAllowed = "Method Not Allowed"
)

type errorResponse struct {
	Detail any `json:"detail"`
}

// writeError maps service and validation errors to a status and a
// {"detail": ...} body.
func writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: verrs})
	case errors.Is(err, domain.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Detail: msgRoomNotFound})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: msgInternal})
	}
}
