package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/Domenick1991/bookingapi/internal/service/flights"
	"github.com/Domenick1991/bookingapi/internal/validation"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router gin.IRoutes) {
	router.GET("/flights", h.search)
}

func (h *FlightHandler) search(c *gin.Context) {
	var errs validation.Errors

	from, ok := c.GetQuery("from_city")
	if !ok {
		errs = append(errs, validation.Missing(validation.LocQuery, "from_city"))
	}
	to, ok := c.GetQuery("to_city")
	if !ok {
		errs = append(errs, validation.Missing(validation.LocQuery, "to_city"))
	}

	passengers := flights.DefaultPassengers
	if raw, ok := c.GetQuery("passengers"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validation.NotInteger(validation.LocQuery, "passengers"))
		} else {
			passengers = n
		}
	}

	if len(errs) > 0 {
		writeError(c, errs)
		return
	}

	result, err := h.service.Search(c.Request.Context(), domain.FlightSearch{
		FromCity:   from,
		ToCity:     to,
		Passengers: passengers,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
