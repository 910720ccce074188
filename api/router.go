package api

import (
	"net/http"

	"github.com/Domenick1991/bookingapi/docs"
	"github.com/Domenick1991/bookingapi/internal/logger"
	"github.com/Domenick1991/bookingapi/internal/metrics"
	"github.com/Domenick1991/bookingapi/internal/service/booking"
	"github.com/Domenick1991/bookingapi/internal/service/catalog"
	"github.com/Domenick1991/bookingapi/internal/service/flights"
	"github.com/Domenick1991/bookingapi/internal/service/users"
	"github.com/Domenick1991/bookingapi/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const openAPIPath = "/openapi.json"

type RouterDeps struct {
	Catalog     catalog.CatalogUseCase
	Users       users.UserUseCase
	Bookings    booking.BookingUseCase
	Flights     flights.FlightUseCase
	Log         *logger.Logger
	DocsEnabled bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	metrics.Register()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), RequestLogger(deps.Log), metrics.Middleware())
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Detail: msgNotFound})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{Detail: msgMethodNotAllowed})
	})

	validate := validation.New()

	NewHomeHandler().Register(router)
	NewCatalogHandler(deps.Catalog).Register(router)
	NewUserHandler(deps.Users, validate).Register(router)
	NewBookingHandler(deps.Bookings, validate).Register(router)
	NewFlightHandler(deps.Flights).Register(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if deps.DocsEnabled {
		router.GET(openAPIPath, func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json", docs.OpenAPI)
		})
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(openAPIPath))))
	}

	return router
}
