package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/bookingapi/internal/service/catalog"
	"github.com/Domenick1991/bookingapi/internal/validation"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router gin.IRoutes) {
	router.GET("/hotels", h.listHotels)
	router.GET("/rooms", h.listRooms)
}

func (h *CatalogHandler) listHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context(), c.Query("city"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// listRooms treats hotel_id=0 like an absent filter.
func (h *CatalogHandler) listRooms(c *gin.Context) {
	var hotelID int64
	if raw, ok := c.GetQuery("hotel_id"); ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, validation.Errors{validation.NotInteger(validation.LocQuery, "hotel_id")})
			return
		}
		hotelID = id
	}

	rooms, err := h.service.ListRooms(c.Request.Context(), hotelID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
