package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_listHotels(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/hotels?city=%D0%BC%D0%BE%D1%81%D0%BA%D0%B2%D0%B0", nil)

	hotels := []domain.Hotel{{ID: 1, Name: "Гранд Отель", City: "Москва", Stars: 5}}
	mockService.On("ListHotels", c.Request.Context(), "москва").Return(hotels, nil)

	handler.listHotels(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []domain.Hotel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, hotels, response)
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_listHotels_Error(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/hotels", nil)

	mockService.On("ListHotels", c.Request.Context(), "").Return([]domain.Hotel(nil), errors.New("boom"))

	handler.listHotels(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())
}

func TestCatalogHandler_listRooms(t *testing.T) {
	testCases := []struct {
		name    string
		url     string
		hotelID int64
	}{
		{name: "no filter", url: "/rooms", hotelID: 0},
		{name: "zero means all", url: "/rooms?hotel_id=0", hotelID: 0},
		{name: "by hotel", url: "/rooms?hotel_id=1", hotelID: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockCatalogUseCase{}
			handler := NewCatalogHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", tc.url, nil)

			mockService.On("ListRooms", c.Request.Context(), tc.hotelID).Return([]domain.Room{}, nil)

			handler.listRooms(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_listRooms_InvalidHotelID(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/rooms?hotel_id=abc", nil)

	handler.listRooms(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"hotel_id"`)
	mockService.AssertNotCalled(t, "ListRooms")
}
