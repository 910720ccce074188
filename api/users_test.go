package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/bookingapi/internal/domain"
	"github.com/Domenick1991/bookingapi/internal/service/users"
	"github.com/Domenick1991/bookingapi/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_register(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, validation.New())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]string{"email": "a@b.com", "name": "A", "password": "x"})
	c.Request = httptest.NewRequest("POST", "/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := users.RegisterInput{Email: "a@b.com", Name: "A", Password: "x"}
	mockService.On("Register", c.Request.Context(), input).
		Return(&domain.User{ID: 1, Email: "a@b.com", Name: "A", Role: domain.RoleUser}, nil)

	handler.register(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response registerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.UserID)
	assert.Equal(t, msgRegistered, response.Message)
	assert.NotContains(t, w.Body.String(), "password")

	mockService.AssertExpectations(t)
}

func TestUserHandler_register_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantLoc string
	}{
		{name: "missing password", body: `{"email":"a@b.com","name":"A"}`, wantLoc: "password"},
		{name: "missing email", body: `{"name":"A","password":"x"}`, wantLoc: "email"},
		{name: "wrong type", body: `{"email":1,"name":"A","password":"x"}`, wantLoc: "email"},
		{name: "empty body", body: ``, wantLoc: "body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockUserUseCase{}
			handler := NewUserHandler(mockService, validation.New())

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/register", strings.NewReader(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.register(c)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), `"`+tc.wantLoc+`"`)
			mockService.AssertNotCalled(t, "Register")
		})
	}
}
