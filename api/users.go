package api

import (
	"net/http"

	"github.com/Domenick1991/bookingapi/internal/service/users"
	"github.com/Domenick1991/bookingapi/internal/validation"
	"github.com/gin-gonic/gin"
)

const msgRegistered = "Registration successful"

type UserHandler struct {
	service  users.UserUseCase
	validate *validation.Validator
}

// Pointers tell a missing field from an empty one.
type registerRequest struct {
	Email    *string `json:"email" validate:"required"`
	Name     *string `json:"name" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

func NewUserHandler(service users.UserUseCase, validate *validation.Validator) *UserHandler {
	return &UserHandler{service: service, validate: validate}
}

func (h *UserHandler) Register(router gin.IRoutes) {
	router.POST("/register", h.register)
}

func (h *UserHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validation.FromDecodeError(err))
		return
	}
	if err := h.validate.Struct(validation.LocBody, req); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), users.RegisterInput{
		Email:    *req.Email,
		Name:     *req.Name,
		Password: *req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, registerResponse{Message: msgRegistered, UserID: user.ID})
}
