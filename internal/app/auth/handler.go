package auth

import (
	"net/http"

	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Register
// @Description Create a new user account and return its bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegistrationRequest true "Registration data"
// @Success 201 {object} Credentials
// @Failure 400 {object} ErrorResponse
// @Router /api/registration/ [post]
func (h *handler) Register(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	creds, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, creds)
}

// @Summary Login
// @Description Authenticate with email and password and return the bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login data"
// @Success 200 {object} Credentials
// @Failure 400 {object} ErrorResponse
// @Router /api/login/ [post]
func (h *handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email and password required"})
		return
	}

	creds, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, creds)
}
