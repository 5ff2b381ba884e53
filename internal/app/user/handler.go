package user

import (
	"net/http"

	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	EmailCheck(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Check email
// @Description Look up a user by email address
// @Tags User
// @Accept json
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} Summary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/email-check/ [get]
func (h *handler) EmailCheck(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email parameter required"})
		return
	}

	summary, err := h.service.GetByEmail(email)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
