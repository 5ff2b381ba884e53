package comment

import (
	"net/http"
	"strconv"

	"backend/internal/middleware"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListComments(c *gin.Context)
	CreateComment(c *gin.Context)
	DeleteComment(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List comments
// @Description Comments on a task, oldest first; board members only
// @Tags Comment
// @Accept json
// @Produce json
// @Param task_id path int true "Task ID"
// @Success 200 {array} Payload
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{task_id}/comments/ [get]
func (h *handler) ListComments(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task ID"})
		return
	}

	payloads, err := h.service.ListComments(actor.ID, taskID)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, payloads)
}

// @Summary Create comment
// @Description Comment on a task; the actor becomes the author
// @Tags Comment
// @Accept json
// @Produce json
// @Param task_id path int true "Task ID"
// @Param request body CreateRequest true "Comment data"
// @Success 201 {object} Payload
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{task_id}/comments/ [post]
func (h *handler) CreateComment(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task ID"})
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	payload, err := h.service.CreateComment(actor.ID, actor.Fullname, taskID, req.Content)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payload)
}

// @Summary Delete comment
// @Description Delete a comment; author only
// @Tags Comment
// @Accept json
// @Produce json
// @Param task_id path int true "Task ID"
// @Param comment_id path int true "Comment ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{task_id}/comments/{comment_id}/ [delete]
func (h *handler) DeleteComment(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task ID"})
		return
	}

	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment ID"})
		return
	}

	if err := h.service.DeleteComment(actor.ID, taskID, commentID); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
