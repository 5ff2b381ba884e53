package task

import (
	"net/http"
	"strconv"

	"backend/internal/middleware"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreateTask(c *gin.Context)
	UpdateTask(c *gin.Context)
	DeleteTask(c *gin.Context)
	AssignedToMe(c *gin.Context)
	Reviewing(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Create task
// @Description Create a task on a board the actor is a member of
// @Tags Task
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Task data"
// @Success 201 {object} board.TaskPayload
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/ [post]
func (h *handler) CreateTask(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	payload, err := h.service.CreateTask(actor.ID, req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payload)
}

// @Summary Update task
// @Description Partially update a task; the board reference never changes
// @Tags Task
// @Accept json
// @Produce json
// @Param task_id path int true "Task ID"
// @Param request body UpdateRequest true "Fields to update"
// @Success 200 {object} board.TaskPayload
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{task_id}/ [patch]
func (h *handler) UpdateTask(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task ID"})
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	payload, err := h.service.UpdateTask(actor.ID, taskID, req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// @Summary Delete task
// @Description Delete a task; board members only
// @Tags Task
// @Accept json
// @Produce json
// @Param task_id path int true "Task ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/tasks/{task_id}/ [delete]
func (h *handler) DeleteTask(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task ID"})
		return
	}

	if err := h.service.DeleteTask(actor.ID, taskID); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Tasks assigned to me
// @Description Tasks where the actor is the assignee
// @Tags Task
// @Accept json
// @Produce json
// @Success 200 {array} board.TaskPayload
// @Router /api/tasks/assigned-to-me/ [get]
func (h *handler) AssignedToMe(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	payloads, err := h.service.AssignedToMe(actor.ID)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, payloads)
}

// @Summary Tasks under review by me
// @Description Tasks where the actor is the reviewer
// @Tags Task
// @Accept json
// @Produce json
// @Success 200 {array} board.TaskPayload
// @Router /api/tasks/reviewing/ [get]
func (h *handler) Reviewing(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	payloads, err := h.service.Reviewing(actor.ID)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, payloads)
}
