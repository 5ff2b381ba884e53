package board

import (
	"net/http"
	"strconv"

	"backend/internal/middleware"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListBoards(c *gin.Context)
	CreateBoard(c *gin.Context)
	GetBoard(c *gin.Context)
	UpdateBoard(c *gin.Context)
	DeleteBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List boards
// @Description List boards the actor owns or is a member of
// @Tags Board
// @Accept json
// @Produce json
// @Success 200 {array} Summary
// @Router /api/boards/ [get]
func (h *handler) ListBoards(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	summaries, err := h.service.ListBoards(actor.ID)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// @Summary Create board
// @Description Create a board; the actor becomes its owner
// @Tags Board
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Board data"
// @Success 201 {object} Summary
// @Failure 400 {object} ErrorResponse
// @Router /api/boards/ [post]
func (h *handler) CreateBoard(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	summary, err := h.service.CreateBoard(actor.ID, req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// @Summary Board detail
// @Description Board with nested members and tasks; owner or member only
// @Tags Board
// @Accept json
// @Produce json
// @Param board_id path int true "Board ID"
// @Success 200 {object} Detail
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board_id}/ [get]
func (h *handler) GetBoard(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board ID"})
		return
	}

	detail, err := h.service.GetBoard(actor.ID, boardID)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Update board
// @Description Patch the title and/or replace the member set
// @Tags Board
// @Accept json
// @Produce json
// @Param board_id path int true "Board ID"
// @Param request body UpdateRequest true "Fields to update"
// @Success 200 {object} UpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board_id}/ [patch]
func (h *handler) UpdateBoard(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board ID"})
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.service.UpdateBoard(actor.ID, boardID, req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete board
// @Description Delete a board and everything nested under it; owner only
// @Tags Board
// @Accept json
// @Produce json
// @Param board_id path int true "Board ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board_id}/ [delete]
func (h *handler) DeleteBoard(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board ID"})
		return
	}

	if err := h.service.DeleteBoard(actor.ID, boardID); err != nil {
		utils.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
