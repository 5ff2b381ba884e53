package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	boards := rg.Group("/boards")
	{
		boards.GET("/", handler.ListBoards)
		boards.POST("/", handler.CreateBoard)
		boards.GET("/:board_id/", handler.GetBoard)
		boards.PATCH("/:board_id/", handler.UpdateBoard)
		boards.DELETE("/:board_id/", handler.DeleteBoard)
	}
}
