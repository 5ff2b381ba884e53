package comment

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	comments := rg.Group("/tasks/:task_id/comments")
	{
		comments.GET("/", handler.ListComments)
		comments.POST("/", handler.CreateComment)
		comments.DELETE("/:comment_id/", handler.DeleteComment)
	}
}
