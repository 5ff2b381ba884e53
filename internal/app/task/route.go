package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/", handler.CreateTask)
		tasks.GET("/assigned-to-me/", handler.AssignedToMe)
		tasks.GET("/reviewing/", handler.Reviewing)
		tasks.PATCH("/:task_id/", handler.UpdateTask)
		tasks.DELETE("/:task_id/", handler.DeleteTask)
	}
}
