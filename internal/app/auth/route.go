package auth

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.POST("/registration/", handler.Register)
	rg.POST("/login/", handler.Login)
}
