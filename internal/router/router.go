package router

import (
	"backend/internal/app/auth"
	"backend/internal/app/board"
	"backend/internal/app/comment"
	"backend/internal/app/health"
	"backend/internal/app/task"
	"backend/internal/app/user"
	"backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine

	api       *gin.RouterGroup
	protected *gin.RouterGroup
}

// NewRouter builds the engine with the shared middleware stack and an /api
// group split into a public part and a bearer-token protected part.
func NewRouter(logger *zap.Logger, authMW gin.HandlerFunc) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())

	api := engine.Group("/api")
	protected := engine.Group("/api")
	protected.Use(authMW)

	return &Router{
		Engine:    engine,
		api:       api,
		protected: protected,
	}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.api, handler)
}

func (r *Router) RegisterAuthRoutes(handler auth.Handler) {
	auth.RegisterRoutes(r.api, handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterTaskRoutes(handler task.Handler) {
	task.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterCommentRoutes(handler comment.Handler) {
	comment.RegisterRoutes(r.protected, handler)
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
