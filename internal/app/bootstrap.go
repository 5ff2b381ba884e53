package app

import (
	"backend/internal/app/activity"
	"backend/internal/app/auth"
	"backend/internal/app/board"
	"backend/internal/app/comment"
	"backend/internal/app/health"
	"backend/internal/app/task"
	"backend/internal/app/user"
	"backend/internal/config"
	"backend/internal/db"
	"backend/internal/db/seeder"
	"backend/internal/middleware"
	"backend/internal/providers/redis"
	"backend/internal/router"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	seed := seeder.NewSeeder(dbConn, logger)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.TokenCacheTTL)
	eventBus := utils.NewEventBus()

	userRepo := user.NewRepository(dbConn)
	authRepo := auth.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)
	taskRepo := task.NewRepository(dbConn)
	commentRepo := comment.NewRepository(dbConn)

	userService := user.NewService(userRepo)
	authService := auth.NewService(authRepo, userRepo, redisProvider, logger, cfg.TokenCacheTTL)
	taskService := task.NewService(taskRepo, boardRepo, userRepo, eventBus, logger)
	boardService := board.NewService(boardRepo, userRepo, taskService, eventBus, logger)
	commentService := comment.NewService(commentRepo, taskRepo, boardRepo, eventBus, logger)

	activityLogger := activity.NewLogger(eventBus, logger)
	go activityLogger.Run()

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	boardHandler := board.NewHandler(boardService)
	taskHandler := task.NewHandler(taskService)
	commentHandler := comment.NewHandler(commentService)

	r := router.NewRouter(logger, middleware.AuthRequired(authService))

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterAuthRoutes(authHandler)
	r.RegisterUserRoutes(userHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterTaskRoutes(taskHandler)
	r.RegisterCommentRoutes(commentHandler)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
