package db

import (
	"backend/internal/app/auth"
	"backend/internal/app/board"
	"backend/internal/app/comment"
	"backend/internal/app/task"
	"backend/internal/app/user"
	"backend/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.PostgresDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)

	return db, nil
}

// Migrate creates or updates the schema. The board_members join table is
// derived from the Board.Members association.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(
		&user.User{},
		&auth.Token{},
		&board.Board{},
		&task.Task{},
		&comment.Comment{},
	); err != nil {
		return err
	}
	logger.Info("Database migrated")
	return nil
}
