package seeder

import (
	"backend/internal/app/board"
	"backend/internal/app/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedUsers(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

// seedUsers creates a pair of demo accounts and a shared board so a fresh
// instance is explorable without registering.
func (s *Seeder) seedUsers() error {
	var count int64
	s.db.Model(&user.User{}).Count(&count)
	if count > 0 {
		s.logger.Info("Users already exist, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []user.User{
		{Email: "max.mustermann@example.com", Fullname: "Max Mustermann", PasswordHash: string(hash), Active: true},
		{Email: "marie.musterfrau@example.com", Fullname: "Marie Musterfrau", PasswordHash: string(hash), Active: true},
	}
	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	demo := board.Board{Title: "Projekt X", OwnerID: users[0].ID}
	if err := s.db.Omit(clause.Associations).Create(&demo).Error; err != nil {
		return err
	}
	if err := s.db.Exec("INSERT INTO board_members (board_id, user_id) VALUES (?, ?)", demo.ID, users[1].ID).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded demo users and board", zap.Int("users", len(users)))
	return nil
}
