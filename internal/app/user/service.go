package user

import (
	"errors"
	"fmt"

	"backend/internal/apperr"

	"gorm.io/gorm"
)

type Service interface {
	GetByEmail(email string) (*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByEmail(email string) (*Summary, error) {
	user, err := s.repo.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Email not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	summary := user.Summary()
	return &summary, nil
}
