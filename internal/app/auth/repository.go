package auth

import "gorm.io/gorm"

type Repository interface {
	GetByKey(key string) (*Token, error)
	GetByUserID(userID uint64) (*Token, error)
	Create(token *Token) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByKey(key string) (*Token, error) {
	var token Token
	err := r.db.Where("key = ?", key).First(&token).Error
	return &token, err
}

func (r *repository) GetByUserID(userID uint64) (*Token, error) {
	var token Token
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	return &token, err
}

func (r *repository) Create(token *Token) error {
	return r.db.Create(token).Error
}
