package user

import "gorm.io/gorm"

type Repository interface {
	GetByID(id uint64) (*User, error)
	GetByIDs(ids []uint64) ([]*User, error)
	GetByEmail(email string) (*User, error)
	EmailExists(email string) (bool, error)
	Create(user *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(id uint64) (*User, error) {
	var user User
	err := r.db.Where("id = ?", id).First(&user).Error
	return &user, err
}

func (r *repository) GetByIDs(ids []uint64) ([]*User, error) {
	var users []*User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *repository) GetByEmail(email string) (*User, error) {
	var user User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}
