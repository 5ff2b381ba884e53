package comment

import "gorm.io/gorm"

type Repository interface {
	ListByTask(taskID uint64) ([]*Payload, error)
	GetByID(id uint64) (*Comment, error)
	Create(comment *Comment) error
	Delete(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByTask(taskID uint64) ([]*Payload, error) {
	var payloads []*Payload
	err := r.db.Table("comments").
		Select("comments.id, comments.created_at, comments.content, users.fullname AS author").
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.task_id = ?", taskID).
		Order("comments.created_at ASC").
		Scan(&payloads).Error
	return payloads, err
}

func (r *repository) GetByID(id uint64) (*Comment, error) {
	var comment Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *repository) Create(comment *Comment) error {
	return r.db.Create(comment).Error
}

func (r *repository) Delete(id uint64) error {
	return r.db.Delete(&Comment{}, id).Error
}
