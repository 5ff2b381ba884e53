package task

import "gorm.io/gorm"

type Repository interface {
	GetByID(id uint64) (*Task, error)
	ListByBoard(boardID uint64) ([]*Task, error)
	ListByAssignee(userID uint64) ([]*Task, error)
	ListByReviewer(userID uint64) ([]*Task, error)
	Create(task *Task) error
	Update(id uint64, fields map[string]interface{}) error
	Delete(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) withCommentCount() *gorm.DB {
	return r.db.Table("tasks").
		Select("tasks.*, COUNT(comments.id) AS comments_count").
		Joins("LEFT JOIN comments ON comments.task_id = tasks.id").
		Group("tasks.id")
}

func (r *repository) GetByID(id uint64) (*Task, error) {
	var task Task
	err := r.withCommentCount().
		Where("tasks.id = ?", id).
		Take(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *repository) ListByBoard(boardID uint64) ([]*Task, error) {
	return r.list("tasks.board_id = ?", boardID)
}

func (r *repository) ListByAssignee(userID uint64) ([]*Task, error) {
	return r.list("tasks.assignee_id = ?", userID)
}

func (r *repository) ListByReviewer(userID uint64) ([]*Task, error) {
	return r.list("tasks.reviewer_id = ?", userID)
}

func (r *repository) list(cond string, arg interface{}) ([]*Task, error) {
	var tasks []*Task
	err := r.withCommentCount().
		Where(cond, arg).
		Order("tasks.created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) Create(task *Task) error {
	return r.db.Create(task).Error
}

func (r *repository) Update(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&Task{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM comments WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Task{}, id).Error
	})
}
