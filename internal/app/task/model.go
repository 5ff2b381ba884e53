package task

import (
	"encoding/json"
	"time"

	"backend/internal/utils"
)

const (
	StatusToDo       = "to-do"
	StatusInProgress = "in-progress"
	StatusReview     = "review"
	StatusDone       = "done"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID          uint64     `gorm:"primaryKey"`
	BoardID     uint64     `gorm:"not null;index"`
	Title       string     `gorm:"not null"`
	Description string
	Status      string     `gorm:"not null;default:'to-do'"`
	Priority    string     `gorm:"not null;default:'medium'"`
	AssigneeID  *uint64    `gorm:"index"`
	ReviewerID  *uint64    `gorm:"index"`
	DueDate     *time.Time `gorm:"type:date"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`

	// CommentsCount is filled by list queries; it is not a stored column.
	CommentsCount int64 `gorm:"->;-:migration"`
}

type CreateRequest struct {
	Board       uint64          `json:"board" binding:"required"`
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description"`
	Status      string          `json:"status" binding:"omitempty,oneof=to-do in-progress review done"`
	Priority    string          `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssigneeID  *uint64         `json:"assignee_id"`
	ReviewerID  *uint64         `json:"reviewer_id"`
	DueDate     *utils.DateOnly `json:"due_date"`
}

// UpdateRequest is a partial update. The board key is accepted but never
// applied: a task's board reference is fixed at creation. assignee_id and
// reviewer_id distinguish key-absent (keep) from explicit null (clear).
type UpdateRequest struct {
	Board       *uint64         `json:"board"`
	Title       *string         `json:"title" binding:"omitempty,max=200"`
	Description *string         `json:"description"`
	Status      *string         `json:"status" binding:"omitempty,oneof=to-do in-progress review done"`
	Priority    *string         `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssigneeID  OptionalUserID  `json:"assignee_id"`
	ReviewerID  OptionalUserID  `json:"reviewer_id"`
	DueDate     *utils.DateOnly `json:"due_date"`
}

// OptionalUserID is a user reference that remembers whether its key appeared
// in the payload at all.
type OptionalUserID struct {
	Present bool
	Value   *uint64
}

func (o *OptionalUserID) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var id uint64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}
