package comment

import "time"

// Comment belongs to a task; the task and author references are fixed at
// creation and never mutated.
type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	TaskID    uint64    `gorm:"not null;index"`
	AuthorID  uint64    `gorm:"not null;index"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// Payload is the wire shape: the author collapses to their fullname.
type Payload struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
}

type CreateRequest struct {
	Content string `json:"content" binding:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
