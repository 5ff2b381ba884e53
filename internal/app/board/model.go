package board

import (
	"time"

	"backend/internal/app/user"
	"backend/internal/utils"
)

type Board struct {
	ID        uint64      `gorm:"primaryKey"`
	Title     string      `gorm:"not null"`
	OwnerID   uint64      `gorm:"not null;index"`
	Owner     user.User   `gorm:"foreignKey:OwnerID"`
	Members   []user.User `gorm:"many2many:board_members"`
	CreatedAt time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (b *Board) MemberIDs() []uint64 {
	ids := make([]uint64, 0, len(b.Members))
	for _, m := range b.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

// Summary is the aggregate row returned by board list and create. The counts
// are computed in the store, not in Go.
type Summary struct {
	ID                 uint64 `json:"id"`
	Title              string `json:"title"`
	MemberCount        int64  `json:"member_count"`
	TicketCount        int64  `json:"ticket_count"`
	TasksToDoCount     int64  `json:"tasks_to_do_count"`
	TasksHighPrioCount int64  `json:"tasks_high_prio_count"`
	OwnerID            uint64 `json:"owner_id"`
}

type Detail struct {
	ID      uint64         `json:"id"`
	Title   string         `json:"title"`
	OwnerID uint64         `json:"owner_id"`
	Members []user.Summary `json:"members"`
	Tasks   []*TaskPayload `json:"tasks"`
}

type UpdateResponse struct {
	ID          uint64         `json:"id"`
	Title       string         `json:"title"`
	OwnerData   user.Summary   `json:"owner_data"`
	MembersData []user.Summary `json:"members_data"`
}

type CreateRequest struct {
	Title   string   `json:"title" binding:"required,max=200"`
	Members []uint64 `json:"members"`
}

// UpdateRequest is a partial update: a nil field was absent from the payload.
// A present members list replaces the whole member set.
type UpdateRequest struct {
	Title   *string   `json:"title" binding:"omitempty,max=200"`
	Members *[]uint64 `json:"members"`
}

// TaskPayload is the wire shape of a task. It lives here because the board
// detail nests it; the task endpoints reuse it for their own responses.
type TaskPayload struct {
	ID            uint64          `json:"id"`
	Board         uint64          `json:"board"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	Assignee      *user.Summary   `json:"assignee"`
	Reviewer      *user.Summary   `json:"reviewer"`
	DueDate       *utils.DateOnly `json:"due_date"`
	CommentsCount int64           `json:"comments_count"`
}

// TaskLister supplies the nested task list for the detail view. Implemented
// by the task service, injected at bootstrap.
type TaskLister interface {
	ListBoardTasks(boardID uint64) ([]*TaskPayload, error)
}

type ErrorResponse struct {
	Error string `json:"error"`
}
