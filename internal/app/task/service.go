package task

import (
	"errors"
	"fmt"
	"time"

	"backend/internal/apperr"
	"backend/internal/app/board"
	"backend/internal/app/policy"
	"backend/internal/app/user"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateTask(actorID uint64, req CreateRequest) (*board.TaskPayload, error)
	UpdateTask(actorID, taskID uint64, req UpdateRequest) (*board.TaskPayload, error)
	DeleteTask(actorID, taskID uint64) error
	AssignedToMe(actorID uint64) ([]*board.TaskPayload, error)
	Reviewing(actorID uint64) ([]*board.TaskPayload, error)

	// ListBoardTasks implements board.TaskLister for the board detail view.
	ListBoardTasks(boardID uint64) ([]*board.TaskPayload, error)
}

type service struct {
	repo      Repository
	boardRepo board.Repository
	userRepo  user.Repository
	eventBus  *utils.EventBus
	logger    *zap.SugaredLogger
}

func NewService(repo Repository, boardRepo board.Repository, userRepo user.Repository, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:      repo,
		boardRepo: boardRepo,
		userRepo:  userRepo,
		eventBus:  eventBus,
		logger:    logger.Sugar(),
	}
}

func (s *service) CreateTask(actorID uint64, req CreateRequest) (*board.TaskPayload, error) {
	// The board id arrives in the body, not the path, but the ordering
	// contract is the same: the board must resolve before membership is
	// evaluated, so an absent board is 404 even for a total stranger.
	b, err := s.resolveBoard(req.Board)
	if err != nil {
		return nil, err
	}
	if !policy.CanWriteTask(actorID, b.OwnerID, b.MemberIDs()) {
		return nil, apperr.Forbidden("You must be a board member to create tasks")
	}

	if err := s.checkUserRef(req.AssigneeID, "assignee_id", "Assignee not found"); err != nil {
		return nil, err
	}
	if err := s.checkUserRef(req.ReviewerID, "reviewer_id", "Reviewer not found"); err != nil {
		return nil, err
	}

	t := &Task{
		BoardID:     req.Board,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		ReviewerID:  req.ReviewerID,
	}
	if t.Status == "" {
		t.Status = StatusToDo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if req.DueDate != nil {
		due := req.DueDate.Time
		t.DueDate = &due
	}

	if err := s.repo.Create(t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infow("Task created", "task_id", t.ID, "board_id", t.BoardID, "actor_id", actorID)
	s.eventBus.Publish("task_created", map[string]interface{}{
		"task_id":  t.ID,
		"board_id": t.BoardID,
		"actor_id": actorID,
	})

	return s.payloadByID(t.ID)
}

func (s *service) UpdateTask(actorID, taskID uint64, req UpdateRequest) (*board.TaskPayload, error) {
	t, err := s.resolveTask(taskID)
	if err != nil {
		return nil, err
	}

	b, err := s.resolveBoard(t.BoardID)
	if err != nil {
		return nil, err
	}
	if !policy.CanWriteTask(actorID, b.OwnerID, b.MemberIDs()) {
		return nil, apperr.Forbidden("You must be a board member to update tasks")
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		fields["due_date"] = req.DueDate.Time
	}

	if req.AssigneeID.Present {
		if err := s.checkUserRef(req.AssigneeID.Value, "assignee_id", "Assignee not found"); err != nil {
			return nil, err
		}
		fields["assignee_id"] = req.AssigneeID.Value
	}
	if req.ReviewerID.Present {
		if err := s.checkUserRef(req.ReviewerID.Value, "reviewer_id", "Reviewer not found"); err != nil {
			return nil, err
		}
		fields["reviewer_id"] = req.ReviewerID.Value
	}

	// req.Board is deliberately never applied.

	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()
		if err := s.repo.Update(taskID, fields); err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
	}

	return s.payloadByID(taskID)
}

func (s *service) DeleteTask(actorID, taskID uint64) error {
	t, err := s.resolveTask(taskID)
	if err != nil {
		return err
	}

	b, err := s.resolveBoard(t.BoardID)
	if err != nil {
		return err
	}
	if !policy.CanWriteTask(actorID, b.OwnerID, b.MemberIDs()) {
		return apperr.Forbidden("You must be a board member to delete tasks")
	}

	if err := s.repo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Infow("Task deleted", "task_id", taskID, "actor_id", actorID)
	s.eventBus.Publish("task_deleted", map[string]interface{}{
		"task_id":  taskID,
		"actor_id": actorID,
	})
	return nil
}

func (s *service) AssignedToMe(actorID uint64) ([]*board.TaskPayload, error) {
	tasks, err := s.repo.ListByAssignee(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned tasks: %w", err)
	}
	return s.toPayloads(tasks)
}

func (s *service) Reviewing(actorID uint64) ([]*board.TaskPayload, error) {
	tasks, err := s.repo.ListByReviewer(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviewing tasks: %w", err)
	}
	return s.toPayloads(tasks)
}

func (s *service) ListBoardTasks(boardID uint64) ([]*board.TaskPayload, error) {
	tasks, err := s.repo.ListByBoard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list board tasks: %w", err)
	}
	return s.toPayloads(tasks)
}

func (s *service) resolveTask(taskID uint64) (*Task, error) {
	t, err := s.repo.GetByID(taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

func (s *service) resolveBoard(boardID uint64) (*board.Board, error) {
	b, err := s.boardRepo.GetByID(boardID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Board not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return b, nil
}

func (s *service) checkUserRef(id *uint64, field, message string) error {
	if id == nil {
		return nil
	}
	_, err := s.userRepo.GetByID(*id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.FieldValidation(field, message)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", field, err)
	}
	return nil
}

func (s *service) payloadByID(taskID uint64) (*board.TaskPayload, error) {
	t, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	payloads, err := s.toPayloads([]*Task{t})
	if err != nil {
		return nil, err
	}
	return payloads[0], nil
}

// toPayloads resolves assignee/reviewer references in one batch and shapes
// the tasks for the wire.
func (s *service) toPayloads(tasks []*Task) ([]*board.TaskPayload, error) {
	idSet := make(map[uint64]bool)
	for _, t := range tasks {
		if t.AssigneeID != nil {
			idSet[*t.AssigneeID] = true
		}
		if t.ReviewerID != nil {
			idSet[*t.ReviewerID] = true
		}
	}

	ids := make([]uint64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve task users: %w", err)
	}
	byID := make(map[uint64]user.Summary, len(users))
	for _, u := range users {
		byID[u.ID] = u.Summary()
	}

	payloads := make([]*board.TaskPayload, 0, len(tasks))
	for _, t := range tasks {
		p := &board.TaskPayload{
			ID:            t.ID,
			Board:         t.BoardID,
			Title:         t.Title,
			Description:   t.Description,
			Status:        t.Status,
			Priority:      t.Priority,
			CommentsCount: t.CommentsCount,
		}
		if t.AssigneeID != nil {
			if summary, ok := byID[*t.AssigneeID]; ok {
				p.Assignee = &summary
			}
		}
		if t.ReviewerID != nil {
			if summary, ok := byID[*t.ReviewerID]; ok {
				p.Reviewer = &summary
			}
		}
		if t.DueDate != nil {
			due := utils.NewDateOnly(*t.DueDate)
			p.DueDate = &due
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}
