package comment

import (
	"errors"
	"fmt"

	"backend/internal/apperr"
	"backend/internal/app/board"
	"backend/internal/app/policy"
	"backend/internal/app/task"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	ListComments(actorID, taskID uint64) ([]*Payload, error)
	CreateComment(actorID uint64, actorName string, taskID uint64, content string) (*Payload, error)
	DeleteComment(actorID, taskID, commentID uint64) error
}

type service struct {
	repo      Repository
	taskRepo  task.Repository
	boardRepo board.Repository
	eventBus  *utils.EventBus
	logger    *zap.SugaredLogger
}

func NewService(repo Repository, taskRepo task.Repository, boardRepo board.Repository, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:      repo,
		taskRepo:  taskRepo,
		boardRepo: boardRepo,
		eventBus:  eventBus,
		logger:    logger.Sugar(),
	}
}

func (s *service) ListComments(actorID, taskID uint64) ([]*Payload, error) {
	t, err := s.resolveTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeMembership(actorID, t.BoardID); err != nil {
		return nil, err
	}

	payloads, err := s.repo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if payloads == nil {
		payloads = []*Payload{}
	}
	return payloads, nil
}

func (s *service) CreateComment(actorID uint64, actorName string, taskID uint64, content string) (*Payload, error) {
	t, err := s.resolveTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeMembership(actorID, t.BoardID); err != nil {
		return nil, err
	}

	c := &Comment{
		TaskID:   taskID,
		AuthorID: actorID,
		Content:  content,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Infow("Comment created", "comment_id", c.ID, "task_id", taskID, "author_id", actorID)
	s.eventBus.Publish("comment_created", map[string]interface{}{
		"comment_id": c.ID,
		"task_id":    taskID,
		"author_id":  actorID,
	})

	return &Payload{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Author:    actorName,
		Content:   c.Content,
	}, nil
}

// DeleteComment enforces the full ordering contract for the deepest nested
// resource: task existence, then comment existence under that task, then
// authorship. A board member who is not the author gets 403, not 404.
func (s *service) DeleteComment(actorID, taskID, commentID uint64) error {
	if _, err := s.resolveTask(taskID); err != nil {
		return err
	}

	c, err := s.repo.GetByID(commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Comment not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if c.TaskID != taskID {
		return apperr.NotFound("Comment not found")
	}

	if !policy.CanDeleteComment(actorID, c.AuthorID) {
		return apperr.Forbidden("Only the comment author can delete it")
	}

	if err := s.repo.Delete(commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.Infow("Comment deleted", "comment_id", commentID, "actor_id", actorID)
	return nil
}

func (s *service) resolveTask(taskID uint64) (*task.Task, error) {
	t, err := s.taskRepo.GetByID(taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// authorizeMembership derives comment visibility transitively through the
// task's board.
func (s *service) authorizeMembership(actorID, boardID uint64) error {
	b, err := s.boardRepo.GetByID(boardID)
	if err != nil {
		return fmt.Errorf("failed to get board: %w", err)
	}
	if !policy.CanReadComment(actorID, b.OwnerID, b.MemberIDs()) {
		return apperr.Forbidden("You do not have access to this task")
	}
	return nil
}
