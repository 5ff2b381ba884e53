package board

import (
	"errors"
	"fmt"

	"backend/internal/apperr"
	"backend/internal/app/policy"
	"backend/internal/app/user"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	ListBoards(actorID uint64) ([]*Summary, error)
	CreateBoard(actorID uint64, req CreateRequest) (*Summary, error)
	GetBoard(actorID, boardID uint64) (*Detail, error)
	UpdateBoard(actorID, boardID uint64, req UpdateRequest) (*UpdateResponse, error)
	DeleteBoard(actorID, boardID uint64) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	tasks    TaskLister
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, userRepo user.Repository, tasks TaskLister, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		tasks:    tasks,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func (s *service) ListBoards(actorID uint64) ([]*Summary, error) {
	summaries, err := s.repo.ListSummariesForUser(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	if summaries == nil {
		summaries = []*Summary{}
	}
	return summaries, nil
}

func (s *service) CreateBoard(actorID uint64, req CreateRequest) (*Summary, error) {
	memberIDs, err := s.resolveMemberIDs(req.Members)
	if err != nil {
		return nil, err
	}

	b := &Board{Title: req.Title, OwnerID: actorID}
	if err := s.repo.Create(b, memberIDs); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	s.logger.Infow("Board created", "board_id", b.ID, "owner_id", actorID)
	s.eventBus.Publish("board_created", map[string]interface{}{
		"board_id": b.ID,
		"owner_id": actorID,
	})

	summary, err := s.repo.GetSummary(b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get created board: %w", err)
	}
	return summary, nil
}

func (s *service) GetBoard(actorID, boardID uint64) (*Detail, error) {
	b, err := s.resolveBoard(boardID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadBoard(actorID, b.OwnerID, b.MemberIDs()) {
		return nil, apperr.Forbidden("You do not have access to this board")
	}

	tasks, err := s.tasks.ListBoardTasks(b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list board tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*TaskPayload{}
	}

	members := make([]user.Summary, 0, len(b.Members))
	for i := range b.Members {
		members = append(members, b.Members[i].Summary())
	}

	return &Detail{
		ID:      b.ID,
		Title:   b.Title,
		OwnerID: b.OwnerID,
		Members: members,
		Tasks:   tasks,
	}, nil
}

func (s *service) UpdateBoard(actorID, boardID uint64, req UpdateRequest) (*UpdateResponse, error) {
	b, err := s.resolveBoard(boardID)
	if err != nil {
		return nil, err
	}
	if !policy.CanUpdateBoard(actorID, b.OwnerID, b.MemberIDs()) {
		return nil, apperr.Forbidden("You do not have access to this board")
	}

	var memberIDs []uint64
	replaceMembers := req.Members != nil
	if replaceMembers {
		memberIDs, err = s.resolveMemberIDs(*req.Members)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(boardID, req.Title, memberIDs, replaceMembers); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	updated, err := s.repo.GetByID(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated board: %w", err)
	}

	membersData := make([]user.Summary, 0, len(updated.Members))
	for i := range updated.Members {
		membersData = append(membersData, updated.Members[i].Summary())
	}

	return &UpdateResponse{
		ID:          updated.ID,
		Title:       updated.Title,
		OwnerData:   updated.Owner.Summary(),
		MembersData: membersData,
	}, nil
}

func (s *service) DeleteBoard(actorID, boardID uint64) error {
	b, err := s.resolveBoard(boardID)
	if err != nil {
		return err
	}
	if !policy.CanDeleteBoard(actorID, b.OwnerID) {
		return apperr.Forbidden("Only the board owner can delete it")
	}

	if err := s.repo.Delete(boardID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	s.logger.Infow("Board deleted", "board_id", boardID, "actor_id", actorID)
	s.eventBus.Publish("board_deleted", map[string]interface{}{
		"board_id": boardID,
		"actor_id": actorID,
	})
	return nil
}

// resolveBoard is the existence half of the resolve-then-authorize contract:
// it must complete before any policy predicate runs.
func (s *service) resolveBoard(boardID uint64) (*Board, error) {
	b, err := s.repo.GetByID(boardID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Board not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return b, nil
}

// resolveMemberIDs de-duplicates the requested member ids and rejects the
// write when any of them does not reference an existing user.
func (s *service) resolveMemberIDs(ids []uint64) ([]uint64, error) {
	unique := make([]uint64, 0, len(ids))
	seen := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return nil, nil
	}

	users, err := s.userRepo.GetByIDs(unique)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve members: %w", err)
	}
	if len(users) != len(unique) {
		return nil, apperr.FieldValidation("members", "Member not found")
	}
	return unique, nil
}
