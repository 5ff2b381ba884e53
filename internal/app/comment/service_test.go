package comment

import (
	"testing"

	"backend/internal/apperr"
	"backend/internal/app/board"
	"backend/internal/app/task"
	"backend/internal/app/user"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeCommentRepo struct {
	comments map[uint64]*Comment
	nextID   uint64
	deleted  []uint64
}

func newFakeCommentRepo(comments ...*Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{comments: map[uint64]*Comment{}, nextID: 300}
	for _, c := range comments {
		r.comments[c.ID] = c
	}
	return r
}

func (r *fakeCommentRepo) ListByTask(taskID uint64) ([]*Payload, error) {
	var out []*Payload
	for _, c := range r.comments {
		if c.TaskID == taskID {
			out = append(out, &Payload{ID: c.ID, CreatedAt: c.CreatedAt, Content: c.Content})
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) GetByID(id uint64) (*Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCommentRepo) Create(c *Comment) error {
	r.nextID++
	c.ID = r.nextID
	r.comments[c.ID] = c
	return nil
}

func (r *fakeCommentRepo) Delete(id uint64) error {
	r.deleted = append(r.deleted, id)
	delete(r.comments, id)
	return nil
}

type fakeTaskRepo struct {
	tasks map[uint64]*task.Task
}

func (r *fakeTaskRepo) GetByID(id uint64) (*task.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *fakeTaskRepo) ListByBoard(boardID uint64) ([]*task.Task, error)   { return nil, nil }
func (r *fakeTaskRepo) ListByAssignee(userID uint64) ([]*task.Task, error) { return nil, nil }
func (r *fakeTaskRepo) ListByReviewer(userID uint64) ([]*task.Task, error) { return nil, nil }
func (r *fakeTaskRepo) Create(t *task.Task) error                          { return nil }
func (r *fakeTaskRepo) Update(id uint64, fields map[string]interface{}) error {
	return nil
}
func (r *fakeTaskRepo) Delete(id uint64) error { return nil }

type fakeBoardRepo struct {
	boards map[uint64]*board.Board
}

func (r *fakeBoardRepo) ListSummariesForUser(userID uint64) ([]*board.Summary, error) {
	return nil, nil
}
func (r *fakeBoardRepo) GetSummary(boardID uint64) (*board.Summary, error) { return nil, nil }
func (r *fakeBoardRepo) GetByID(boardID uint64) (*board.Board, error) {
	b, ok := r.boards[boardID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}
func (r *fakeBoardRepo) Create(b *board.Board, memberIDs []uint64) error { return nil }
func (r *fakeBoardRepo) Update(boardID uint64, title *string, memberIDs []uint64, replaceMembers bool) error {
	return nil
}
func (r *fakeBoardRepo) Delete(boardID uint64) error { return nil }

const (
	ownerID    = uint64(1)
	memberID   = uint64(2)
	strangerID = uint64(9)
)

func newTestService(comments *fakeCommentRepo) Service {
	taskRepo := &fakeTaskRepo{tasks: map[uint64]*task.Task{
		11: {ID: 11, BoardID: 7, Title: "Fix login"},
	}}
	boardRepo := &fakeBoardRepo{boards: map[uint64]*board.Board{
		7: {ID: 7, OwnerID: ownerID, Members: []user.User{{ID: memberID}}},
	}}
	return NewService(comments, taskRepo, boardRepo, utils.NewEventBus(), zap.NewNop())
}

func TestListCommentsResolvesTaskFirst(t *testing.T) {
	svc := newTestService(newFakeCommentRepo())

	if _, err := svc.ListComments(strangerID, 404); !apperr.IsNotFound(err) {
		t.Errorf("ListComments(missing task) error = %v, want not-found", err)
	}
	if _, err := svc.ListComments(strangerID, 11); !apperr.IsForbidden(err) {
		t.Errorf("ListComments(stranger) error = %v, want forbidden", err)
	}

	payloads, err := svc.ListComments(memberID, 11)
	if err != nil {
		t.Fatalf("ListComments(member) error = %v", err)
	}
	if payloads == nil {
		t.Error("ListComments returned nil, want empty slice")
	}
}

func TestCreateCommentCarriesAuthorName(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := newTestService(repo)

	payload, err := svc.CreateComment(memberID, "Member Name", 11, "looks good")
	if err != nil {
		t.Fatalf("CreateComment error = %v", err)
	}
	if payload.Author != "Member Name" || payload.Content != "looks good" {
		t.Errorf("payload = %+v", payload)
	}
	created := repo.comments[payload.ID]
	if created.AuthorID != memberID || created.TaskID != 11 {
		t.Errorf("stored comment = %+v", created)
	}
}

func TestCreateCommentNonMemberForbidden(t *testing.T) {
	svc := newTestService(newFakeCommentRepo())

	if _, err := svc.CreateComment(strangerID, "Stranger", 11, "hi"); !apperr.IsForbidden(err) {
		t.Fatalf("CreateComment(stranger) error = %v, want forbidden", err)
	}
}

func TestDeleteCommentOrdering(t *testing.T) {
	repo := newFakeCommentRepo(
		&Comment{ID: 31, TaskID: 11, AuthorID: memberID, Content: "mine"},
		&Comment{ID: 32, TaskID: 12, AuthorID: memberID, Content: "elsewhere"},
	)
	svc := newTestService(repo)

	// Task resolution comes before everything else.
	if err := svc.DeleteComment(memberID, 404, 31); !apperr.IsNotFound(err) {
		t.Errorf("DeleteComment(missing task) error = %v, want not-found", err)
	}
	// A comment id that exists under a different task is not found here.
	if err := svc.DeleteComment(memberID, 11, 32); !apperr.IsNotFound(err) {
		t.Errorf("DeleteComment(foreign comment) error = %v, want not-found", err)
	}
	if err := svc.DeleteComment(memberID, 11, 999); !apperr.IsNotFound(err) {
		t.Errorf("DeleteComment(missing comment) error = %v, want not-found", err)
	}
	// The owner is a board member but not the author: 403, not 404.
	if err := svc.DeleteComment(ownerID, 11, 31); !apperr.IsForbidden(err) {
		t.Errorf("DeleteComment(non-author member) error = %v, want forbidden", err)
	}

	if err := svc.DeleteComment(memberID, 11, 31); err != nil {
		t.Fatalf("DeleteComment(author) error = %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 31 {
		t.Errorf("deleted = %v, want [31]", repo.deleted)
	}
}
