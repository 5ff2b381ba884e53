package board

import (
	"testing"

	"backend/internal/apperr"
	"backend/internal/app/user"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type updateCall struct {
	boardID        uint64
	title          *string
	memberIDs      []uint64
	replaceMembers bool
}

type fakeRepo struct {
	boards  map[uint64]*Board
	nextID  uint64
	updates []updateCall
	deleted []uint64
}

func newFakeRepo(boards ...*Board) *fakeRepo {
	r := &fakeRepo{boards: map[uint64]*Board{}, nextID: 100}
	for _, b := range boards {
		r.boards[b.ID] = b
	}
	return r
}

func (r *fakeRepo) ListSummariesForUser(userID uint64) ([]*Summary, error) {
	var out []*Summary
	for _, b := range r.boards {
		if b.OwnerID != userID {
			continue
		}
		out = append(out, &Summary{ID: b.ID, Title: b.Title, OwnerID: b.OwnerID})
	}
	return out, nil
}

func (r *fakeRepo) GetSummary(boardID uint64) (*Summary, error) {
	b, ok := r.boards[boardID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &Summary{ID: b.ID, Title: b.Title, MemberCount: int64(len(b.Members)), OwnerID: b.OwnerID}, nil
}

func (r *fakeRepo) GetByID(boardID uint64) (*Board, error) {
	b, ok := r.boards[boardID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *fakeRepo) Create(board *Board, memberIDs []uint64) error {
	r.nextID++
	board.ID = r.nextID
	for _, id := range memberIDs {
		board.Members = append(board.Members, user.User{ID: id})
	}
	r.boards[board.ID] = board
	return nil
}

func (r *fakeRepo) Update(boardID uint64, title *string, memberIDs []uint64, replaceMembers bool) error {
	r.updates = append(r.updates, updateCall{boardID, title, memberIDs, replaceMembers})
	b := r.boards[boardID]
	if title != nil {
		b.Title = *title
	}
	if replaceMembers {
		b.Members = nil
		for _, id := range memberIDs {
			b.Members = append(b.Members, user.User{ID: id})
		}
	}
	return nil
}

func (r *fakeRepo) Delete(boardID uint64) error {
	r.deleted = append(r.deleted, boardID)
	delete(r.boards, boardID)
	return nil
}

type fakeUserRepo struct {
	users map[uint64]*user.User
}

func (r *fakeUserRepo) GetByID(id uint64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByIDs(ids []uint64) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) EmailExists(email string) (bool, error) {
	_, err := r.GetByEmail(email)
	return err == nil, nil
}

func (r *fakeUserRepo) Create(u *user.User) error {
	u.ID = uint64(len(r.users) + 1)
	r.users[u.ID] = u
	return nil
}

type fakeTaskLister struct {
	payloads []*TaskPayload
}

func (l *fakeTaskLister) ListBoardTasks(boardID uint64) ([]*TaskPayload, error) {
	return l.payloads, nil
}

func testBoard() *Board {
	return &Board{
		ID:      7,
		Title:   "Sprint",
		OwnerID: 1,
		Owner:   user.User{ID: 1, Email: "owner@example.com", Fullname: "Owner"},
		Members: []user.User{{ID: 2, Email: "member@example.com", Fullname: "Member"}},
	}
}

func newTestService(repo *fakeRepo, users *fakeUserRepo, tasks TaskLister) Service {
	if tasks == nil {
		tasks = &fakeTaskLister{}
	}
	return NewService(repo, users, tasks, utils.NewEventBus(), zap.NewNop())
}

func TestGetBoardResolvesBeforeAuthorizing(t *testing.T) {
	repo := newFakeRepo(testBoard())
	svc := newTestService(repo, &fakeUserRepo{}, nil)

	// A missing board is 404 for everyone, including strangers.
	if _, err := svc.GetBoard(99, 123); !apperr.IsNotFound(err) {
		t.Fatalf("GetBoard(missing) error = %v, want not-found", err)
	}

	// An existing board the actor cannot see is 403, never 404.
	if _, err := svc.GetBoard(99, 7); !apperr.IsForbidden(err) {
		t.Fatalf("GetBoard(stranger) error = %v, want forbidden", err)
	}
}

func TestGetBoardMemberGetsDetail(t *testing.T) {
	repo := newFakeRepo(testBoard())
	tasks := &fakeTaskLister{payloads: []*TaskPayload{{ID: 11, Board: 7, Title: "Fix login"}}}
	svc := newTestService(repo, &fakeUserRepo{}, tasks)

	detail, err := svc.GetBoard(2, 7)
	if err != nil {
		t.Fatalf("GetBoard(member) error = %v", err)
	}
	if detail.OwnerID != 1 || len(detail.Members) != 1 || detail.Members[0].ID != 2 {
		t.Errorf("unexpected detail: %+v", detail)
	}
	if len(detail.Tasks) != 1 || detail.Tasks[0].ID != 11 {
		t.Errorf("unexpected tasks: %+v", detail.Tasks)
	}
}

func TestCreateBoardRejectsUnknownMember(t *testing.T) {
	repo := newFakeRepo()
	users := &fakeUserRepo{users: map[uint64]*user.User{2: {ID: 2}}}
	svc := newTestService(repo, users, nil)

	_, err := svc.CreateBoard(1, CreateRequest{Title: "Sprint", Members: []uint64{2, 42}})
	if !apperr.IsValidation(err) {
		t.Fatalf("CreateBoard error = %v, want validation", err)
	}
	if len(repo.boards) != 0 {
		t.Error("board was created despite unknown member")
	}
}

func TestCreateBoardDedupesMembers(t *testing.T) {
	repo := newFakeRepo()
	users := &fakeUserRepo{users: map[uint64]*user.User{2: {ID: 2}, 3: {ID: 3}}}
	svc := newTestService(repo, users, nil)

	summary, err := svc.CreateBoard(1, CreateRequest{Title: "Sprint", Members: []uint64{2, 2, 3}})
	if err != nil {
		t.Fatalf("CreateBoard error = %v", err)
	}
	created := repo.boards[summary.ID]
	if len(created.Members) != 2 {
		t.Errorf("member count = %d, want 2", len(created.Members))
	}
	if created.OwnerID != 1 {
		t.Errorf("owner = %d, want the acting user", created.OwnerID)
	}
}

func TestUpdateBoardReplacesMemberSet(t *testing.T) {
	repo := newFakeRepo(testBoard())
	users := &fakeUserRepo{users: map[uint64]*user.User{3: {ID: 3, Fullname: "Third"}}}
	svc := newTestService(repo, users, nil)

	members := []uint64{3}
	resp, err := svc.UpdateBoard(1, 7, UpdateRequest{Members: &members})
	if err != nil {
		t.Fatalf("UpdateBoard error = %v", err)
	}

	if len(repo.updates) != 1 || !repo.updates[0].replaceMembers {
		t.Fatalf("expected one replacing update, got %+v", repo.updates)
	}
	// Replacement, not merge: the previous member is gone.
	if len(resp.MembersData) != 1 || resp.MembersData[0].ID != 3 {
		t.Errorf("members after update = %+v, want exactly user 3", resp.MembersData)
	}
}

func TestUpdateBoardOmittedMembersKeepsSet(t *testing.T) {
	repo := newFakeRepo(testBoard())
	svc := newTestService(repo, &fakeUserRepo{}, nil)

	title := "Renamed"
	resp, err := svc.UpdateBoard(2, 7, UpdateRequest{Title: &title})
	if err != nil {
		t.Fatalf("UpdateBoard error = %v", err)
	}
	if repo.updates[0].replaceMembers {
		t.Error("update replaced members although the key was absent")
	}
	if resp.Title != "Renamed" {
		t.Errorf("title = %q, want %q", resp.Title, "Renamed")
	}
	if len(resp.MembersData) != 1 || resp.MembersData[0].ID != 2 {
		t.Errorf("members = %+v, want the original member", resp.MembersData)
	}
}

func TestDeleteBoardOwnerOnly(t *testing.T) {
	repo := newFakeRepo(testBoard())
	svc := newTestService(repo, &fakeUserRepo{}, nil)

	if err := svc.DeleteBoard(2, 123); !apperr.IsNotFound(err) {
		t.Fatalf("DeleteBoard(missing) error = %v, want not-found", err)
	}
	// Members can see the board, so the denial is 403.
	if err := svc.DeleteBoard(2, 7); !apperr.IsForbidden(err) {
		t.Fatalf("DeleteBoard(member) error = %v, want forbidden", err)
	}
	if err := svc.DeleteBoard(1, 7); err != nil {
		t.Fatalf("DeleteBoard(owner) error = %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 7 {
		t.Errorf("deleted = %v, want [7]", repo.deleted)
	}
}

func TestListBoardsEmptyIsNotNil(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeUserRepo{}, nil)
	summaries, err := svc.ListBoards(1)
	if err != nil {
		t.Fatalf("ListBoards error = %v", err)
	}
	if summaries == nil {
		t.Error("ListBoards returned nil, want empty slice")
	}
}
