package board

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListSummariesForUser(userID uint64) ([]*Summary, error)
	GetSummary(boardID uint64) (*Summary, error)
	GetByID(boardID uint64) (*Board, error)
	Create(board *Board, memberIDs []uint64) error
	Update(boardID uint64, title *string, memberIDs []uint64, replaceMembers bool) error
	Delete(boardID uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const summarySelect = `
	boards.id,
	boards.title,
	boards.owner_id,
	(SELECT COUNT(*) FROM board_members bm WHERE bm.board_id = boards.id) AS member_count,
	(SELECT COUNT(*) FROM tasks t WHERE t.board_id = boards.id) AS ticket_count,
	(SELECT COUNT(*) FROM tasks t WHERE t.board_id = boards.id AND t.status = 'to-do') AS tasks_to_do_count,
	(SELECT COUNT(*) FROM tasks t WHERE t.board_id = boards.id AND t.priority = 'high') AS tasks_high_prio_count
`

// ListSummariesForUser returns boards the user owns or belongs to. The OR in
// a single query keeps owner+member overlap from producing duplicate rows.
func (r *repository) ListSummariesForUser(userID uint64) ([]*Summary, error) {
	var summaries []*Summary
	err := r.db.Table("boards").
		Select(summarySelect).
		Where("boards.owner_id = ? OR boards.id IN (SELECT board_id FROM board_members WHERE user_id = ?)", userID, userID).
		Order("boards.created_at DESC").
		Scan(&summaries).Error
	return summaries, err
}

func (r *repository) GetSummary(boardID uint64) (*Summary, error) {
	var summary Summary
	err := r.db.Table("boards").
		Select(summarySelect).
		Where("boards.id = ?", boardID).
		Take(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *repository) GetByID(boardID uint64) (*Board, error) {
	var board Board
	err := r.db.
		Preload("Owner").
		Preload("Members").
		Where("id = ?", boardID).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *repository) Create(board *Board, memberIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(board).Error; err != nil {
			return err
		}
		return insertMembers(tx, board.ID, memberIDs)
	})
}

// Update applies a partial title change and, when replaceMembers is set,
// swaps the entire member set inside one transaction so readers observe the
// old set or the new one, never a mix.
func (r *repository) Update(boardID uint64, title *string, memberIDs []uint64, replaceMembers bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if title != nil {
			err := tx.Model(&Board{}).
				Where("id = ?", boardID).
				Updates(map[string]interface{}{
					"title":      *title,
					"updated_at": time.Now().UTC(),
				}).Error
			if err != nil {
				return err
			}
		}
		if replaceMembers {
			if err := tx.Exec("DELETE FROM board_members WHERE board_id = ?", boardID).Error; err != nil {
				return err
			}
			if err := insertMembers(tx, boardID, memberIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete cascades board -> tasks -> comments atomically; a partial cascade
// would orphan rows.
func (r *repository) Delete(boardID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM comments WHERE task_id IN (SELECT id FROM tasks WHERE board_id = ?)", boardID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tasks WHERE board_id = ?", boardID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM board_members WHERE board_id = ?", boardID).Error; err != nil {
			return err
		}
		return tx.Delete(&Board{}, boardID).Error
	})
}

func insertMembers(tx *gorm.DB, boardID uint64, memberIDs []uint64) error {
	for _, userID := range memberIDs {
		if err := tx.Exec("INSERT INTO board_members (board_id, user_id) VALUES (?, ?)", boardID, userID).Error; err != nil {
			return err
		}
	}
	return nil
}
