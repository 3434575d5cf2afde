package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"boardhub/internal/model"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(board *model.Board) error {
	if err := r.db.Create(board).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("create board failed: %w", err)
	}
	return nil
}

// GetByID returns soft-deleted boards too; deletion only flips a flag and
// never hides the row from id lookups.
func (r *BoardRepository) GetByID(id uint) (*model.Board, error) {
	var board model.Board
	if err := r.db.First(&board, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query board by id failed: %w", err)
	}
	return &board, nil
}

func (r *BoardRepository) GetByName(name string) (*model.Board, error) {
	var board model.Board
	if err := r.db.Where("name = ?", name).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query board by name failed: %w", err)
	}
	return &board, nil
}

func (r *BoardRepository) Update(board *model.Board) error {
	if err := r.db.Save(board).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("update board failed: %w", err)
	}
	return nil
}

func (r *BoardRepository) MarkDeleted(id uint) error {
	if err := r.db.Model(&model.Board{}).Where("id = ?", id).
		Update("is_deleted", true).Error; err != nil {
		return fmt.Errorf("soft-delete board failed: %w", err)
	}
	return nil
}

// ListAccessible returns boards owned by the caller or public, ranked by
// descending post count. A LEFT JOIN keeps boards with no posts in the
// result (they rank last); ties break by ascending board id.
func (r *BoardRepository) ListAccessible(callerID uint, offset, limit int) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.Model(&model.Board{}).
		Select("boards.*, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN posts ON posts.board_id = boards.id").
		Where("boards.creator_id = ? OR boards.is_public = ?", callerID, true).
		Group("boards.id").
		Order("post_count DESC, boards.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&boards).Error
	if err != nil {
		return nil, fmt.Errorf("list accessible boards failed: %w", err)
	}
	return boards, nil
}
