package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"boardhub/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	return nil
}

// GetByID returns soft-deleted posts too, matching board lookups.
func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) Update(post *model.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) MarkDeleted(id uint) error {
	if err := r.db.Model(&model.Post{}).Where("id = ?", id).
		Update("is_deleted", true).Error; err != nil {
		return fmt.Errorf("soft-delete post failed: %w", err)
	}
	return nil
}

// ListAccessible returns posts of the given board when the board is owned
// by the caller or public, in insertion (id) order.
func (r *PostRepository) ListAccessible(boardID, callerID uint, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Model(&model.Post{}).
		Joins("JOIN boards ON boards.id = posts.board_id").
		Where("posts.board_id = ?", boardID).
		Where("boards.creator_id = ? OR boards.is_public = ?", callerID, true).
		Order("posts.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list accessible posts failed: %w", err)
	}
	return posts, nil
}
