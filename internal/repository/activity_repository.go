package repository

import (
	"fmt"

	"gorm.io/gorm"

	"boardhub/internal/model"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(entry *model.ActivityLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create activity log failed: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByActor(actorID uint, limit int) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	if err := r.db.Where("actor_id = ?", actorID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list activity by actor failed: %w", err)
	}
	return entries, nil
}
