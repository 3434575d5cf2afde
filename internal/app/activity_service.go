package app

import (
	"fmt"

	"boardhub/internal/model"
	"boardhub/internal/repository"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// ActivityService reads back the log rows the persist worker wrote.
type ActivityService struct {
	activities *repository.ActivityRepository
}

func NewActivityService(activities *repository.ActivityRepository) *ActivityService {
	return &ActivityService{activities: activities}
}

// ListRecent returns the caller's newest activity entries, capped at limit.
func (s *ActivityService) ListRecent(actorID uint, limit int) ([]model.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	entries, err := s.activities.ListByActor(actorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent activity failed: %w", err)
	}
	return entries, nil
}
