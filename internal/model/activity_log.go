package model

import "time"

// ActivityLog records a board or post mutation. Rows are written
// asynchronously by the activity persist worker, never by request handlers.
type ActivityLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActorID    uint      `gorm:"not null;index" json:"actor_id"`
	Action     string    `gorm:"size:32;not null" json:"action"`
	Entity     string    `gorm:"size:32;not null" json:"entity"`
	EntityID   uint      `gorm:"not null" json:"entity_id"`
	OccurredAt time.Time `gorm:"not null" json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	EntityBoard = "board"
	EntityPost  = "post"
)
