package model

import "time"

// Post belongs to exactly one board and one author; both references are
// immutable after creation. CreatedAt is server-assigned.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null;index" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	BoardID   uint      `gorm:"not null;index" json:"board_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
