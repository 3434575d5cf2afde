package model

import "time"

// Board is soft-deleted only: IsDeleted flips once and the row stays
// readable by id. CreatorID never changes after creation.
//
// IsPublic carries no column default on purpose: gorm omits zero-valued
// fields with a default tag from inserts, which would turn every private
// board public. The create handler owns the defaulting instead.
type Board struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:128;not null;uniqueIndex" json:"name"`
	IsPublic  bool   `gorm:"not null" json:"is_public"`
	IsDeleted bool   `gorm:"not null;default:false" json:"is_deleted"`
	CreatorID uint   `gorm:"not null;index" json:"creator_id"`

	// Populated only by the ranked accessible-boards listing.
	PostCount int64 `gorm:"->;-:migration" json:"post_count,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
