package model

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Fullname     string    `gorm:"size:128;not null;index" json:"fullname"`
	Email        string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsLoggedIn   bool      `gorm:"not null;default:false" json:"is_logged_in"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
