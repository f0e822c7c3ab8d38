package models

import "time"

// Teacher is a staff roster entry.
type Teacher struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Subject       string    `gorm:"size:255" json:"subject"`
	Email         string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone         string    `gorm:"size:32" json:"phone"`
	AvatarURL     string    `gorm:"size:512" json:"avatar_url,omitempty"`
	Campus        Campus    `gorm:"size:64;index;not null" json:"campus"`
	Salary        float64   `json:"salary"`
	JoiningDate   string    `gorm:"size:10" json:"joining_date"`
	Qualification string    `gorm:"size:255" json:"qualification"`
	Address       string    `gorm:"size:512" json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
