package models

import "time"

// Announcement is a notice scoped to one campus or to all campuses.
// Campus may be CampusAll, which makes the notice visible everywhere.
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Date      string    `gorm:"size:10" json:"date"`
	Author    string    `gorm:"size:255" json:"author"`
	Campus    Campus    `gorm:"size:64;index;not null" json:"campus"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
