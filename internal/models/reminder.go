package models

import "time"

// Reminder is a personal due-date note. IsNotified transitions false to true
// exactly once, when the notification sweep delivers the reminder, and never
// reverts. Reminders owned by admins are broadcast to non-admin roles during
// notification checks.
type Reminder struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	DueAt       time.Time `gorm:"index;not null" json:"due_at"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	IsNotified  bool      `gorm:"not null;default:false" json:"is_notified"`
	OwnerID     uint      `gorm:"index;not null" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
