package models

import "time"

// Syllabus is a weekly lesson plan for a class level. TeacherName is
// denormalized from the teacher roster when the plan is created or updated.
type Syllabus struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Subject      string    `gorm:"size:255" json:"subject"`
	Code         string    `gorm:"size:64" json:"code"`
	TeacherID    uint      `gorm:"index;not null" json:"teacher_id"`
	TeacherName  string    `gorm:"size:255" json:"teacher_name"`
	StudentCount int       `json:"student_count"`
	Description  string    `gorm:"type:text" json:"description"`
	Campus       Campus    `gorm:"size:64;index;not null" json:"campus"`
	Week         string    `gorm:"size:16" json:"week"`
	ClassLevel   string    `gorm:"size:16" json:"class_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
