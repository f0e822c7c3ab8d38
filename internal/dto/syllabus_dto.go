package dto

import (
	"time"

	"github.com/idealconvent/campus-api/internal/models"
)

// SyllabusRequest carries a weekly lesson plan. TeacherName is never accepted
// from the client; it is resolved from the roster by TeacherID.
type SyllabusRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=255"`
	Subject      string `json:"subject" validate:"omitempty,max=255"`
	Code         string `json:"code" validate:"omitempty,max=64"`
	TeacherID    uint   `json:"teacher_id" validate:"required,gt=0"`
	StudentCount int    `json:"student_count" validate:"omitempty,gte=0"`
	Description  string `json:"description" validate:"omitempty,max=8192"`
	Campus       string `json:"campus" validate:"required,max=64"`
	Week         string `json:"week" validate:"omitempty,max=16"`
	ClassLevel   string `json:"class_level" validate:"required,max=16"`
}

// SyllabusResponse is the serialized representation of a lesson plan.
type SyllabusResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject,omitempty"`
	Code         string    `json:"code,omitempty"`
	TeacherID    uint      `json:"teacher_id"`
	TeacherName  string    `json:"teacher_name"`
	StudentCount int       `json:"student_count"`
	Description  string    `json:"description,omitempty"`
	Campus       string    `json:"campus"`
	Week         string    `json:"week,omitempty"`
	ClassLevel   string    `json:"class_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSyllabusResponse converts a model into a DTO.
func NewSyllabusResponse(syllabus models.Syllabus) SyllabusResponse {
	return SyllabusResponse{
		ID:           syllabus.ID,
		Title:        syllabus.Title,
		Subject:      syllabus.Subject,
		Code:         syllabus.Code,
		TeacherID:    syllabus.TeacherID,
		TeacherName:  syllabus.TeacherName,
		StudentCount: syllabus.StudentCount,
		Description:  syllabus.Description,
		Campus:       string(syllabus.Campus),
		Week:         syllabus.Week,
		ClassLevel:   syllabus.ClassLevel,
		CreatedAt:    syllabus.CreatedAt,
		UpdatedAt:    syllabus.UpdatedAt,
	}
}

// NewSyllabusResponseSlice converts a slice of models into DTOs.
func NewSyllabusResponseSlice(syllabi []models.Syllabus) []SyllabusResponse {
	out := make([]SyllabusResponse, 0, len(syllabi))
	for _, syllabus := range syllabi {
		out = append(out, NewSyllabusResponse(syllabus))
	}
	return out
}
