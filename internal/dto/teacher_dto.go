package dto

import (
	"time"

	"github.com/idealconvent/campus-api/internal/models"
)

// TeacherRequest carries staff roster data for create and update.
type TeacherRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=255"`
	Subject       string  `json:"subject" validate:"omitempty,max=255"`
	Email         string  `json:"email" validate:"required,email,max=255"`
	Phone         string  `json:"phone" validate:"omitempty,max=32"`
	AvatarURL     string  `json:"avatar_url" validate:"omitempty,url,max=512"`
	Campus        string  `json:"campus" validate:"required,max=64"`
	Salary        float64 `json:"salary" validate:"omitempty,gte=0"`
	JoiningDate   string  `json:"joining_date" validate:"omitempty,datetime=2006-01-02"`
	Qualification string  `json:"qualification" validate:"omitempty,max=255"`
	Address       string  `json:"address" validate:"omitempty,max=512"`
}

// TeacherResponse is the serialized representation of a roster entry.
type TeacherResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Subject       string    `json:"subject,omitempty"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	Campus        string    `json:"campus"`
	Salary        float64   `json:"salary"`
	JoiningDate   string    `json:"joining_date,omitempty"`
	Qualification string    `json:"qualification,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewTeacherResponse converts a model into a DTO.
func NewTeacherResponse(teacher models.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:            teacher.ID,
		Name:          teacher.Name,
		Subject:       teacher.Subject,
		Email:         teacher.Email,
		Phone:         teacher.Phone,
		AvatarURL:     teacher.AvatarURL,
		Campus:        string(teacher.Campus),
		Salary:        teacher.Salary,
		JoiningDate:   teacher.JoiningDate,
		Qualification: teacher.Qualification,
		Address:       teacher.Address,
		CreatedAt:     teacher.CreatedAt,
		UpdatedAt:     teacher.UpdatedAt,
	}
}

// NewTeacherResponseSlice converts a slice of models into DTOs.
func NewTeacherResponseSlice(teachers []models.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		out = append(out, NewTeacherResponse(teacher))
	}
	return out
}
