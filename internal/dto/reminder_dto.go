package dto

import (
	"time"

	"github.com/idealconvent/campus-api/internal/models"
)

// ReminderCreateRequest schedules a personal reminder.
type ReminderCreateRequest struct {
	Title string    `json:"title" validate:"required,min=1,max=255"`
	DueAt time.Time `json:"due_at" validate:"required"`
}

// ReminderUpdateRequest edits an existing reminder. Nil fields are left
// untouched. IsNotified is deliberately absent; only the notification sweep
// may set it.
type ReminderUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	DueAt       *time.Time `json:"due_at"`
	IsCompleted *bool      `json:"is_completed"`
}

// ReminderResponse is the serialized representation of a reminder.
type ReminderResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	DueAt       time.Time `json:"due_at"`
	IsCompleted bool      `json:"is_completed"`
	IsNotified  bool      `json:"is_notified"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReminderAlert is a single notification delivered over the event stream.
// Audience is "own" for the owner's reminders and "broadcast" for admin-owned
// reminders surfaced to other roles.
type ReminderAlert struct {
	ReminderID uint      `json:"reminder_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	DueAt      time.Time `json:"due_at"`
	OwnerID    uint      `json:"owner_id"`
	Audience   string    `json:"audience"`
}

// NewReminderResponse converts a model into a DTO.
func NewReminderResponse(reminder models.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:          reminder.ID,
		Title:       reminder.Title,
		DueAt:       reminder.DueAt,
		IsCompleted: reminder.IsCompleted,
		IsNotified:  reminder.IsNotified,
		OwnerID:     reminder.OwnerID,
		CreatedAt:   reminder.CreatedAt,
	}
}

// NewReminderResponseSlice converts a slice of models into DTOs.
func NewReminderResponseSlice(reminders []models.Reminder) []ReminderResponse {
	out := make([]ReminderResponse, 0, len(reminders))
	for _, reminder := range reminders {
		out = append(out, NewReminderResponse(reminder))
	}
	return out
}
