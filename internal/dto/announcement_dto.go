package dto

import (
	"time"

	"github.com/idealconvent/campus-api/internal/models"
)

// AnnouncementCreateRequest publishes a notice. Campus "All" targets every
// campus. When IsReminder is set a personal reminder is scheduled for the
// author shortly after publication.
type AnnouncementCreateRequest struct {
	Title      string `json:"title" validate:"required,min=2,max=255"`
	Content    string `json:"content" validate:"required,min=1,max=8192"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Campus     string `json:"campus" validate:"required,max=64"`
	IsReminder bool   `json:"is_reminder"`
}

// AnnouncementResponse is the serialized representation of a notice.
type AnnouncementResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      string    `json:"date,omitempty"`
	Author    string    `json:"author"`
	Campus    string    `json:"campus"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAnnouncementResponse converts a model into a DTO.
func NewAnnouncementResponse(announcement models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        announcement.ID,
		Title:     announcement.Title,
		Content:   announcement.Content,
		Date:      announcement.Date,
		Author:    announcement.Author,
		Campus:    string(announcement.Campus),
		CreatedAt: announcement.CreatedAt,
	}
}

// NewAnnouncementResponseSlice converts a slice of models into DTOs.
func NewAnnouncementResponseSlice(announcements []models.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(announcements))
	for _, announcement := range announcements {
		out = append(out, NewAnnouncementResponse(announcement))
	}
	return out
}
