package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

// ErrInvalidAnnouncementCampus indicates a campus that is neither a known
// location nor the "All" marker.
var ErrInvalidAnnouncementCampus = errors.New("invalid announcement campus")

// AnnouncementService exposes campus notice operations.
type AnnouncementService interface {
	List(ctx context.Context, identity models.Identity) ([]dto.AnnouncementResponse, error)
	Create(ctx context.Context, identity models.Identity, payload dto.AnnouncementCreateRequest) (dto.AnnouncementResponse, error)
}

type announcementService struct {
	repo      repository.AnnouncementRepository
	reminders repository.ReminderRepository
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAnnouncementService constructs the announcement service.
func NewAnnouncementService(repo repository.AnnouncementRepository, reminders repository.ReminderRepository, validate *validator.Validate, logger zerolog.Logger) AnnouncementService {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("p", "strong", "em", "a", "ul", "ol", "li", "br")
	policy.AllowAttrs("href", "title", "target").OnElements("a")
	return &announcementService{
		repo:      repo,
		reminders: reminders,
		validator: validate,
		policy:    policy,
		logger:    logger.With().Str("component", "announcement_service").Logger(),
		now:       time.Now,
	}
}

func (s *announcementService) List(ctx context.Context, identity models.Identity) ([]dto.AnnouncementResponse, error) {
	announcements, err := s.repo.List(ctx, repository.ScopeFor(identity))
	if err != nil {
		return nil, err
	}
	return dto.NewAnnouncementResponseSlice(announcements), nil
}

// Create publishes a notice. When the payload asks for a reminder, one is
// scheduled for the author a minute after publication so the notification
// sweep picks it up on an early tick.
func (s *announcementService) Create(ctx context.Context, identity models.Identity, payload dto.AnnouncementCreateRequest) (dto.AnnouncementResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AnnouncementResponse{}, err
	}

	campus := models.Campus(payload.Campus)
	if !campus.Valid() && campus != models.CampusAll {
		return dto.AnnouncementResponse{}, fmt.Errorf("%w: %s", ErrInvalidAnnouncementCampus, payload.Campus)
	}

	date := payload.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	announcement := models.Announcement{
		Title:   payload.Title,
		Content: s.policy.Sanitize(payload.Content),
		Date:    date,
		Author:  identity.Name,
		Campus:  campus,
	}
	if err := s.repo.Create(ctx, &announcement); err != nil {
		return dto.AnnouncementResponse{}, err
	}

	if payload.IsReminder {
		reminder := models.Reminder{
			Title:   payload.Title,
			DueAt:   s.now().Add(time.Minute),
			OwnerID: identity.ID,
		}
		if err := s.reminders.Create(ctx, &reminder); err != nil {
			return dto.AnnouncementResponse{}, fmt.Errorf("schedule announcement reminder: %w", err)
		}
		s.logger.Info().
			Uint("announcement_id", announcement.ID).
			Uint("reminder_id", reminder.ID).
			Msg("announcement reminder scheduled")
	}

	s.logger.Info().
		Uint("announcement_id", announcement.ID).
		Str("campus", string(campus)).
		Msg("announcement published")

	return dto.NewAnnouncementResponse(announcement), nil
}
