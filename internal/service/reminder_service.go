package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

// ErrReminderNotFound indicates the requested reminder does not exist.
var ErrReminderNotFound = errors.New("reminder not found")

// ErrReminderForbidden indicates the caller does not own the reminder.
var ErrReminderForbidden = errors.New("reminder belongs to another user")

// ReminderService exposes personal reminder CRUD. Listing and editing are
// always owner-scoped; the broadcast visibility rule applies only to the
// notification sweep, never to CRUD.
type ReminderService interface {
	List(ctx context.Context, identity models.Identity) ([]dto.ReminderResponse, error)
	Create(ctx context.Context, identity models.Identity, payload dto.ReminderCreateRequest) (dto.ReminderResponse, error)
	Update(ctx context.Context, identity models.Identity, id uint, payload dto.ReminderUpdateRequest) (dto.ReminderResponse, error)
	Delete(ctx context.Context, identity models.Identity, id uint) error
}

type reminderService struct {
	repo      repository.ReminderRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewReminderService constructs the reminder service.
func NewReminderService(repo repository.ReminderRepository, validate *validator.Validate, logger zerolog.Logger) ReminderService {
	return &reminderService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "reminder_service").Logger(),
	}
}

func (s *reminderService) List(ctx context.Context, identity models.Identity) ([]dto.ReminderResponse, error) {
	reminders, err := s.repo.ListByOwner(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewReminderResponseSlice(reminders), nil
}

func (s *reminderService) Create(ctx context.Context, identity models.Identity, payload dto.ReminderCreateRequest) (dto.ReminderResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ReminderResponse{}, err
	}

	reminder := models.Reminder{
		Title:   payload.Title,
		DueAt:   payload.DueAt,
		OwnerID: identity.ID,
	}
	if err := s.repo.Create(ctx, &reminder); err != nil {
		return dto.ReminderResponse{}, err
	}

	s.logger.Info().Uint("reminder_id", reminder.ID).Uint("owner_id", identity.ID).Msg("reminder created")
	return dto.NewReminderResponse(reminder), nil
}

func (s *reminderService) Update(ctx context.Context, identity models.Identity, id uint, payload dto.ReminderUpdateRequest) (dto.ReminderResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ReminderResponse{}, err
	}

	reminder, err := s.findOwned(ctx, identity, id)
	if err != nil {
		return dto.ReminderResponse{}, err
	}

	if payload.Title != nil {
		reminder.Title = *payload.Title
	}
	if payload.DueAt != nil {
		reminder.DueAt = *payload.DueAt
	}
	if payload.IsCompleted != nil {
		reminder.IsCompleted = *payload.IsCompleted
	}

	if err := s.repo.Update(ctx, &reminder); err != nil {
		return dto.ReminderResponse{}, err
	}
	return dto.NewReminderResponse(reminder), nil
}

func (s *reminderService) Delete(ctx context.Context, identity models.Identity, id uint) error {
	if _, err := s.findOwned(ctx, identity, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *reminderService) findOwned(ctx context.Context, identity models.Identity, id uint) (models.Reminder, error) {
	reminder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reminder{}, ErrReminderNotFound
		}
		return models.Reminder{}, err
	}
	if reminder.OwnerID != identity.ID {
		return models.Reminder{}, ErrReminderForbidden
	}
	return reminder, nil
}
