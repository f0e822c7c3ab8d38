package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

// ErrSyllabusNotFound indicates the requested lesson plan does not exist.
var ErrSyllabusNotFound = errors.New("syllabus not found")

// ErrSyllabusTeacherUnknown indicates a lesson plan referencing a teacher
// that is not on the roster.
var ErrSyllabusTeacherUnknown = errors.New("syllabus teacher not on roster")

// SyllabusService exposes lesson plan CRUD. The teacher's display name is
// denormalized onto the plan whenever it is created or updated.
type SyllabusService interface {
	List(ctx context.Context, identity models.Identity) ([]dto.SyllabusResponse, error)
	Create(ctx context.Context, identity models.Identity, payload dto.SyllabusRequest) (dto.SyllabusResponse, error)
	Update(ctx context.Context, identity models.Identity, id uint, payload dto.SyllabusRequest) (dto.SyllabusResponse, error)
	Delete(ctx context.Context, identity models.Identity, id uint) error
}

type syllabusService struct {
	repo      repository.SyllabusRepository
	teachers  repository.TeacherRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSyllabusService constructs the syllabus service.
func NewSyllabusService(repo repository.SyllabusRepository, teachers repository.TeacherRepository, validate *validator.Validate, logger zerolog.Logger) SyllabusService {
	return &syllabusService{
		repo:      repo,
		teachers:  teachers,
		validator: validate,
		logger:    logger.With().Str("component", "syllabus_service").Logger(),
	}
}

func (s *syllabusService) List(ctx context.Context, identity models.Identity) ([]dto.SyllabusResponse, error) {
	syllabi, err := s.repo.List(ctx, repository.ScopeFor(identity))
	if err != nil {
		return nil, err
	}
	return dto.NewSyllabusResponseSlice(syllabi), nil
}

func (s *syllabusService) Create(ctx context.Context, identity models.Identity, payload dto.SyllabusRequest) (dto.SyllabusResponse, error) {
	syllabus, err := s.buildSyllabus(ctx, identity, payload)
	if err != nil {
		return dto.SyllabusResponse{}, err
	}
	if err := s.repo.Create(ctx, &syllabus); err != nil {
		return dto.SyllabusResponse{}, err
	}

	s.logger.Info().Uint("syllabus_id", syllabus.ID).Str("class_level", syllabus.ClassLevel).Msg("syllabus created")
	return dto.NewSyllabusResponse(syllabus), nil
}

func (s *syllabusService) Update(ctx context.Context, identity models.Identity, id uint, payload dto.SyllabusRequest) (dto.SyllabusResponse, error) {
	existing, err := s.findScoped(ctx, identity, id)
	if err != nil {
		return dto.SyllabusResponse{}, err
	}

	syllabus, err := s.buildSyllabus(ctx, identity, payload)
	if err != nil {
		return dto.SyllabusResponse{}, err
	}
	syllabus.ID = existing.ID
	syllabus.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, &syllabus); err != nil {
		return dto.SyllabusResponse{}, err
	}
	return dto.NewSyllabusResponse(syllabus), nil
}

func (s *syllabusService) Delete(ctx context.Context, identity models.Identity, id uint) error {
	if _, err := s.findScoped(ctx, identity, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *syllabusService) buildSyllabus(ctx context.Context, identity models.Identity, payload dto.SyllabusRequest) (models.Syllabus, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Syllabus{}, err
	}
	campus := models.Campus(payload.Campus)
	if !campus.Valid() {
		return models.Syllabus{}, fmt.Errorf("%w: %s", ErrUnknownCampus, payload.Campus)
	}
	if !identity.IsAdmin() && campus != identity.Campus {
		return models.Syllabus{}, ErrCampusForbidden
	}
	if !models.ValidEnum(payload.ClassLevel, models.ClassLevels) {
		return models.Syllabus{}, fmt.Errorf("invalid class level: %s", payload.ClassLevel)
	}

	teacher, err := s.teachers.FindByID(ctx, payload.TeacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Syllabus{}, ErrSyllabusTeacherUnknown
		}
		return models.Syllabus{}, err
	}

	return models.Syllabus{
		Title:        payload.Title,
		Subject:      payload.Subject,
		Code:         payload.Code,
		TeacherID:    teacher.ID,
		TeacherName:  teacher.Name,
		StudentCount: payload.StudentCount,
		Description:  payload.Description,
		Campus:       campus,
		Week:         payload.Week,
		ClassLevel:   payload.ClassLevel,
	}, nil
}

func (s *syllabusService) findScoped(ctx context.Context, identity models.Identity, id uint) (models.Syllabus, error) {
	syllabus, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Syllabus{}, ErrSyllabusNotFound
		}
		return models.Syllabus{}, err
	}
	if !identity.IsAdmin() && syllabus.Campus != identity.Campus {
		return models.Syllabus{}, ErrCampusForbidden
	}
	return syllabus, nil
}
