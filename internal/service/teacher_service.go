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

// ErrTeacherNotFound indicates the requested roster entry does not exist.
var ErrTeacherNotFound = errors.New("teacher not found")

// TeacherService exposes staff roster CRUD.
type TeacherService interface {
	List(ctx context.Context, identity models.Identity) ([]dto.TeacherResponse, error)
	Get(ctx context.Context, identity models.Identity, id uint) (dto.TeacherResponse, error)
	Create(ctx context.Context, identity models.Identity, payload dto.TeacherRequest) (dto.TeacherResponse, error)
	Update(ctx context.Context, identity models.Identity, id uint, payload dto.TeacherRequest) (dto.TeacherResponse, error)
	Delete(ctx context.Context, identity models.Identity, id uint) error
}

type teacherService struct {
	repo      repository.TeacherRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(repo repository.TeacherRepository, validate *validator.Validate, logger zerolog.Logger) TeacherService {
	return &teacherService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "teacher_service").Logger(),
	}
}

func (s *teacherService) List(ctx context.Context, identity models.Identity) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.List(ctx, repository.ScopeFor(identity))
	if err != nil {
		return nil, err
	}
	return dto.NewTeacherResponseSlice(teachers), nil
}

func (s *teacherService) Get(ctx context.Context, identity models.Identity, id uint) (dto.TeacherResponse, error) {
	teacher, err := s.findScoped(ctx, identity, id)
	if err != nil {
		return dto.TeacherResponse{}, err
	}
	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) Create(ctx context.Context, identity models.Identity, payload dto.TeacherRequest) (dto.TeacherResponse, error) {
	teacher, err := s.buildTeacher(identity, payload)
	if err != nil {
		return dto.TeacherResponse{}, err
	}
	if err := s.repo.Create(ctx, &teacher); err != nil {
		return dto.TeacherResponse{}, err
	}

	s.logger.Info().Uint("teacher_id", teacher.ID).Str("campus", string(teacher.Campus)).Msg("teacher added")
	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) Update(ctx context.Context, identity models.Identity, id uint, payload dto.TeacherRequest) (dto.TeacherResponse, error) {
	existing, err := s.findScoped(ctx, identity, id)
	if err != nil {
		return dto.TeacherResponse{}, err
	}

	teacher, err := s.buildTeacher(identity, payload)
	if err != nil {
		return dto.TeacherResponse{}, err
	}
	teacher.ID = existing.ID
	teacher.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, &teacher); err != nil {
		return dto.TeacherResponse{}, err
	}
	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) Delete(ctx context.Context, identity models.Identity, id uint) error {
	if _, err := s.findScoped(ctx, identity, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *teacherService) buildTeacher(identity models.Identity, payload dto.TeacherRequest) (models.Teacher, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Teacher{}, err
	}
	campus := models.Campus(payload.Campus)
	if !campus.Valid() {
		return models.Teacher{}, fmt.Errorf("%w: %s", ErrUnknownCampus, payload.Campus)
	}
	if !identity.IsAdmin() && campus != identity.Campus {
		return models.Teacher{}, ErrCampusForbidden
	}

	return models.Teacher{
		Name:          payload.Name,
		Subject:       payload.Subject,
		Email:         payload.Email,
		Phone:         payload.Phone,
		AvatarURL:     payload.AvatarURL,
		Campus:        campus,
		Salary:        payload.Salary,
		JoiningDate:   payload.JoiningDate,
		Qualification: payload.Qualification,
		Address:       payload.Address,
	}, nil
}

func (s *teacherService) findScoped(ctx context.Context, identity models.Identity, id uint) (models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Teacher{}, ErrTeacherNotFound
		}
		return models.Teacher{}, err
	}
	if !identity.IsAdmin() && teacher.Campus != identity.Campus {
		return models.Teacher{}, ErrCampusForbidden
	}
	return teacher, nil
}
