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

// ErrStudentNotFound indicates the requested student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// ErrCampusForbidden indicates a non-admin touching another campus's records.
var ErrCampusForbidden = errors.New("record belongs to another campus")

// StudentService exposes admission record CRUD. Registration numbers are
// allocated on create and never change afterwards, even when the record is
// edited.
type StudentService interface {
	List(ctx context.Context, identity models.Identity) ([]dto.StudentResponse, error)
	Get(ctx context.Context, identity models.Identity, id uint) (dto.StudentResponse, error)
	Create(ctx context.Context, identity models.Identity, payload dto.StudentRequest) (dto.StudentResponse, error)
	Update(ctx context.Context, identity models.Identity, id uint, payload dto.StudentRequest) (dto.StudentResponse, error)
	Delete(ctx context.Context, identity models.Identity, id uint) error
}

type studentService struct {
	repo      repository.StudentRepository
	allocator *RegistrationAllocator
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, allocator *RegistrationAllocator, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		allocator: allocator,
		validator: validate,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context, identity models.Identity) ([]dto.StudentResponse, error) {
	students, err := s.repo.List(ctx, repository.ScopeFor(identity))
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponseSlice(students), nil
}

func (s *studentService) Get(ctx context.Context, identity models.Identity, id uint) (dto.StudentResponse, error) {
	student, err := s.findScoped(ctx, identity, id)
	if err != nil {
		return dto.StudentResponse{}, err
	}
	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Create(ctx context.Context, identity models.Identity, payload dto.StudentRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}
	campus := models.Campus(payload.Campus)
	if !campus.Valid() {
		return dto.StudentResponse{}, fmt.Errorf("%w: %s", ErrUnknownCampus, payload.Campus)
	}
	if !identity.IsAdmin() && campus != identity.Campus {
		return dto.StudentResponse{}, ErrCampusForbidden
	}

	applyAdmissionDefaults(&payload)

	number, err := s.allocator.NewBatch().Next(ctx, campus)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	student := studentFromRequest(payload, number)
	if err := s.repo.Create(ctx, &student); err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().
		Uint("student_id", student.ID).
		Str("registration_number", student.RegistrationNumber).
		Msg("student admitted")

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Update(ctx context.Context, identity models.Identity, id uint, payload dto.StudentRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}
	campus := models.Campus(payload.Campus)
	if !campus.Valid() {
		return dto.StudentResponse{}, fmt.Errorf("%w: %s", ErrUnknownCampus, payload.Campus)
	}
	if !identity.IsAdmin() && campus != identity.Campus {
		return dto.StudentResponse{}, ErrCampusForbidden
	}

	existing, err := s.findScoped(ctx, identity, id)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	applyAdmissionDefaults(&payload)

	// the registration number is immutable after admission
	updated := studentFromRequest(payload, existing.RegistrationNumber)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, &updated); err != nil {
		return dto.StudentResponse{}, err
	}
	return dto.NewStudentResponse(updated), nil
}

func (s *studentService) Delete(ctx context.Context, identity models.Identity, id uint) error {
	if _, err := s.findScoped(ctx, identity, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *studentService) findScoped(ctx context.Context, identity models.Identity, id uint) (models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, err
	}
	if !identity.IsAdmin() && student.Campus != identity.Campus {
		return models.Student{}, ErrCampusForbidden
	}
	return student, nil
}

// applyAdmissionDefaults fills the blank optional fields the admission forms
// leave implicit.
func applyAdmissionDefaults(payload *dto.StudentRequest) {
	if payload.Nationality == "" {
		payload.Nationality = "Indian"
	}
	if payload.Gender == "" {
		payload.Gender = "Male"
	}
	if payload.PaymentMode == "" {
		payload.PaymentMode = "Cash"
	}
	if payload.PhysicalDeformities == "" {
		payload.PhysicalDeformities = "None"
	}
}
