package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/models"
)

// StudentRepository handles persistence for admission records.
type StudentRepository interface {
	List(ctx context.Context, scope Scope) ([]models.Student, error)
	FindByID(ctx context.Context, id uint) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	CreateBatch(ctx context.Context, students []models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
	ListRegistrationNumbers(ctx context.Context, prefix string) ([]string, error)
	Count(ctx context.Context, scope Scope) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a repository backed by GORM.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context, scope Scope) ([]models.Student, error) {
	var students []models.Student
	err := scopeByCampus(r.db.WithContext(ctx), scope).
		Order("registration_number ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// CreateBatch inserts every student in a single transaction; either all rows
// are committed or none are.
func (r *studentRepository) CreateBatch(ctx context.Context, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&students).Error
	})
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Student{}, id).Error
}

// ListRegistrationNumbers returns every registration number beginning with
// prefix, e.g. "ICBR24".
func (r *studentRepository) ListRegistrationNumbers(ctx context.Context, prefix string) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("registration_number LIKE ?", prefix+"%").
		Pluck("registration_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *studentRepository) Count(ctx context.Context, scope Scope) (int64, error) {
	var count int64
	err := scopeByCampus(r.db.WithContext(ctx).Model(&models.Student{}), scope).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
