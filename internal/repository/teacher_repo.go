package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/models"
)

// TeacherRepository handles persistence for the staff roster.
type TeacherRepository interface {
	List(ctx context.Context, scope Scope) ([]models.Teacher, error)
	FindByID(ctx context.Context, id uint) (models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, scope Scope) (int64, error)
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository constructs a repository backed by GORM.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) List(ctx context.Context, scope Scope) ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := scopeByCampus(r.db.WithContext(ctx), scope).
		Order("name ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherRepository) FindByID(ctx context.Context, id uint) (models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, id).Error; err != nil {
		return models.Teacher{}, err
	}
	return teacher, nil
}

func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Teacher{}, id).Error
}

func (r *teacherRepository) Count(ctx context.Context, scope Scope) (int64, error) {
	var count int64
	err := scopeByCampus(r.db.WithContext(ctx).Model(&models.Teacher{}), scope).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
