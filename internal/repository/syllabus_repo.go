package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/models"
)

// SyllabusRepository handles persistence for weekly lesson plans.
type SyllabusRepository interface {
	List(ctx context.Context, scope Scope) ([]models.Syllabus, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]models.Syllabus, error)
	FindByID(ctx context.Context, id uint) (models.Syllabus, error)
	Create(ctx context.Context, syllabus *models.Syllabus) error
	Update(ctx context.Context, syllabus *models.Syllabus) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, scope Scope) (int64, error)
}

type syllabusRepository struct {
	db *gorm.DB
}

// NewSyllabusRepository constructs a repository backed by GORM.
func NewSyllabusRepository(db *gorm.DB) SyllabusRepository {
	return &syllabusRepository{db: db}
}

func (r *syllabusRepository) List(ctx context.Context, scope Scope) ([]models.Syllabus, error) {
	var syllabi []models.Syllabus
	err := scopeByCampus(r.db.WithContext(ctx), scope).
		Order("class_level ASC, week ASC").
		Find(&syllabi).Error
	if err != nil {
		return nil, err
	}
	return syllabi, nil
}

func (r *syllabusRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]models.Syllabus, error) {
	var syllabi []models.Syllabus
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("week ASC").
		Find(&syllabi).Error
	if err != nil {
		return nil, err
	}
	return syllabi, nil
}

func (r *syllabusRepository) FindByID(ctx context.Context, id uint) (models.Syllabus, error) {
	var syllabus models.Syllabus
	if err := r.db.WithContext(ctx).First(&syllabus, id).Error; err != nil {
		return models.Syllabus{}, err
	}
	return syllabus, nil
}

func (r *syllabusRepository) Create(ctx context.Context, syllabus *models.Syllabus) error {
	return r.db.WithContext(ctx).Create(syllabus).Error
}

func (r *syllabusRepository) Update(ctx context.Context, syllabus *models.Syllabus) error {
	return r.db.WithContext(ctx).Save(syllabus).Error
}

func (r *syllabusRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Syllabus{}, id).Error
}

func (r *syllabusRepository) Count(ctx context.Context, scope Scope) (int64, error) {
	var count int64
	err := scopeByCampus(r.db.WithContext(ctx).Model(&models.Syllabus{}), scope).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
