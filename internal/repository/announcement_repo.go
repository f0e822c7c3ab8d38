package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/models"
)

// AnnouncementRepository handles persistence for campus notices.
type AnnouncementRepository interface {
	List(ctx context.Context, scope Scope) ([]models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Count(ctx context.Context, scope Scope) (int64, error)
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository constructs a repository backed by GORM.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) List(ctx context.Context, scope Scope) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := scopeByCampusOrAll(r.db.WithContext(ctx), scope).
		Order("created_at DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) Count(ctx context.Context, scope Scope) (int64, error) {
	var count int64
	err := scopeByCampusOrAll(r.db.WithContext(ctx).Model(&models.Announcement{}), scope).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
