package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/models"
)

// ReminderRepository handles persistence for personal reminders.
type ReminderRepository interface {
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Reminder, error)
	// ListVisibleTo applies the notification visibility rule: admins see only
	// their own reminders, other roles see their own plus every admin-owned
	// reminder (broadcast semantics).
	ListVisibleTo(ctx context.Context, identity models.Identity) ([]models.Reminder, error)
	FindByID(ctx context.Context, id uint) (models.Reminder, error)
	Create(ctx context.Context, reminder *models.Reminder) error
	Update(ctx context.Context, reminder *models.Reminder) error
	MarkNotified(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository constructs a repository backed by GORM.
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("due_at ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) ListVisibleTo(ctx context.Context, identity models.Identity) ([]models.Reminder, error) {
	query := r.db.WithContext(ctx).Order("due_at ASC")

	if identity.IsAdmin() {
		query = query.Where("owner_id = ?", identity.ID)
	} else {
		adminOwners := r.db.Model(&models.User{}).
			Select("id").
			Where("role = ?", models.RoleAdmin)
		query = query.Where("owner_id = ? OR owner_id IN (?)", identity.ID, adminOwners)
	}

	var reminders []models.Reminder
	if err := query.Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) FindByID(ctx context.Context, id uint) (models.Reminder, error) {
	var reminder models.Reminder
	if err := r.db.WithContext(ctx).First(&reminder, id).Error; err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) Update(ctx context.Context, reminder *models.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

// MarkNotified flips is_notified to true and never back.
func (r *reminderRepository) MarkNotified(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ?", id).
		Update("is_notified", true).Error
}

func (r *reminderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Reminder{}, id).Error
}
