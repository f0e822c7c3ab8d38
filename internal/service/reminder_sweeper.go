package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/observability"
	"github.com/idealconvent/campus-api/internal/repository"
)

// Notifier delivers one alert to a signed-in session. A returned error means
// the session is gone and the sweep loop must stop.
type Notifier func(alert dto.ReminderAlert) error

// ReminderSweeper runs the per-session notification loop: one sweep
// immediately on start, then one per tick. A sweep delivers every due
// reminder visible to the session and persists the notified flag after each
// delivery, before moving to the next reminder.
//
// Delivery is at-most-once within a sweep. If persisting the flag fails the
// reminder is delivered again on the next tick, so across failures the
// guarantee degrades to at-least-once.
type ReminderSweeper struct {
	reminders repository.ReminderRepository
	interval  time.Duration
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewReminderSweeper constructs the sweeper.
func NewReminderSweeper(reminders repository.ReminderRepository, interval time.Duration, logger zerolog.Logger) *ReminderSweeper {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ReminderSweeper{
		reminders: reminders,
		interval:  interval,
		logger:    logger.With().Str("component", "reminder_sweeper").Logger(),
		tracer:    otel.Tracer("github.com/idealconvent/campus-api/internal/service/reminder_sweeper"),
		now:       time.Now,
	}
}

// Run blocks until the context is cancelled or the notifier reports the
// session closed. One goroutine per session; the ticker is always released.
func (s *ReminderSweeper) Run(ctx context.Context, identity models.Identity, notify Notifier) error {
	if err := s.SweepOnce(ctx, identity, notify); err != nil {
		return err
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.SweepOnce(ctx, identity, notify); err != nil {
				return err
			}
		}
	}
}

// SweepOnce performs a single pass. Store read failures are logged and
// retried on the next tick; only delivery failures abort the session.
func (s *ReminderSweeper) SweepOnce(ctx context.Context, identity models.Identity, notify Notifier) error {
	ctx, span := s.tracer.Start(ctx, "reminders.sweep", trace.WithAttributes(
		attribute.Int64("user.id", int64(identity.ID)),
		attribute.String("user.role", string(identity.Role)),
	))
	defer span.End()

	reminders, err := s.reminders.ListVisibleTo(ctx, identity)
	if err != nil {
		s.logger.Warn().Err(err).Uint("user_id", identity.ID).Msg("reminder sweep read failed")
		return nil
	}

	now := s.now()
	for _, reminder := range reminders {
		if reminder.IsCompleted || reminder.IsNotified || reminder.DueAt.After(now) {
			continue
		}

		audience := "own"
		message := "Reminder: " + reminder.Title
		if reminder.OwnerID != identity.ID {
			audience = "broadcast"
			message = "[Admin Announcement]: " + reminder.Title
		}

		alert := dto.ReminderAlert{
			ReminderID: reminder.ID,
			Title:      reminder.Title,
			Message:    message,
			DueAt:      reminder.DueAt,
			OwnerID:    reminder.OwnerID,
			Audience:   audience,
		}
		if err := notify(alert); err != nil {
			return err
		}

		if err := s.reminders.MarkNotified(ctx, reminder.ID); err != nil {
			// delivered but not recorded; the next sweep will resend it
			s.logger.Error().Err(err).Uint("reminder_id", reminder.ID).Msg("failed to persist notified flag")
			continue
		}
		observability.RemindersNotified().WithLabelValues(audience).Inc()
	}

	return nil
}
