package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

type reminderRepoStub struct {
	repository.ReminderRepository

	reminders []models.Reminder
	markErr   error
}

func (r *reminderRepoStub) ListVisibleTo(ctx context.Context, identity models.Identity) ([]models.Reminder, error) {
	var visible []models.Reminder
	for _, reminder := range r.reminders {
		if reminder.OwnerID == identity.ID || (!identity.IsAdmin() && reminder.OwnerID == 1) {
			visible = append(visible, reminder)
		}
	}
	return visible, nil
}

func (r *reminderRepoStub) MarkNotified(ctx context.Context, id uint) error {
	if r.markErr != nil {
		return r.markErr
	}
	for i := range r.reminders {
		if r.reminders[i].ID == id {
			r.reminders[i].IsNotified = true
		}
	}
	return nil
}

func newSweeper(t *testing.T, repo *reminderRepoStub) *ReminderSweeper {
	t.Helper()
	sweeper := NewReminderSweeper(repo, time.Second, zerolog.Nop())
	sweeper.now = fixedClock(t)
	return sweeper
}

func collectAlerts(alerts *[]dto.ReminderAlert) Notifier {
	return func(alert dto.ReminderAlert) error {
		*alerts = append(*alerts, alert)
		return nil
	}
}

func TestSweepDeliversDueRemindersExactlyOnce(t *testing.T) {
	due := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC).Add(-time.Hour)
	repo := &reminderRepoStub{reminders: []models.Reminder{
		{ID: 10, Title: "Collect fees", DueAt: due, OwnerID: 2},
	}}
	sweeper := newSweeper(t, repo)
	teacher := models.Identity{ID: 2, Role: models.RoleTeacher, Campus: models.CampusBrindabanpur}

	var alerts []dto.ReminderAlert
	require.NoError(t, sweeper.SweepOnce(context.Background(), teacher, collectAlerts(&alerts)))
	require.Len(t, alerts, 1)
	require.Equal(t, "Reminder: Collect fees", alerts[0].Message)
	require.Equal(t, "own", alerts[0].Audience)
	require.True(t, repo.reminders[0].IsNotified)

	require.NoError(t, sweeper.SweepOnce(context.Background(), teacher, collectAlerts(&alerts)))
	require.Len(t, alerts, 1)
}

func TestSweepSkipsCompletedFutureAndNotified(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	repo := &reminderRepoStub{reminders: []models.Reminder{
		{ID: 1, Title: "Done", DueAt: now.Add(-time.Hour), OwnerID: 2, IsCompleted: true},
		{ID: 2, Title: "Later", DueAt: now.Add(time.Hour), OwnerID: 2},
		{ID: 3, Title: "Seen", DueAt: now.Add(-time.Hour), OwnerID: 2, IsNotified: true},
	}}
	sweeper := newSweeper(t, repo)
	teacher := models.Identity{ID: 2, Role: models.RoleTeacher, Campus: models.CampusBrindabanpur}

	var alerts []dto.ReminderAlert
	require.NoError(t, sweeper.SweepOnce(context.Background(), teacher, collectAlerts(&alerts)))
	require.Empty(t, alerts)
}

func TestSweepBroadcastsAdminRemindersToOtherRoles(t *testing.T) {
	due := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	repo := &reminderRepoStub{reminders: []models.Reminder{
		{ID: 5, Title: "Fee deadline", DueAt: due, OwnerID: 1},
	}}
	sweeper := newSweeper(t, repo)
	accountant := models.Identity{ID: 3, Role: models.RoleAccountant, Campus: models.CampusJagadishpur}

	var alerts []dto.ReminderAlert
	require.NoError(t, sweeper.SweepOnce(context.Background(), accountant, collectAlerts(&alerts)))
	require.Len(t, alerts, 1)
	require.Equal(t, "[Admin Announcement]: Fee deadline", alerts[0].Message)
	require.Equal(t, "broadcast", alerts[0].Audience)
}

func TestSweepRetriesAfterPersistFailure(t *testing.T) {
	due := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	repo := &reminderRepoStub{
		reminders: []models.Reminder{{ID: 7, Title: "Audit", DueAt: due, OwnerID: 2}},
		markErr:   errors.New("disk full"),
	}
	sweeper := newSweeper(t, repo)
	teacher := models.Identity{ID: 2, Role: models.RoleTeacher, Campus: models.CampusBrindabanpur}

	var alerts []dto.ReminderAlert
	require.NoError(t, sweeper.SweepOnce(context.Background(), teacher, collectAlerts(&alerts)))
	require.Len(t, alerts, 1)
	require.False(t, repo.reminders[0].IsNotified)

	// flag was never persisted, so the next sweep redelivers
	repo.markErr = nil
	require.NoError(t, sweeper.SweepOnce(context.Background(), teacher, collectAlerts(&alerts)))
	require.Len(t, alerts, 2)
	require.True(t, repo.reminders[0].IsNotified)
}

func TestSweepStopsWhenSessionCloses(t *testing.T) {
	due := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	repo := &reminderRepoStub{reminders: []models.Reminder{
		{ID: 8, Title: "Gone", DueAt: due, OwnerID: 2},
	}}
	sweeper := newSweeper(t, repo)
	teacher := models.Identity{ID: 2, Role: models.RoleTeacher, Campus: models.CampusBrindabanpur}

	sessionClosed := errors.New("session closed")
	err := sweeper.SweepOnce(context.Background(), teacher, func(dto.ReminderAlert) error {
		return sessionClosed
	})
	require.ErrorIs(t, err, sessionClosed)
	require.False(t, repo.reminders[0].IsNotified)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	sweeper := newSweeper(t, &reminderRepoStub{})
	teacher := models.Identity{ID: 2, Role: models.RoleTeacher, Campus: models.CampusBrindabanpur}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sweeper.Run(ctx, teacher, func(dto.ReminderAlert) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
