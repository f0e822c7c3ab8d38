package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

type countingStudentRepo struct {
	repository.StudentRepository
	count int64
	calls int
}

func (c *countingStudentRepo) Count(ctx context.Context, scope repository.Scope) (int64, error) {
	c.calls++
	return c.count, nil
}

type countingTeacherRepo struct {
	repository.TeacherRepository
	count int64
}

func (c *countingTeacherRepo) Count(ctx context.Context, scope repository.Scope) (int64, error) {
	return c.count, nil
}

type countingSyllabusRepo struct {
	repository.SyllabusRepository
	count int64
}

func (c *countingSyllabusRepo) Count(ctx context.Context, scope repository.Scope) (int64, error) {
	return c.count, nil
}

type countingAnnouncementRepo struct {
	repository.AnnouncementRepository
	count int64
}

func (c *countingAnnouncementRepo) Count(ctx context.Context, scope repository.Scope) (int64, error) {
	return c.count, nil
}

func TestDashboardStatsCachedPerRoleAndCampus(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	cache := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer cache.Close()

	students := &countingStudentRepo{count: 42}
	svc := NewDashboardService(
		students,
		&countingTeacherRepo{count: 7},
		&countingSyllabusRepo{count: 12},
		&countingAnnouncementRepo{count: 3},
		cache,
		time.Minute,
		zerolog.Nop(),
	)

	teacher := models.Identity{ID: 2, Role: models.RoleTeacher, Campus: models.CampusBrindabanpur}

	first, err := svc.Stats(context.Background(), teacher)
	require.NoError(t, err)
	require.Equal(t, int64(42), first.StudentCount)
	require.Equal(t, int64(7), first.TeacherCount)
	require.Equal(t, "Brindabanpur", first.Campus)
	require.Equal(t, 1, students.calls)

	second, err := svc.Stats(context.Background(), teacher)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, students.calls)

	// a different scope never reads another scope's cache entry
	admin := models.Identity{ID: 1, Role: models.RoleAdmin, Campus: models.CampusBrindabanpur}
	stats, err := svc.Stats(context.Background(), admin)
	require.NoError(t, err)
	require.Equal(t, "All", stats.Campus)
	require.Equal(t, 2, students.calls)
}

func TestDashboardStatsWithoutCache(t *testing.T) {
	students := &countingStudentRepo{count: 5}
	svc := NewDashboardService(
		students,
		&countingTeacherRepo{},
		&countingSyllabusRepo{},
		&countingAnnouncementRepo{},
		nil,
		time.Minute,
		zerolog.Nop(),
	)

	identity := models.Identity{ID: 3, Role: models.RoleAccountant, Campus: models.CampusJagadishpur}

	_, err := svc.Stats(context.Background(), identity)
	require.NoError(t, err)
	_, err = svc.Stats(context.Background(), identity)
	require.NoError(t, err)
	require.Equal(t, 2, students.calls)
}
