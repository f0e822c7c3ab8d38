package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

// DashboardService aggregates scoped record counts, cached per role+campus.
type DashboardService interface {
	Stats(ctx context.Context, identity models.Identity) (dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	students      repository.StudentRepository
	teachers      repository.TeacherRepository
	syllabi       repository.SyllabusRepository
	announcements repository.AnnouncementRepository
	cache         *redis.Client
	ttl           time.Duration
	logger        zerolog.Logger
}

// NewDashboardService constructs the dashboard service. The cache client may
// be nil, in which case every call hits the store.
func NewDashboardService(
	students repository.StudentRepository,
	teachers repository.TeacherRepository,
	syllabi repository.SyllabusRepository,
	announcements repository.AnnouncementRepository,
	cache *redis.Client,
	ttl time.Duration,
	logger zerolog.Logger,
) DashboardService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &dashboardService{
		students:      students,
		teachers:      teachers,
		syllabi:       syllabi,
		announcements: announcements,
		cache:         cache,
		ttl:           ttl,
		logger:        logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) Stats(ctx context.Context, identity models.Identity) (dto.DashboardStatsResponse, error) {
	scope := repository.ScopeFor(identity)

	campusLabel := string(identity.Campus)
	if identity.IsAdmin() {
		campusLabel = string(models.CampusAll)
	}

	cacheKey := ""
	if s.cache != nil {
		cacheKey = fmt.Sprintf("dashboard:stats:v1:%s:%s", identity.Role, campusLabel)
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var response dto.DashboardStatsResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return response, nil
			}
		}
	}

	response := dto.DashboardStatsResponse{Campus: campusLabel}

	var err error
	if response.StudentCount, err = s.students.Count(ctx, scope); err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	if response.TeacherCount, err = s.teachers.Count(ctx, scope); err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	if response.SyllabusCount, err = s.syllabi.Count(ctx, scope); err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	if response.AnnouncementCount, err = s.announcements.Count(ctx, scope); err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	if cacheKey != "" {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache dashboard stats")
			}
		}
	}

	return response, nil
}
