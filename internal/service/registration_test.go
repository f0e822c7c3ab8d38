package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

type studentRepoStub struct {
	repository.StudentRepository

	numbers []string
	created []models.Student
	scans   int
}

func (s *studentRepoStub) ListRegistrationNumbers(ctx context.Context, prefix string) ([]string, error) {
	s.scans++
	var matched []string
	for _, number := range s.numbers {
		if len(number) >= len(prefix) && number[:len(prefix)] == prefix {
			matched = append(matched, number)
		}
	}
	return matched, nil
}

func (s *studentRepoStub) CreateBatch(ctx context.Context, students []models.Student) error {
	s.created = append(s.created, students...)
	for _, student := range students {
		s.numbers = append(s.numbers, student.RegistrationNumber)
	}
	return nil
}

func (s *studentRepoStub) Create(ctx context.Context, student *models.Student) error {
	student.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *student)
	s.numbers = append(s.numbers, student.RegistrationNumber)
	return nil
}

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	at, err := time.Parse("2006-01-02", "2024-06-15")
	require.NoError(t, err)
	return func() time.Time { return at }
}

func TestRegistrationBatchSequencesPerCampus(t *testing.T) {
	repo := &studentRepoStub{numbers: []string{"ICBR24001", "ICBR24007", "ICJG24002"}}
	allocator := NewRegistrationAllocator(repo)
	allocator.now = fixedClock(t)

	batch := allocator.NewBatch()

	first, err := batch.Next(context.Background(), models.CampusBrindabanpur)
	require.NoError(t, err)
	require.Equal(t, "ICBR24008", first)

	second, err := batch.Next(context.Background(), models.CampusBrindabanpur)
	require.NoError(t, err)
	require.Equal(t, "ICBR24009", second)

	other, err := batch.Next(context.Background(), models.CampusJagadishpur)
	require.NoError(t, err)
	require.Equal(t, "ICJG24003", other)

	// one store scan per campus, the rest served from the in-memory cursor
	require.Equal(t, 2, repo.scans)
}

func TestRegistrationBatchStartsAtOne(t *testing.T) {
	repo := &studentRepoStub{}
	allocator := NewRegistrationAllocator(repo)
	allocator.now = fixedClock(t)

	number, err := allocator.NewBatch().Next(context.Background(), models.CampusBarogram)
	require.NoError(t, err)
	require.Equal(t, "ICBO24001", number)
}

func TestRegistrationBatchRejectsUnknownCampus(t *testing.T) {
	allocator := NewRegistrationAllocator(&studentRepoStub{})
	allocator.now = fixedClock(t)

	_, err := allocator.NewBatch().Next(context.Background(), models.Campus("Atlantis"))
	require.ErrorIs(t, err, ErrUnknownCampus)
}

func TestRegistrationBatchIgnoresMalformedSuffixes(t *testing.T) {
	repo := &studentRepoStub{numbers: []string{"ICBR24003", "ICBR24XYZ", "ICBR24"}}
	allocator := NewRegistrationAllocator(repo)
	allocator.now = fixedClock(t)

	number, err := allocator.NewBatch().Next(context.Background(), models.CampusBrindabanpur)
	require.NoError(t, err)
	require.Equal(t, "ICBR24004", number)
}
