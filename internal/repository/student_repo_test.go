package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idealconvent/campus-api/internal/models"
)

func seedStudent(t *testing.T, repo StudentRepository, number string, campus models.Campus) models.Student {
	t.Helper()
	student := models.Student{
		RegistrationNumber: number,
		Name:               "Student " + number,
		Campus:             campus,
		AppliedForClass:    "Nursery",
		Session:            "2024",
	}
	require.NoError(t, repo.Create(context.Background(), &student))
	return student
}

func TestStudentRepositoryScopedList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	seedStudent(t, repo, "ICBR24001", models.CampusBrindabanpur)
	seedStudent(t, repo, "ICJG24001", models.CampusJagadishpur)

	adminScope := Scope{Role: models.RoleAdmin}
	all, err := repo.List(context.Background(), adminScope)
	require.NoError(t, err)
	require.Len(t, all, 2)

	teacherScope := Scope{Role: models.RoleTeacher, Campus: models.CampusJagadishpur}
	scoped, err := repo.List(context.Background(), teacherScope)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	require.Equal(t, "ICJG24001", scoped[0].RegistrationNumber)

	count, err := repo.Count(context.Background(), teacherScope)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestStudentRepositoryListRegistrationNumbers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	seedStudent(t, repo, "ICBR24001", models.CampusBrindabanpur)
	seedStudent(t, repo, "ICBR24005", models.CampusBrindabanpur)
	seedStudent(t, repo, "ICBR23009", models.CampusBrindabanpur)
	seedStudent(t, repo, "ICJG24002", models.CampusJagadishpur)

	numbers, err := repo.ListRegistrationNumbers(context.Background(), "ICBR24")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"ICBR24001", "ICBR24005"}, numbers)
}

func TestStudentRepositoryCreateBatchIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	seedStudent(t, repo, "ICBR24001", models.CampusBrindabanpur)

	// second row collides on the unique registration number, so the whole
	// batch must roll back
	batch := []models.Student{
		{RegistrationNumber: "ICBR24002", Name: "A", Campus: models.CampusBrindabanpur},
		{RegistrationNumber: "ICBR24001", Name: "B", Campus: models.CampusBrindabanpur},
	}
	err := repo.CreateBatch(context.Background(), batch)
	require.Error(t, err)

	count, err := repo.Count(context.Background(), Scope{Role: models.RoleAdmin})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestStudentRepositoryUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)

	student := seedStudent(t, repo, "ICBR24001", models.CampusBrindabanpur)

	student.Name = "Renamed"
	require.NoError(t, repo.Update(context.Background(), &student))

	fetched, err := repo.FindByID(context.Background(), student.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", fetched.Name)

	require.NoError(t, repo.Delete(context.Background(), student.ID))
	_, err = repo.FindByID(context.Background(), student.ID)
	require.Error(t, err)
}
