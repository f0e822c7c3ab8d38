package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/idealconvent/campus-api/internal/models"
)

func seedUsersForReminders(t *testing.T, db UserRepository) (admin, teacher, accountant models.User) {
	t.Helper()

	admin = models.User{Name: "Admin", Email: "admin@x.example", Password: "x", Role: models.RoleAdmin, Campus: models.CampusBrindabanpur}
	teacher = models.User{Name: "Teacher", Email: "teacher@x.example", Password: "x", Role: models.RoleTeacher, Campus: models.CampusBrindabanpur}
	accountant = models.User{Name: "Accountant", Email: "acc@x.example", Password: "x", Role: models.RoleAccountant, Campus: models.CampusJagadishpur}

	require.NoError(t, db.Create(context.Background(), &admin))
	require.NoError(t, db.Create(context.Background(), &teacher))
	require.NoError(t, db.Create(context.Background(), &accountant))
	return admin, teacher, accountant
}

func TestReminderVisibilityBroadcastsAdminReminders(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewReminderRepository(db)

	admin, teacher, accountant := seedUsersForReminders(t, users)

	due := time.Now().Add(time.Hour).UTC()
	adminReminder := models.Reminder{Title: "Board meeting", DueAt: due, OwnerID: admin.ID}
	teacherReminder := models.Reminder{Title: "Grade tests", DueAt: due, OwnerID: teacher.ID}
	accountantReminder := models.Reminder{Title: "Close books", DueAt: due, OwnerID: accountant.ID}
	require.NoError(t, repo.Create(context.Background(), &adminReminder))
	require.NoError(t, repo.Create(context.Background(), &teacherReminder))
	require.NoError(t, repo.Create(context.Background(), &accountantReminder))

	adminIdentity := models.Identity{ID: admin.ID, Role: models.RoleAdmin, Campus: admin.Campus}
	visible, err := repo.ListVisibleTo(context.Background(), adminIdentity)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, "Board meeting", visible[0].Title)

	teacherIdentity := models.Identity{ID: teacher.ID, Role: models.RoleTeacher, Campus: teacher.Campus}
	visible, err = repo.ListVisibleTo(context.Background(), teacherIdentity)
	require.NoError(t, err)
	require.Len(t, visible, 2)

	titles := []string{visible[0].Title, visible[1].Title}
	require.ElementsMatch(t, []string{"Board meeting", "Grade tests"}, titles)
}

func TestReminderMarkNotifiedIsOneWay(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewReminderRepository(db)

	admin, _, _ := seedUsersForReminders(t, users)

	reminder := models.Reminder{Title: "Once", DueAt: time.Now().UTC(), OwnerID: admin.ID}
	require.NoError(t, repo.Create(context.Background(), &reminder))
	require.False(t, reminder.IsNotified)

	require.NoError(t, repo.MarkNotified(context.Background(), reminder.ID))

	fetched, err := repo.FindByID(context.Background(), reminder.ID)
	require.NoError(t, err)
	require.True(t, fetched.IsNotified)

	// a later edit through Update keeps the flag set
	fetched.Title = "Once edited"
	require.NoError(t, repo.Update(context.Background(), &fetched))
	again, err := repo.FindByID(context.Background(), reminder.ID)
	require.NoError(t, err)
	require.True(t, again.IsNotified)
}

func TestReminderListByOwnerOrdersByDueDate(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewReminderRepository(db)

	admin, _, _ := seedUsersForReminders(t, users)

	later := models.Reminder{Title: "Later", DueAt: time.Now().Add(2 * time.Hour).UTC(), OwnerID: admin.ID}
	sooner := models.Reminder{Title: "Sooner", DueAt: time.Now().Add(time.Hour).UTC(), OwnerID: admin.ID}
	require.NoError(t, repo.Create(context.Background(), &later))
	require.NoError(t, repo.Create(context.Background(), &sooner))

	reminders, err := repo.ListByOwner(context.Background(), admin.ID)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	require.Equal(t, "Sooner", reminders[0].Title)
}
