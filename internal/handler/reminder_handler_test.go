package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
)

func TestReminderCrudOverHTTP(t *testing.T) {
	ta := setupTestApp(t)
	_, token := ta.createUser(t, "Anita Das", "admin@x.example", models.RoleAdmin, models.CampusBrindabanpur)

	due := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	resp := doJSON(t, ta, http.MethodPost, "/api/v1/reminders/", token,
		strings.NewReader(`{"title":"Collect fees","due_at":"`+due+`"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.ReminderResponse
	decodeData(t, resp, &created)
	require.False(t, created.IsCompleted)
	require.False(t, created.IsNotified)

	resp = doJSON(t, ta, http.MethodPut, "/api/v1/reminders/1", token,
		strings.NewReader(`{"is_completed":true}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.ReminderResponse
	decodeData(t, resp, &updated)
	require.True(t, updated.IsCompleted)

	resp = doJSON(t, ta, http.MethodDelete, "/api/v1/reminders/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.ReminderResponse
	resp = doJSON(t, ta, http.MethodGet, "/api/v1/reminders/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &list)
	require.Empty(t, list)
}

func TestReminderUpdateForbiddenForOtherOwner(t *testing.T) {
	ta := setupTestApp(t)
	_, ownerToken := ta.createUser(t, "Anita Das", "admin@x.example", models.RoleAdmin, models.CampusBrindabanpur)
	_, otherToken := ta.createUser(t, "Rina Ghosh", "rina@x.example", models.RoleTeacher, models.CampusBrindabanpur)

	due := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	resp := doJSON(t, ta, http.MethodPost, "/api/v1/reminders/", ownerToken,
		strings.NewReader(`{"title":"Private","due_at":"`+due+`"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, ta, http.MethodPut, "/api/v1/reminders/1", otherToken,
		strings.NewReader(`{"is_completed":true}`))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
