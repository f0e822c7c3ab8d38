package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
)

func TestAnnouncementPublishRequiresAdmin(t *testing.T) {
	ta := setupTestApp(t)
	_, adminToken := ta.createUser(t, "Anita Das", "admin@x.example", models.RoleAdmin, models.CampusBrindabanpur)
	_, teacherToken := ta.createUser(t, "Rina Ghosh", "rina@x.example", models.RoleTeacher, models.CampusJagadishpur)

	body := `{"title":"Sports day","content":"Ground at 9am","campus":"All"}`

	resp := doJSON(t, ta, http.MethodPost, "/api/v1/announcements/", teacherToken, strings.NewReader(body))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, ta, http.MethodPost, "/api/v1/announcements/", adminToken, strings.NewReader(body))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAnnouncementListIncludesAllCampusNotices(t *testing.T) {
	ta := setupTestApp(t)
	_, adminToken := ta.createUser(t, "Anita Das", "admin@x.example", models.RoleAdmin, models.CampusBrindabanpur)
	_, teacherToken := ta.createUser(t, "Rina Ghosh", "rina@x.example", models.RoleTeacher, models.CampusJagadishpur)

	for _, body := range []string{
		`{"title":"Everyone","content":"x","campus":"All"}`,
		`{"title":"Jagadishpur only","content":"x","campus":"Jagadishpur"}`,
		`{"title":"Brindabanpur only","content":"x","campus":"Brindabanpur"}`,
	} {
		resp := doJSON(t, ta, http.MethodPost, "/api/v1/announcements/", adminToken, strings.NewReader(body))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var visible []dto.AnnouncementResponse
	resp := doJSON(t, ta, http.MethodGet, "/api/v1/announcements/", teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &visible)
	require.Len(t, visible, 2)
	for _, announcement := range visible {
		require.NotEqual(t, "Brindabanpur only", announcement.Title)
	}
}

func TestAccountsRoutesRequireFinanceRole(t *testing.T) {
	ta := setupTestApp(t)
	_, teacherToken := ta.createUser(t, "Rina Ghosh", "rina@x.example", models.RoleTeacher, models.CampusJagadishpur)
	_, accountantToken := ta.createUser(t, "Mita Roy", "mita@x.example", models.RoleAccountant, models.CampusJagadishpur)

	resp := doJSON(t, ta, http.MethodGet, "/api/v1/accounts/fees", teacherToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, ta, http.MethodGet, "/api/v1/accounts/fees", accountantToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
