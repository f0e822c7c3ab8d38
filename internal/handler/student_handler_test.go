package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
)

func admissionBody(name, campus string) string {
	return `{
		"name": "` + name + `",
		"campus": "` + campus + `",
		"applied_for_class": "Nursery",
		"session": "2024",
		"father_name": "Rohit Sharma",
		"mobile_number": "9000000000",
		"date_of_birth": "2019-04-12"
	}`
}

func TestStudentCreateAllocatesRegistrationNumber(t *testing.T) {
	ta := setupTestApp(t)
	_, token := ta.createUser(t, "Anita Das", "admin@x.example", models.RoleAdmin, models.CampusBrindabanpur)

	resp := doJSON(t, ta, http.MethodPost, "/api/v1/students/", token, strings.NewReader(admissionBody("Aarav Sharma", "Brindabanpur")))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var student dto.StudentResponse
	decodeData(t, resp, &student)

	year := time.Now().Format("06")
	require.Equal(t, "ICBR"+year+"001", student.RegistrationNumber)
	require.Equal(t, "Indian", student.Nationality)

	resp = doJSON(t, ta, http.MethodPost, "/api/v1/students/", token, strings.NewReader(admissionBody("Diya Sen", "Brindabanpur")))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeData(t, resp, &student)
	require.Equal(t, "ICBR"+year+"002", student.RegistrationNumber)
}

func TestStudentListScopedByCampus(t *testing.T) {
	ta := setupTestApp(t)
	_, adminToken := ta.createUser(t, "Anita Das", "admin@x.example", models.RoleAdmin, models.CampusBrindabanpur)
	_, teacherToken := ta.createUser(t, "Rina Ghosh", "rina@x.example", models.RoleTeacher, models.CampusJagadishpur)

	resp := doJSON(t, ta, http.MethodPost, "/api/v1/students/", adminToken, strings.NewReader(admissionBody("Aarav Sharma", "Brindabanpur")))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, ta, http.MethodPost, "/api/v1/students/", adminToken, strings.NewReader(admissionBody("Diya Sen", "Jagadishpur")))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var all []dto.StudentResponse
	resp = doJSON(t, ta, http.MethodGet, "/api/v1/students/", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &all)
	require.Len(t, all, 2)

	var scoped []dto.StudentResponse
	resp = doJSON(t, ta, http.MethodGet, "/api/v1/students/", teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &scoped)
	require.Len(t, scoped, 1)
	require.Equal(t, "Jagadishpur", scoped[0].Campus)
}

func TestStudentCreateRejectsForeignCampus(t *testing.T) {
	ta := setupTestApp(t)
	_, teacherToken := ta.createUser(t, "Rina Ghosh", "rina@x.example", models.RoleTeacher, models.CampusJagadishpur)

	resp := doJSON(t, ta, http.MethodPost, "/api/v1/students/", teacherToken, strings.NewReader(admissionBody("Aarav Sharma", "Brindabanpur")))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestImportPreviewAndCommitOverHTTP(t *testing.T) {
	ta := setupTestApp(t)
	_, token := ta.createUser(t, "Anita Das", "admin@x.example", models.RoleAdmin, models.CampusBrindabanpur)

	csvContent := "" +
		"name,campus,appliedForClass,session,fatherName,mobileNumber,dateOfBirth\n" +
		"Aarav Sharma,Brindabanpur,Nursery,2024,Rohit Sharma,9000000000,2019-04-12\n" +
		",Brindabanpur,Nursery,2024,,9111111111,2020-01-30\n"

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "students.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvContent))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/v1/students/import", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ta.app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var preview dto.ImportPreviewResponse
	decodeData(t, resp, &preview)
	require.Equal(t, 2, preview.TotalRows)
	require.Equal(t, 1, preview.ValidRows)
	require.Equal(t, 1, preview.ErrorRows)

	// commit only the valid rows, as the console does after review
	commitBody := `{"rows":[` + admissionBody("Aarav Sharma", "Brindabanpur") + `]}`
	resp = doJSON(t, ta, http.MethodPost, "/api/v1/students/import/commit", token, strings.NewReader(commitBody))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result dto.ImportCommitResponse
	decodeData(t, resp, &result)
	require.Equal(t, 1, result.ImportedCount)
	require.Len(t, result.RegistrationNumbers, 1)
}

func TestImportTemplateDownload(t *testing.T) {
	ta := setupTestApp(t)
	_, token := ta.createUser(t, "Anita Das", "admin@x.example", models.RoleAdmin, models.CampusBrindabanpur)

	resp := doJSON(t, ta, http.MethodGet, "/api/v1/students/import/template", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
}
