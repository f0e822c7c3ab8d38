package handler_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/idealconvent/campus-api/internal/config"
	"github.com/idealconvent/campus-api/internal/handler"
	"github.com/idealconvent/campus-api/internal/middleware"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
	"github.com/idealconvent/campus-api/internal/router"
	"github.com/idealconvent/campus-api/internal/service"
	"github.com/idealconvent/campus-api/internal/utils"
)

const testSecret = "handler-test-secret"

type testApp struct {
	app *fiber.App
	db  *gorm.DB
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.Syllabus{},
		&models.Announcement{},
		&models.FeePayment{},
		&models.Expense{},
		&models.Reminder{},
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	logger := zerolog.Nop()
	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	syllabusRepo := repository.NewSyllabusRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	allocator := service.NewRegistrationAllocator(studentRepo)

	cfg := config.Config{AppName: "campus-test", AppEnv: "test"}

	deps := router.Dependencies{
		AuthHandler:         handler.NewAuthHandler(service.NewAuthService(userRepo, validate, testSecret, time.Hour, logger), logger),
		StudentHandler:      handler.NewStudentHandler(service.NewStudentService(studentRepo, allocator, validate, logger), service.NewImportService(studentRepo, allocator, 5, logger), logger),
		TeacherHandler:      handler.NewTeacherHandler(service.NewTeacherService(teacherRepo, validate, logger), logger),
		SyllabusHandler:     handler.NewSyllabusHandler(service.NewSyllabusService(syllabusRepo, teacherRepo, validate, logger), logger),
		AnnouncementHandler: handler.NewAnnouncementHandler(service.NewAnnouncementService(announcementRepo, reminderRepo, validate, logger), logger),
		FinanceHandler:      handler.NewFinanceHandler(service.NewFinanceService(financeRepo, studentRepo, validate, logger), logger),
		ReminderHandler:     handler.NewReminderHandler(service.NewReminderService(reminderRepo, validate, logger), service.NewReminderSweeper(reminderRepo, time.Second, logger), logger),
		DashboardHandler:    handler.NewDashboardHandler(service.NewDashboardService(studentRepo, teacherRepo, syllabusRepo, announcementRepo, nil, time.Minute, logger), logger),
		JWTMiddleware:       middleware.JWTProtected(testSecret),
	}

	app := fiber.New(fiber.Config{AppName: cfg.AppName})
	router.Register(app, cfg, deps)

	return &testApp{app: app, db: db}
}

// createUser stores an account and returns a signed token for it.
func (ta *testApp) createUser(t *testing.T, name, email string, role models.Role, campus models.Campus) (models.User, string) {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "secret123", Role: role, Campus: campus}
	require.NoError(t, ta.db.Create(&user).Error)

	claims := jwt.MapClaims{
		"sub":    float64(user.ID),
		"name":   user.Name,
		"role":   string(user.Role),
		"campus": string(user.Campus),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, ta *testApp, method, path, token string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ta.app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) utils.APIResponse {
	t.Helper()

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(raw, &envelope), string(raw))
	return envelope
}

func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	envelope := decodeEnvelope(t, resp)
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
