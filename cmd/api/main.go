package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/idealconvent/campus-api/internal/config"
	"github.com/idealconvent/campus-api/internal/database"
	"github.com/idealconvent/campus-api/internal/handler"
	"github.com/idealconvent/campus-api/internal/middleware"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/observability"
	"github.com/idealconvent/campus-api/internal/repository"
	"github.com/idealconvent/campus-api/internal/router"
	"github.com/idealconvent/campus-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.Syllabus{},
		&models.Announcement{},
		&models.FeePayment{},
		&models.Expense{},
		&models.Reminder{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not configured, dashboard cache disabled")
	}

	observability.RegisterMetrics()

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	syllabusRepo := repository.NewSyllabusRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	allocator := service.NewRegistrationAllocator(studentRepo)

	authService := service.NewAuthService(userRepo, validate, cfg.JWTSecret, cfg.TokenTTL, logger)
	studentService := service.NewStudentService(studentRepo, allocator, validate, logger)
	importService := service.NewImportService(studentRepo, allocator, cfg.ImportMaxSizeMB, logger)
	teacherService := service.NewTeacherService(teacherRepo, validate, logger)
	syllabusService := service.NewSyllabusService(syllabusRepo, teacherRepo, validate, logger)
	announcementService := service.NewAnnouncementService(announcementRepo, reminderRepo, validate, logger)
	financeService := service.NewFinanceService(financeRepo, studentRepo, validate, logger)
	reminderService := service.NewReminderService(reminderRepo, validate, logger)
	sweeper := service.NewReminderSweeper(reminderRepo, cfg.ReminderPollInterval, logger)
	dashboardService := service.NewDashboardService(studentRepo, teacherRepo, syllabusRepo, announcementRepo, redisClient, cfg.DashboardCacheTTL, logger)

	if cfg.SeedDemoData {
		seeder := service.NewSeedService(userRepo, teacherRepo, studentRepo, syllabusRepo, announcementRepo, financeRepo, allocator, logger)
		if _, err := seeder.Seed(context.Background()); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	authHandler := handler.NewAuthHandler(authService, logger)
	studentHandler := handler.NewStudentHandler(studentService, importService, logger)
	teacherHandler := handler.NewTeacherHandler(teacherService, logger)
	syllabusHandler := handler.NewSyllabusHandler(syllabusService, logger)
	announcementHandler := handler.NewAnnouncementHandler(announcementService, logger)
	financeHandler := handler.NewFinanceHandler(financeService, logger)
	reminderHandler := handler.NewReminderHandler(reminderService, sweeper, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:         authHandler,
		StudentHandler:      studentHandler,
		TeacherHandler:      teacherHandler,
		SyllabusHandler:     syllabusHandler,
		AnnouncementHandler: announcementHandler,
		FinanceHandler:      financeHandler,
		ReminderHandler:     reminderHandler,
		DashboardHandler:    dashboardHandler,
		JWTMiddleware:       middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
