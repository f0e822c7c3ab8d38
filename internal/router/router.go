package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealconvent/campus-api/internal/config"
	"github.com/idealconvent/campus-api/internal/handler"
	"github.com/idealconvent/campus-api/internal/middleware"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler         *handler.AuthHandler
	StudentHandler      *handler.StudentHandler
	TeacherHandler      *handler.TeacherHandler
	SyllabusHandler     *handler.SyllabusHandler
	AnnouncementHandler *handler.AnnouncementHandler
	FinanceHandler      *handler.FinanceHandler
	ReminderHandler     *handler.ReminderHandler
	DashboardHandler    *handler.DashboardHandler
	JWTMiddleware       fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth")
		deps.AuthHandler.Register(auth)
		deps.AuthHandler.RegisterProtected(auth.Group("", jwtMiddleware))
	}

	if deps.StudentHandler != nil {
		students := api.Group("/students", jwtMiddleware)
		deps.StudentHandler.Register(students)
	}

	if deps.TeacherHandler != nil {
		teachers := api.Group("/teachers", jwtMiddleware)
		deps.TeacherHandler.Register(teachers)
	}

	if deps.SyllabusHandler != nil {
		syllabi := api.Group("/syllabi", jwtMiddleware)
		deps.SyllabusHandler.Register(syllabi)
	}

	if deps.AnnouncementHandler != nil {
		announcements := api.Group("/announcements", jwtMiddleware)
		deps.AnnouncementHandler.Register(announcements)
		deps.AnnouncementHandler.RegisterAdmin(
			announcements.Group("", middleware.RequireRole(models.RoleAdmin)),
		)
	}

	if deps.FinanceHandler != nil {
		accounts := api.Group("/accounts", jwtMiddleware,
			middleware.RequireRole(models.RoleAdmin, models.RoleAccountant))
		deps.FinanceHandler.Register(accounts)
	}

	if deps.ReminderHandler != nil {
		reminders := api.Group("/reminders", jwtMiddleware)
		deps.ReminderHandler.Register(reminders)
	}

	if deps.DashboardHandler != nil {
		dashboard := api.Group("/dashboard", jwtMiddleware)
		deps.DashboardHandler.Register(dashboard)
	}
}
