package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/idealconvent/campus-api/internal/middleware"
	"github.com/idealconvent/campus-api/internal/service"
	"github.com/idealconvent/campus-api/internal/utils"
)

// DashboardHandler serves the scoped overview counts.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs a handler instance.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register binds the dashboard routes.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/stats", h.stats)
}

func (h *DashboardHandler) stats(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	stats, err := h.service.Stats(c.UserContext(), identity)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "dashboard stats", stats)
}
