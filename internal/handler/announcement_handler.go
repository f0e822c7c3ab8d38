package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/middleware"
	"github.com/idealconvent/campus-api/internal/service"
	"github.com/idealconvent/campus-api/internal/utils"
)

// AnnouncementHandler serves campus notice routes.
type AnnouncementHandler struct {
	service service.AnnouncementService
	logger  zerolog.Logger
}

// NewAnnouncementHandler constructs a handler instance.
func NewAnnouncementHandler(service service.AnnouncementService, logger zerolog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
		logger:  logger.With().Str("component", "announcement_handler").Logger(),
	}
}

// Register binds the read route available to every role.
func (h *AnnouncementHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
}

// RegisterAdmin binds the publish route.
func (h *AnnouncementHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/", h.create)
}

func (h *AnnouncementHandler) list(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	announcements, err := h.service.List(c.UserContext(), identity)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "announcements", announcements)
}

func (h *AnnouncementHandler) create(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.AnnouncementCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	announcement, err := h.service.Create(c.UserContext(), identity, payload)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "announcement published", announcement)
}
