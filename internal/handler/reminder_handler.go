package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/middleware"
	"github.com/idealconvent/campus-api/internal/service"
	"github.com/idealconvent/campus-api/internal/utils"
)

// ReminderHandler serves reminder CRUD and the notification event stream.
type ReminderHandler struct {
	service service.ReminderService
	sweeper *service.ReminderSweeper
	logger  zerolog.Logger
}

// NewReminderHandler constructs a handler instance.
func NewReminderHandler(service service.ReminderService, sweeper *service.ReminderSweeper, logger zerolog.Logger) *ReminderHandler {
	return &ReminderHandler{
		service: service,
		sweeper: sweeper,
		logger:  logger.With().Str("component", "reminder_handler").Logger(),
	}
}

// Register binds the reminder routes.
func (h *ReminderHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/", h.create)
	router.Get("/stream", h.stream)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.remove)
}

func (h *ReminderHandler) list(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	reminders, err := h.service.List(c.UserContext(), identity)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "reminders", reminders)
}

func (h *ReminderHandler) create(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.ReminderCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	reminder, err := h.service.Create(c.UserContext(), identity, payload)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "reminder created", reminder)
}

func (h *ReminderHandler) update(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid reminder id")
	}

	var payload dto.ReminderUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	reminder, err := h.service.Update(c.UserContext(), identity, id, payload)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "reminder updated", reminder)
}

func (h *ReminderHandler) remove(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid reminder id")
	}

	if err := h.service.Delete(c.UserContext(), identity, id); err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "reminder removed", nil)
}

// stream opens an SSE session and runs the notification sweep loop for it.
// The loop lives exactly as long as the connection.
func (h *ReminderHandler) stream(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	base := c.UserContext()
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithCancel(base)

	alerts := make(chan dto.ReminderAlert, 16)
	go func() {
		defer close(alerts)
		err := h.sweeper.Run(ctx, identity, func(alert dto.ReminderAlert) error {
			select {
			case alerts <- alert:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil && ctx.Err() == nil {
			h.logger.Warn().Err(err).Uint("user_id", identity.ID).Msg("reminder sweep loop ended")
		}
	}()

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()

		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case alert, open := <-alerts:
				if !open {
					return
				}
				if err := writeAlertEvent(w, alert); err != nil {
					h.logger.Debug().Err(err).Msg("failed to write reminder event")
					return
				}
			case <-ticker.C:
				if err := writeKeepAlive(w); err != nil {
					h.logger.Debug().Err(err).Msg("failed to write reminder keepalive")
					return
				}
			case <-ctx.Done():
				return
			}
		}
	})

	return nil
}

func writeAlertEvent(w *bufio.Writer, alert dto.ReminderAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "event: reminder\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}

func writeKeepAlive(w *bufio.Writer) error {
	if _, err := fmt.Fprintf(w, ": keep-alive %s\n\n", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return w.Flush()
}
