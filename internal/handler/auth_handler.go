package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/middleware"
	"github.com/idealconvent/campus-api/internal/service"
	"github.com/idealconvent/campus-api/internal/utils"
)

// AuthHandler serves login, signup and account self-service routes.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs a handler instance.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register binds the public auth routes.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/login", h.login)
	router.Post("/signup", h.signup)
	router.Post("/forgot-password", h.forgotPassword)
	router.Post("/reset-password", h.resetPassword)
}

// RegisterProtected binds the routes that require a valid token.
func (h *AuthHandler) RegisterProtected(router fiber.Router) {
	router.Get("/profile", h.profile)
	router.Put("/profile", h.updateProfile)
	router.Put("/password", h.changePassword)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Login(c.UserContext(), payload)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "login successful", response)
}

func (h *AuthHandler) signup(c *fiber.Ctx) error {
	var payload dto.SignupRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Signup(c.UserContext(), payload)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "account created", response)
}

func (h *AuthHandler) forgotPassword(c *fiber.Ctx) error {
	var payload dto.ForgotPasswordRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.ForgotPassword(c.UserContext(), payload)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "reset token issued", response)
}

func (h *AuthHandler) resetPassword(c *fiber.Ctx) error {
	var payload dto.ResetPasswordRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.ResetPassword(c.UserContext(), payload); err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "password reset", nil)
}

func (h *AuthHandler) profile(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	response, err := h.service.Profile(c.UserContext(), identity.ID)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "profile", response)
}

func (h *AuthHandler) updateProfile(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.UpdateProfileRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.UpdateProfile(c.UserContext(), identity.ID, payload)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "profile updated", response)
}

func (h *AuthHandler) changePassword(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.ChangePasswordRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.ChangePassword(c.UserContext(), identity.ID, payload); err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "password changed", nil)
}
