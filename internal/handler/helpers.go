package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/idealconvent/campus-api/internal/service"
)

func parseIDParam(c *fiber.Ctx) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// errorStatus maps service errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case isValidationError(err):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidResetToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrCampusForbidden),
		errors.Is(err, service.ErrReminderForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrSyllabusNotFound),
		errors.Is(err, service.ErrReminderNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrImportTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrUnknownCampus),
		errors.Is(err, service.ErrInvalidAnnouncementCampus),
		errors.Is(err, service.ErrSyllabusTeacherUnknown),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrNothingToImport),
		errors.Is(err, service.ErrNotCSV):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
