package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/middleware"
	"github.com/idealconvent/campus-api/internal/service"
	"github.com/idealconvent/campus-api/internal/utils"
)

// FinanceHandler serves fee payment, expense and summary routes.
type FinanceHandler struct {
	service service.FinanceService
	logger  zerolog.Logger
}

// NewFinanceHandler constructs a handler instance.
func NewFinanceHandler(service service.FinanceService, logger zerolog.Logger) *FinanceHandler {
	return &FinanceHandler{
		service: service,
		logger:  logger.With().Str("component", "finance_handler").Logger(),
	}
}

// Register binds the account routes.
func (h *FinanceHandler) Register(router fiber.Router) {
	router.Get("/fees", h.listFees)
	router.Post("/fees", h.recordFee)
	router.Get("/expenses", h.listExpenses)
	router.Post("/expenses", h.recordExpense)
	router.Get("/summary", h.summary)
}

func (h *FinanceHandler) listFees(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	payments, err := h.service.ListFeePayments(c.UserContext(), identity)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "fee payments", payments)
}

func (h *FinanceHandler) recordFee(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.FeePaymentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	payment, err := h.service.RecordFeePayment(c.UserContext(), identity, payload)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "fee payment recorded", payment)
}

func (h *FinanceHandler) listExpenses(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	expenses, err := h.service.ListExpenses(c.UserContext(), identity)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "expenses", expenses)
}

func (h *FinanceHandler) recordExpense(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.ExpenseCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	expense, err := h.service.RecordExpense(c.UserContext(), identity, payload)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "expense recorded", expense)
}

func (h *FinanceHandler) summary(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "start_date and end_date required")
	}

	summary, err := h.service.Summary(c.UserContext(), identity, startDate, endDate)
	if err != nil {
		return utils.SendError(c, errorStatus(err), err.Error())
	}
	return utils.SendSuccess(c, "account summary", summary)
}
