package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

// ErrInvalidDateRange indicates a summary request with unparsable dates or
// a start after the end.
var ErrInvalidDateRange = errors.New("invalid date range")

// FinanceService exposes fee collection, expense tracking and the account
// summary.
type FinanceService interface {
	ListFeePayments(ctx context.Context, identity models.Identity) ([]dto.FeePaymentResponse, error)
	RecordFeePayment(ctx context.Context, identity models.Identity, payload dto.FeePaymentCreateRequest) (dto.FeePaymentResponse, error)
	ListExpenses(ctx context.Context, identity models.Identity) ([]dto.ExpenseResponse, error)
	RecordExpense(ctx context.Context, identity models.Identity, payload dto.ExpenseCreateRequest) (dto.ExpenseResponse, error)
	Summary(ctx context.Context, identity models.Identity, startDate, endDate string) (dto.AccountSummaryResponse, error)
}

type financeService struct {
	repo      repository.FinanceRepository
	students  repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewFinanceService constructs the finance service.
func NewFinanceService(repo repository.FinanceRepository, students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) FinanceService {
	return &financeService{
		repo:      repo,
		students:  students,
		validator: validate,
		logger:    logger.With().Str("component", "finance_service").Logger(),
	}
}

func (s *financeService) ListFeePayments(ctx context.Context, identity models.Identity) ([]dto.FeePaymentResponse, error) {
	payments, err := s.repo.ListFeePayments(ctx, repository.ScopeFor(identity))
	if err != nil {
		return nil, err
	}
	return dto.NewFeePaymentResponseSlice(payments), nil
}

// RecordFeePayment resolves the student and denormalizes their name,
// registration number and campus onto the payment row.
func (s *financeService) RecordFeePayment(ctx context.Context, identity models.Identity, payload dto.FeePaymentCreateRequest) (dto.FeePaymentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.FeePaymentResponse{}, err
	}

	student, err := s.students.FindByID(ctx, payload.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FeePaymentResponse{}, ErrStudentNotFound
		}
		return dto.FeePaymentResponse{}, err
	}
	if !identity.IsAdmin() && student.Campus != identity.Campus {
		return dto.FeePaymentResponse{}, ErrCampusForbidden
	}

	payment := models.FeePayment{
		StudentID:          student.ID,
		StudentName:        student.Name,
		RegistrationNumber: student.RegistrationNumber,
		Campus:             student.Campus,
		Amount:             payload.Amount,
		PaymentDate:        payload.PaymentDate,
		PaymentForMonth:    payload.PaymentForMonth,
		PaymentMode:        payload.PaymentMode,
		CollectedByID:      identity.ID,
	}
	if err := s.repo.CreateFeePayment(ctx, &payment); err != nil {
		return dto.FeePaymentResponse{}, err
	}

	s.logger.Info().
		Uint("payment_id", payment.ID).
		Str("registration_number", payment.RegistrationNumber).
		Float64("amount", payment.Amount).
		Msg("fee payment recorded")

	return dto.NewFeePaymentResponse(payment), nil
}

func (s *financeService) ListExpenses(ctx context.Context, identity models.Identity) ([]dto.ExpenseResponse, error) {
	expenses, err := s.repo.ListExpenses(ctx, repository.ScopeFor(identity))
	if err != nil {
		return nil, err
	}
	return dto.NewExpenseResponseSlice(expenses), nil
}

func (s *financeService) RecordExpense(ctx context.Context, identity models.Identity, payload dto.ExpenseCreateRequest) (dto.ExpenseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ExpenseResponse{}, err
	}
	campus := models.Campus(payload.Campus)
	if !campus.Valid() {
		return dto.ExpenseResponse{}, fmt.Errorf("%w: %s", ErrUnknownCampus, payload.Campus)
	}
	if !identity.IsAdmin() && campus != identity.Campus {
		return dto.ExpenseResponse{}, ErrCampusForbidden
	}

	expense := models.Expense{
		Category:     payload.Category,
		Description:  payload.Description,
		Amount:       payload.Amount,
		ExpenseDate:  payload.ExpenseDate,
		Campus:       campus,
		RecordedByID: identity.ID,
	}
	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return dto.ExpenseResponse{}, err
	}

	s.logger.Info().
		Uint("expense_id", expense.ID).
		Str("category", expense.Category).
		Float64("amount", expense.Amount).
		Msg("expense recorded")

	return dto.NewExpenseResponse(expense), nil
}

func (s *financeService) Summary(ctx context.Context, identity models.Identity, startDate, endDate string) (dto.AccountSummaryResponse, error) {
	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return dto.AccountSummaryResponse{}, fmt.Errorf("%w: %s", ErrInvalidDateRange, startDate)
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return dto.AccountSummaryResponse{}, fmt.Errorf("%w: %s", ErrInvalidDateRange, endDate)
	}
	if startDate > endDate {
		return dto.AccountSummaryResponse{}, fmt.Errorf("%w: start after end", ErrInvalidDateRange)
	}

	totals, err := s.repo.SummarizeRange(ctx, repository.ScopeFor(identity), startDate, endDate)
	if err != nil {
		return dto.AccountSummaryResponse{}, err
	}

	return dto.AccountSummaryResponse{
		StartDate:     startDate,
		EndDate:       endDate,
		TotalIncome:   totals.TotalIncome,
		TotalExpenses: totals.TotalExpenses,
		NetBalance:    totals.TotalIncome - totals.TotalExpenses,
	}, nil
}
