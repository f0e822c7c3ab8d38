package dto

import (
	"time"

	"github.com/idealconvent/campus-api/internal/models"
)

// FeePaymentCreateRequest records a fee collection. The student's name,
// registration number and campus are resolved server side from StudentID.
type FeePaymentCreateRequest struct {
	StudentID       uint    `json:"student_id" validate:"required,gt=0"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate     string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentForMonth string  `json:"payment_for_month" validate:"omitempty,max=32"`
	PaymentMode     string  `json:"payment_mode" validate:"required,oneof=Cash Online 'Bank Transfer' Cheque"`
}

// FeePaymentResponse is the serialized representation of a fee collection.
type FeePaymentResponse struct {
	ID                 uint      `json:"id"`
	StudentID          uint      `json:"student_id"`
	StudentName        string    `json:"student_name"`
	RegistrationNumber string    `json:"registration_number"`
	Campus             string    `json:"campus"`
	Amount             float64   `json:"amount"`
	PaymentDate        string    `json:"payment_date"`
	PaymentForMonth    string    `json:"payment_for_month,omitempty"`
	PaymentMode        string    `json:"payment_mode"`
	CollectedByID      uint      `json:"collected_by_id"`
	CreatedAt          time.Time `json:"created_at"`
}

// ExpenseCreateRequest records money spent by a campus.
type ExpenseCreateRequest struct {
	Category    string  `json:"category" validate:"required,oneof=Salaries Utilities Supplies Maintenance Other"`
	Description string  `json:"description" validate:"omitempty,max=512"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	ExpenseDate string  `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Campus      string  `json:"campus" validate:"required,max=64"`
}

// ExpenseResponse is the serialized representation of an expense.
type ExpenseResponse struct {
	ID           uint      `json:"id"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	Amount       float64   `json:"amount"`
	ExpenseDate  string    `json:"expense_date"`
	Campus       string    `json:"campus"`
	RecordedByID uint      `json:"recorded_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountSummaryResponse aggregates money moved in an inclusive date range.
type AccountSummaryResponse struct {
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetBalance    float64 `json:"net_balance"`
}

// NewFeePaymentResponse converts a model into a DTO.
func NewFeePaymentResponse(payment models.FeePayment) FeePaymentResponse {
	return FeePaymentResponse{
		ID:                 payment.ID,
		StudentID:          payment.StudentID,
		StudentName:        payment.StudentName,
		RegistrationNumber: payment.RegistrationNumber,
		Campus:             string(payment.Campus),
		Amount:             payment.Amount,
		PaymentDate:        payment.PaymentDate,
		PaymentForMonth:    payment.PaymentForMonth,
		PaymentMode:        payment.PaymentMode,
		CollectedByID:      payment.CollectedByID,
		CreatedAt:          payment.CreatedAt,
	}
}

// NewFeePaymentResponseSlice converts a slice of models into DTOs.
func NewFeePaymentResponseSlice(payments []models.FeePayment) []FeePaymentResponse {
	out := make([]FeePaymentResponse, 0, len(payments))
	for _, payment := range payments {
		out = append(out, NewFeePaymentResponse(payment))
	}
	return out
}

// NewExpenseResponse converts a model into a DTO.
func NewExpenseResponse(expense models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           expense.ID,
		Category:     expense.Category,
		Description:  expense.Description,
		Amount:       expense.Amount,
		ExpenseDate:  expense.ExpenseDate,
		Campus:       string(expense.Campus),
		RecordedByID: expense.RecordedByID,
		CreatedAt:    expense.CreatedAt,
	}
}

// NewExpenseResponseSlice converts a slice of models into DTOs.
func NewExpenseResponseSlice(expenses []models.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		out = append(out, NewExpenseResponse(expense))
	}
	return out
}
