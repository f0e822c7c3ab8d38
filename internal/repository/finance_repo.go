package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/models"
)

// RangeTotals aggregates money moved within a date range.
type RangeTotals struct {
	TotalIncome   float64
	TotalExpenses float64
}

// FinanceRepository handles persistence for fee payments and expenses.
type FinanceRepository interface {
	ListFeePayments(ctx context.Context, scope Scope) ([]models.FeePayment, error)
	CreateFeePayment(ctx context.Context, payment *models.FeePayment) error
	ListExpenses(ctx context.Context, scope Scope) ([]models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	SummarizeRange(ctx context.Context, scope Scope, startDate, endDate string) (RangeTotals, error)
}

type financeRepository struct {
	db *gorm.DB
}

// NewFinanceRepository constructs a repository backed by GORM.
func NewFinanceRepository(db *gorm.DB) FinanceRepository {
	return &financeRepository{db: db}
}

func (r *financeRepository) ListFeePayments(ctx context.Context, scope Scope) ([]models.FeePayment, error) {
	var payments []models.FeePayment
	err := scopeByCampus(r.db.WithContext(ctx), scope).
		Order("payment_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *financeRepository) CreateFeePayment(ctx context.Context, payment *models.FeePayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *financeRepository) ListExpenses(ctx context.Context, scope Scope) ([]models.Expense, error) {
	var expenses []models.Expense
	err := scopeByCampus(r.db.WithContext(ctx), scope).
		Order("expense_date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *financeRepository) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// SummarizeRange totals payments and expenses whose date falls inside the
// inclusive [startDate, endDate] range. Dates are ISO strings, so lexical
// BETWEEN matches chronological order.
func (r *financeRepository) SummarizeRange(ctx context.Context, scope Scope, startDate, endDate string) (RangeTotals, error) {
	var totals RangeTotals

	err := scopeByCampus(r.db.WithContext(ctx).Model(&models.FeePayment{}), scope).
		Where("payment_date BETWEEN ? AND ?", startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totals.TotalIncome).Error
	if err != nil {
		return RangeTotals{}, err
	}

	err = scopeByCampus(r.db.WithContext(ctx).Model(&models.Expense{}), scope).
		Where("expense_date BETWEEN ? AND ?", startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totals.TotalExpenses).Error
	if err != nil {
		return RangeTotals{}, err
	}

	return totals, nil
}
