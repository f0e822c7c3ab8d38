package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idealconvent/campus-api/internal/models"
)

func TestFinanceSummarizeRangeIsInclusive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFinanceRepository(db)

	payments := []models.FeePayment{
		{StudentID: 1, Campus: models.CampusBrindabanpur, Amount: 100, PaymentDate: "2024-03-31"},
		{StudentID: 1, Campus: models.CampusBrindabanpur, Amount: 200, PaymentDate: "2024-04-01"},
		{StudentID: 1, Campus: models.CampusBrindabanpur, Amount: 300, PaymentDate: "2024-04-30"},
		{StudentID: 1, Campus: models.CampusJagadishpur, Amount: 400, PaymentDate: "2024-04-15"},
	}
	for i := range payments {
		require.NoError(t, repo.CreateFeePayment(context.Background(), &payments[i]))
	}

	expenses := []models.Expense{
		{Category: "Supplies", Campus: models.CampusBrindabanpur, Amount: 50, ExpenseDate: "2024-04-10"},
		{Category: "Supplies", Campus: models.CampusBrindabanpur, Amount: 75, ExpenseDate: "2024-05-01"},
	}
	for i := range expenses {
		require.NoError(t, repo.CreateExpense(context.Background(), &expenses[i]))
	}

	adminScope := Scope{Role: models.RoleAdmin}
	totals, err := repo.SummarizeRange(context.Background(), adminScope, "2024-04-01", "2024-04-30")
	require.NoError(t, err)
	require.Equal(t, float64(900), totals.TotalIncome)
	require.Equal(t, float64(50), totals.TotalExpenses)

	scoped := Scope{Role: models.RoleAccountant, Campus: models.CampusBrindabanpur}
	totals, err = repo.SummarizeRange(context.Background(), scoped, "2024-04-01", "2024-04-30")
	require.NoError(t, err)
	require.Equal(t, float64(500), totals.TotalIncome)
}
