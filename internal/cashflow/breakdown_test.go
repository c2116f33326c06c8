package cashflow

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truecash-dev/truecash/internal/model"
)

func TestExpenseBreakdown(t *testing.T) {
	a := NewAnalyzer(testTransactions(), testAccounts(), testCategories(), nil)
	rows := a.ExpenseBreakdown()

	require.Len(t, rows, 3, "rent, groceries, synthetic CC payments row")

	assert.Equal(t, "Rent", rows[0].CategoryName)
	assert.True(t, rows[0].ActualAmount.Equal(dec("1500")))
	assert.True(t, rows[0].CCAmount.IsZero())
	assert.True(t, rows[0].CashAmount.Equal(dec("1500")))

	assert.Equal(t, "Groceries", rows[1].CategoryName)
	assert.True(t, rows[1].ActualAmount.Equal(dec("300")))
	assert.True(t, rows[1].CCAmount.Equal(dec("300")))
	assert.True(t, rows[1].CashAmount.IsZero())

	assert.Equal(t, SyntheticCCPaymentName, rows[2].CategoryName)
	assert.True(t, rows[2].Synthetic)
	assert.True(t, rows[2].ActualAmount.Equal(dec("800")))
}

func TestExpenseBreakdown_SyntheticRowExcludedFromTotals(t *testing.T) {
	a := NewAnalyzer(testTransactions(), testAccounts(), testCategories(), nil)
	rows := a.ExpenseBreakdown()
	m := a.TopLevelMetrics()

	total := decimal.Zero
	for _, r := range rows {
		if r.Synthetic {
			continue
		}
		total = total.Add(r.ActualAmount)
	}
	assert.True(t, total.Equal(m.TotalExpenses),
		"non-synthetic rows must sum to total_expenses, got %s vs %s", total, m.TotalExpenses)
}

func TestExpenseBreakdown_NoSyntheticRowWithoutPayments(t *testing.T) {
	txns := []model.Transaction{
		{ID: "t1", Date: day(5), Amount: dec("-1500"), AccountID: "checking-1", CategoryID: "cat-rent"},
	}
	rows := NewAnalyzer(txns, testAccounts(), testCategories(), nil).ExpenseBreakdown()

	require.Len(t, rows, 1)
	assert.False(t, rows[0].Synthetic)
}

func TestIncomeBreakdown(t *testing.T) {
	txns := append(testTransactions(), model.Transaction{
		ID: "t7", Date: day(15), Amount: dec("1000"), AccountID: "checking-1", CategoryID: "cat-salary",
	})
	rows := NewAnalyzer(txns, testAccounts(), testCategories(), nil).IncomeBreakdown()

	require.Len(t, rows, 1)
	assert.Equal(t, "Paychecks", rows[0].CategoryName)
	assert.True(t, rows[0].ActualAmount.Equal(dec("6000")))
	assert.True(t, rows[0].CCAmount.IsZero(), "income carries no CC split")
}

func TestBreakdown_SortedDescending(t *testing.T) {
	txns := []model.Transaction{
		{ID: "t1", Date: day(1), Amount: dec("-50"), AccountID: "checking-1", CategoryID: "cat-groceries"},
		{ID: "t2", Date: day(2), Amount: dec("-900"), AccountID: "checking-1", CategoryID: "cat-rent"},
	}
	rows := NewAnalyzer(txns, testAccounts(), testCategories(), nil).ExpenseBreakdown()

	require.Len(t, rows, 2)
	assert.Equal(t, "Rent", rows[0].CategoryName)
	assert.Equal(t, "Groceries", rows[1].CategoryName)
}

func TestBreakdown_MissingCategoryExcluded(t *testing.T) {
	txns := []model.Transaction{
		{ID: "t1", Date: day(1), Amount: dec("-50"), AccountID: "checking-1", CategoryID: "cat-none"},
	}
	rows := NewAnalyzer(txns, testAccounts(), testCategories(), nil).ExpenseBreakdown()
	assert.Empty(t, rows)
}

func TestCCPercentage(t *testing.T) {
	b := model.CategoryBreakdown{ActualAmount: dec("200"), CCAmount: dec("50")}
	assert.True(t, b.CCPercentage().Equal(dec("25")))

	zero := model.CategoryBreakdown{}
	assert.True(t, zero.CCPercentage().IsZero())
}
