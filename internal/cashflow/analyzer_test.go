package cashflow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truecash-dev/truecash/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(d int) time.Time {
	return time.Date(2025, 12, d, 0, 0, 0, 0, time.UTC)
}

func testAccounts() []model.Account {
	return []model.Account{
		{ID: "checking-1", DisplayName: "Checking", Type: model.AccountTypeChecking, CurrentBalance: dec("3500"), IncludeInNetWorth: true},
		{ID: "cc-1", DisplayName: "Sapphire", Type: model.AccountTypeCredit, CurrentBalance: dec("-1245.67"), IncludeInNetWorth: true},
	}
}

func testCategories() model.CategorySet {
	return model.CategorySet{
		"cat-salary":    {ID: "cat-salary", Name: "Paychecks", GroupName: "Income", Type: model.CategoryTypeIncome},
		"cat-dividends": {ID: "cat-dividends", Name: "Dividends & Capital Gains", GroupName: "Income", Type: model.CategoryTypeIncome},
		"cat-rent":      {ID: "cat-rent", Name: "Rent", GroupName: "Housing", Type: model.CategoryTypeExpense},
		"cat-groceries": {ID: "cat-groceries", Name: "Groceries", GroupName: "Food & Dining", Type: model.CategoryTypeExpense},
		"cat-ccpay":     {ID: "cat-ccpay", Name: "Credit Card Payment", GroupName: "Transfers", Type: model.CategoryTypeTransfer, SystemCategory: model.SystemCategoryCCPayment},
	}
}

// The canonical month: salary in, rent from checking, groceries on the card,
// and both legs of an 800 credit-card payment.
func testTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "t1", Date: day(1), Amount: dec("5000"), AccountID: "checking-1", CategoryID: "cat-salary"},
		{ID: "t2", Date: day(5), Amount: dec("-1500"), AccountID: "checking-1", CategoryID: "cat-rent"},
		{ID: "t3", Date: day(10), Amount: dec("-300"), AccountID: "cc-1", CategoryID: "cat-groceries"},
		{ID: "t4", Date: day(25), Amount: dec("-800"), AccountID: "checking-1", CategoryID: "cat-ccpay"},
		{ID: "t5", Date: day(25), Amount: dec("800"), AccountID: "cc-1", CategoryID: "cat-ccpay"},
	}
}

func TestTopLevelMetrics(t *testing.T) {
	a := NewAnalyzer(testTransactions(), testAccounts(), testCategories(), nil)
	m := a.TopLevelMetrics()

	assert.True(t, m.TotalIncome.Equal(dec("5000")), "income: %s", m.TotalIncome)
	assert.True(t, m.TotalExpenses.Equal(dec("1800")), "expenses: %s", m.TotalExpenses)
	assert.True(t, m.CCExpenses.Equal(dec("300")), "cc expenses: %s", m.CCExpenses)
	assert.True(t, m.CashExpenses.Equal(dec("1500")), "cash expenses: %s", m.CashExpenses)
	assert.True(t, m.CCPayments.Equal(dec("800")), "cc payments: %s", m.CCPayments)
	// 5000 - 1500 - 800
	assert.True(t, m.TrueCashRemaining.Equal(dec("2700")), "true cash: %s", m.TrueCashRemaining)
	assert.True(t, m.TotalNewCCSpending.Equal(m.CCExpenses))
}

func TestTopLevelMetrics_ExpenseSplitInvariant(t *testing.T) {
	a := NewAnalyzer(testTransactions(), testAccounts(), testCategories(), nil)
	m := a.TopLevelMetrics()

	assert.True(t, m.TotalExpenses.Equal(m.CCExpenses.Add(m.CashExpenses)),
		"total_expenses must equal cc + cash exactly")
}

func TestTopLevelMetrics_CCPaymentCountedOnce(t *testing.T) {
	a := NewAnalyzer(testTransactions(), testAccounts(), testCategories(), nil)
	m := a.TopLevelMetrics()

	// The -800 cash leg lands in CCPayments only; the +800 card leg is
	// ignored and neither leg reaches TotalExpenses or TotalIncome.
	assert.True(t, m.CCPayments.Equal(dec("800")))
	assert.True(t, m.TotalExpenses.Equal(dec("1800")))
	assert.True(t, m.TotalIncome.Equal(dec("5000")))
}

func TestTopLevelMetrics_NoCreditAccounts(t *testing.T) {
	accounts := []model.Account{
		{ID: "checking-1", Type: model.AccountTypeChecking},
	}
	txns := []model.Transaction{
		{ID: "t1", Date: day(1), Amount: dec("4000"), AccountID: "checking-1", CategoryID: "cat-salary"},
		{ID: "t2", Date: day(5), Amount: dec("-1200"), AccountID: "checking-1", CategoryID: "cat-rent"},
	}
	m := NewAnalyzer(txns, accounts, testCategories(), nil).TopLevelMetrics()

	assert.True(t, m.CCExpenses.IsZero())
	assert.True(t, m.CCPayments.IsZero())
	assert.True(t, m.CashExpenses.Equal(m.TotalExpenses))
}

func TestTopLevelMetrics_Empty(t *testing.T) {
	m := NewAnalyzer(nil, nil, model.CategorySet{}, nil).TopLevelMetrics()

	assert.True(t, m.TotalIncome.IsZero())
	assert.True(t, m.TotalExpenses.IsZero())
	assert.True(t, m.CCExpenses.IsZero())
	assert.True(t, m.CashExpenses.IsZero())
	assert.True(t, m.CCPayments.IsZero())
	assert.True(t, m.TrueCashRemaining.IsZero())
}

func TestTopLevelMetrics_Idempotent(t *testing.T) {
	a := NewAnalyzer(testTransactions(), testAccounts(), testCategories(), nil)

	first := a.TopLevelMetrics()
	second := a.TopLevelMetrics()
	assert.Equal(t, first, second)
}

func TestTopLevelMetrics_ExcludedIncomeCategory(t *testing.T) {
	txns := append(testTransactions(), model.Transaction{
		ID: "t6", Date: day(15), Amount: dec("250"), AccountID: "checking-1", CategoryID: "cat-dividends",
	})
	m := NewAnalyzer(txns, testAccounts(), testCategories(), nil).TopLevelMetrics()

	assert.True(t, m.TotalIncome.Equal(dec("5000")), "dividends must not count as income")
}

func TestTopLevelMetrics_MissingCategoryStillCounted(t *testing.T) {
	txns := []model.Transaction{
		{ID: "t1", Date: day(1), Amount: dec("100"), AccountID: "checking-1", CategoryID: "cat-unknown"},
		{ID: "t2", Date: day(2), Amount: dec("-40"), AccountID: "checking-1", CategoryID: ""},
	}
	m := NewAnalyzer(txns, testAccounts(), testCategories(), nil).TopLevelMetrics()

	assert.True(t, m.TotalIncome.Equal(dec("100")))
	assert.True(t, m.TotalExpenses.Equal(dec("40")))
}

func TestTopLevelMetrics_UnknownAccountType(t *testing.T) {
	accounts := []model.Account{
		{ID: "mystery-1", Type: model.AccountType("brokerage")},
	}
	txns := []model.Transaction{
		{ID: "t1", Date: day(3), Amount: dec("-75"), AccountID: "mystery-1", CategoryID: "cat-groceries"},
	}
	m := NewAnalyzer(txns, accounts, testCategories(), nil).TopLevelMetrics()

	assert.True(t, m.TotalExpenses.Equal(dec("75")))
	assert.True(t, m.CCExpenses.IsZero(), "unknown account type is not credit")
}

func TestTopLevelMetrics_NoCCPaymentCategoryInSet(t *testing.T) {
	cats := testCategories()
	delete(cats, "cat-ccpay")

	m := NewAnalyzer(testTransactions(), testAccounts(), cats, nil).TopLevelMetrics()

	// Without the tagging category the payment legs fall back to the plain
	// sign rules: the -800 counts as a cash expense, the +800 as income.
	assert.True(t, m.CCPayments.IsZero())
	assert.True(t, m.TotalExpenses.Equal(dec("2600")))
	assert.True(t, m.TotalIncome.Equal(dec("5800")))
}

func TestNewAnalyzer_DoesNotMutateInputs(t *testing.T) {
	txns := testTransactions()
	accounts := testAccounts()
	cats := testCategories()

	a := NewAnalyzer(txns, accounts, cats, nil)
	_ = a.TopLevelMetrics()
	_ = a.IncomeBreakdown()
	_ = a.ExpenseBreakdown()

	require.Len(t, txns, 5)
	assert.True(t, txns[0].Amount.Equal(dec("5000")))
	assert.True(t, accounts[1].CurrentBalance.Equal(dec("-1245.67")))
	assert.Len(t, cats, 5)
}
