package model

import "github.com/shopspring/decimal"

// TopLevelMetrics summarizes one month of cash flow. All fields are
// non-negative sums of absolute values except TrueCashRemaining, which may
// go negative in an overspent month.
type TopLevelMetrics struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal // all expenses (CC + cash)
	CCExpenses         decimal.Decimal // expenses charged to credit accounts
	CashExpenses       decimal.Decimal // expenses paid from cash accounts
	CCPayments         decimal.Decimal // payments made TO credit cards
	TrueCashRemaining  decimal.Decimal // income - cash expenses - CC payments
	TotalNewCCSpending decimal.Decimal // alias of CCExpenses, kept for display
}

// CalculateTopLevelMetrics derives the full metric set from the four base
// sums, enforcing cash_expenses = total - cc and the true-cash identity.
func CalculateTopLevelMetrics(totalIncome, totalExpenses, ccExpenses, ccPayments decimal.Decimal) TopLevelMetrics {
	cashExpenses := totalExpenses.Sub(ccExpenses)
	trueCash := totalIncome.Sub(cashExpenses).Sub(ccPayments)

	return TopLevelMetrics{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		CCExpenses:         ccExpenses,
		CashExpenses:       cashExpenses,
		CCPayments:         ccPayments,
		TrueCashRemaining:  trueCash,
		TotalNewCCSpending: ccExpenses,
	}
}

// CategoryBreakdown is the per-category slice of a month's cash flow.
// A Synthetic row (the "Credit Card Payments" display line) is informational
// only and must never be summed into total expenses.
type CategoryBreakdown struct {
	CategoryID   string
	CategoryName string
	GroupName    string
	Type         CategoryType
	ActualAmount decimal.Decimal // absolute value for expense categories
	CCAmount     decimal.Decimal // portion charged to credit accounts
	CashAmount   decimal.Decimal // ActualAmount - CCAmount
	Synthetic    bool
}

// CCPercentage returns the share of this category's spending that went on
// credit cards, as a percentage.
func (b CategoryBreakdown) CCPercentage() decimal.Decimal {
	if b.ActualAmount.IsZero() {
		return decimal.Zero
	}
	return b.CCAmount.Div(b.ActualAmount).Mul(decimal.NewFromInt(100))
}
