package cashflow

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/truecash-dev/truecash/internal/model"
)

// SyntheticCCPaymentName labels the informational credit-card payments row
// appended to the expense breakdown.
const SyntheticCCPaymentName = "Credit Card Payments"

// IncomeBreakdown groups income transactions by category, descending by
// amount. Transactions without a resolvable category are left out.
func (a *Analyzer) IncomeBreakdown() []model.CategoryBreakdown {
	return a.breakdown(model.CategoryTypeIncome)
}

// ExpenseBreakdown groups expense transactions by category, descending by
// amount. When the month saw credit-card payments, a synthetic row carrying
// the payment total is appended; it is display-only and excluded from every
// expense total.
func (a *Analyzer) ExpenseBreakdown() []model.CategoryBreakdown {
	rows := a.breakdown(model.CategoryTypeExpense)

	ccPayments := a.TopLevelMetrics().CCPayments
	if ccPayments.IsPositive() {
		rows = append(rows, model.CategoryBreakdown{
			CategoryName: SyntheticCCPaymentName,
			GroupName:    "Financial",
			Type:         model.CategoryTypeExpense,
			ActualAmount: ccPayments,
			CashAmount:   ccPayments,
			Synthetic:    true,
		})
	}
	return rows
}

func (a *Analyzer) breakdown(catType model.CategoryType) []model.CategoryBreakdown {
	type bucket struct {
		category model.Category
		actual   decimal.Decimal
		cc       decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	for _, t := range a.transactions {
		if a.isCCPayment(t) {
			continue
		}
		cat, ok := a.categories[t.CategoryID]
		if !ok || cat.Type != catType {
			continue
		}
		if catType == model.CategoryTypeIncome && (!t.Amount.IsPositive() || a.isExcludedIncome(t)) {
			continue
		}
		if catType == model.CategoryTypeExpense && !t.Amount.IsNegative() {
			continue
		}

		b, ok := buckets[cat.ID]
		if !ok {
			b = &bucket{category: cat, actual: decimal.Zero, cc: decimal.Zero}
			buckets[cat.ID] = b
		}

		amount := t.Amount
		if catType == model.CategoryTypeExpense {
			amount = amount.Abs()
			if a.isCreditAccount(t) {
				b.cc = b.cc.Add(amount)
			}
		}
		b.actual = b.actual.Add(amount)
	}

	rows := make([]model.CategoryBreakdown, 0, len(buckets))
	for _, b := range buckets {
		row := model.CategoryBreakdown{
			CategoryID:   b.category.ID,
			CategoryName: b.category.Name,
			GroupName:    b.category.GroupName,
			Type:         catType,
			ActualAmount: b.actual,
		}
		if catType == model.CategoryTypeExpense {
			row.CCAmount = b.cc
			row.CashAmount = b.actual.Sub(b.cc)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].ActualAmount.Equal(rows[j].ActualAmount) {
			return rows[i].ActualAmount.GreaterThan(rows[j].ActualAmount)
		}
		return rows[i].CategoryName < rows[j].CategoryName
	})
	return rows
}
