// Package cashflow classifies a month of transactions into true-cash
// metrics: it separates expenses charged to credit cards from money that
// actually left cash accounts, and counts a credit-card bill payment as the
// one real cash outflow of the transfer pair.
package cashflow

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/truecash-dev/truecash/internal/model"
)

// DefaultExcludedIncomeCategories are income categories that do not count
// toward controllable cash flow.
var DefaultExcludedIncomeCategories = []string{"Dividends & Capital Gains"}

// Analyzer computes true-cash metrics over one immutable snapshot of
// transactions, accounts, and categories. It never mutates its inputs, so a
// single Analyzer is safe for repeated and concurrent use.
type Analyzer struct {
	transactions   []model.Transaction
	accounts       map[string]model.Account
	categories     model.CategorySet
	excludedIncome map[string]bool // lowercased category names
}

// NewAnalyzer creates an Analyzer. excludedIncome lists category names whose
// inflows are left out of income totals; nil means the default exclusions.
func NewAnalyzer(transactions []model.Transaction, accounts []model.Account, categories model.CategorySet, excludedIncome []string) *Analyzer {
	if excludedIncome == nil {
		excludedIncome = DefaultExcludedIncomeCategories
	}
	excluded := make(map[string]bool, len(excludedIncome))
	for _, name := range excludedIncome {
		excluded[strings.ToLower(name)] = true
	}

	byID := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	return &Analyzer{
		transactions:   transactions,
		accounts:       byID,
		categories:     categories,
		excludedIncome: excluded,
	}
}

// isCreditAccount reports whether the transaction sits on a credit account.
// Unknown account references count as neither cash nor credit.
func (a *Analyzer) isCreditAccount(t model.Transaction) bool {
	acct, ok := a.accounts[t.AccountID]
	return ok && acct.Type.IsCredit()
}

// isCCPayment reports whether the transaction is categorized as a
// credit-card bill payment. With no such category in the set, this is
// always false and CC-specific handling degrades away.
func (a *Analyzer) isCCPayment(t model.Transaction) bool {
	cat, ok := a.categories[t.CategoryID]
	return ok && cat.IsCCPayment()
}

// isExcludedIncome reports whether the transaction's category is excluded
// from income totals.
func (a *Analyzer) isExcludedIncome(t model.Transaction) bool {
	cat, ok := a.categories[t.CategoryID]
	return ok && a.excludedIncome[strings.ToLower(cat.Name)]
}

// TopLevelMetrics computes the month's headline numbers.
//
// Income sums positive amounts that are neither CC payments nor excluded
// categories. Expenses sum the absolute value of negative non-CC-payment
// amounts, split into CC and cash portions by account type. CC payments sum
// only the cash-account leg of the transfer pair, so the payment is counted
// once and never also as an expense.
func (a *Analyzer) TopLevelMetrics() model.TopLevelMetrics {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	ccExpenses := decimal.Zero
	ccPayments := decimal.Zero

	for _, t := range a.transactions {
		ccPayment := a.isCCPayment(t)

		switch {
		case t.Amount.IsPositive() && !ccPayment && !a.isExcludedIncome(t):
			totalIncome = totalIncome.Add(t.Amount)

		case t.Amount.IsNegative() && !ccPayment:
			totalExpenses = totalExpenses.Add(t.Amount.Abs())
			if a.isCreditAccount(t) {
				ccExpenses = ccExpenses.Add(t.Amount.Abs())
			}

		case t.Amount.IsNegative() && ccPayment && !a.isCreditAccount(t):
			// The debit leg on the paying cash account. The matching
			// positive leg on the card is ignored entirely.
			ccPayments = ccPayments.Add(t.Amount.Abs())
		}
	}

	return model.CalculateTopLevelMetrics(totalIncome, totalExpenses, ccExpenses, ccPayments)
}
