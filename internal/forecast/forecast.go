// Package forecast projects the expected cash position at the end of a
// month from the starting balance and the planned budget. Its surplus
// figure feeds the payoff projector.
package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/truecash-dev/truecash/internal/budget"
	"github.com/truecash-dev/truecash/internal/model"
)

// Forecast is the expected month-end cash position.
type Forecast struct {
	StartingCash     decimal.Decimal
	ExpectedIncome   decimal.Decimal
	ExpectedExpenses decimal.Decimal
	ExpectedEndCash  decimal.Decimal
}

// Surplus is the cash expected to be free at month end, the amount the
// payoff scenarios divide up.
func (f Forecast) Surplus() decimal.Decimal {
	return f.ExpectedEndCash
}

// Compute derives the forecast: end = start + income - expenses.
func Compute(startingCash, expectedIncome, expectedExpenses decimal.Decimal) Forecast {
	return Forecast{
		StartingCash:     startingCash,
		ExpectedIncome:   expectedIncome,
		ExpectedExpenses: expectedExpenses,
		ExpectedEndCash:  startingCash.Add(expectedIncome).Sub(expectedExpenses),
	}
}

// FromBudget builds the forecast from a saved budget and the snapshot's
// starting cash balance. A nil budget forecasts from the balance alone.
func FromBudget(snap *model.Snapshot, b *budget.Budget) Forecast {
	startingCash, _ := snap.StartingCash()
	if b == nil {
		return Compute(startingCash, decimal.Zero, decimal.Zero)
	}
	return Compute(startingCash, b.TotalIncome(), b.TotalExpenses())
}
