package payoff

import (
	"errors"

	"github.com/shopspring/decimal"
)

// SplitPair is one hand-picked division of the surplus between the credit
// card balance and the loan balance. The shares need not sum to one; the
// remainder stays in cash.
type SplitPair struct {
	CC   decimal.Decimal
	Loan decimal.Decimal
}

// DefaultSplits is the curated scenario menu for the combined mode.
var DefaultSplits = []SplitPair{
	{CC: decimal.NewFromFloat(0.50), Loan: decimal.NewFromFloat(0.25)},
	{CC: decimal.NewFromFloat(0.60), Loan: decimal.NewFromFloat(0.15)},
	{CC: decimal.NewFromFloat(0.35), Loan: decimal.NewFromFloat(0.40)},
	{CC: decimal.NewFromFloat(0.25), Loan: decimal.NewFromFloat(0.50)},
	{CC: decimal.NewFromFloat(0.75), Loan: decimal.Zero},
}

// ErrNoSplits marks an invalid call contract for the combined mode.
var ErrNoSplits = errors.New("combined payoff has no allocation splits")

// DebtInput describes one debt class for the combined mode. BasePayment is
// a budgeted installment paid regardless of the surplus split (typical for
// loans, zero for cards).
type DebtInput struct {
	Name        string
	Balance     decimal.Decimal
	AnnualRate  decimal.Decimal
	BasePayment decimal.Decimal
}

// CombinedScenario holds the two independent projections for one split.
// The balances are never merged; each side amortizes under its own rate.
type CombinedScenario struct {
	Split SplitPair
	CC    Scenario
	Loan  Scenario
}

// Combined runs the curated split table against a credit card balance and a
// loan balance side by side. Both debts must be positive for a scenario to
// make sense; a side with no debt gets a trivially paid-off projection so
// the other side still reports.
func Combined(cc, loan DebtInput, monthlySurplus decimal.Decimal, splits []SplitPair, maxMonths int) ([]CombinedScenario, error) {
	if len(splits) == 0 {
		return nil, ErrNoSplits
	}
	if cc.Balance.Sign() <= 0 && loan.Balance.Sign() <= 0 {
		return nil, ErrNoDebt
	}
	if monthlySurplus.Sign() <= 0 && !loan.BasePayment.IsPositive() {
		return nil, ErrNoSurplus
	}
	if maxMonths == 0 {
		maxMonths = DefaultMaxMonths
	}

	surplus := monthlySurplus
	if surplus.IsNegative() {
		surplus = decimal.Zero
	}

	scenarios := make([]CombinedScenario, 0, len(splits))
	for _, split := range splits {
		ccPayment := cc.BasePayment.Add(surplus.Mul(split.CC))
		loanPayment := loan.BasePayment.Add(surplus.Mul(split.Loan))

		ccProj, err := Project(cc.Balance, ccPayment, cc.AnnualRate, maxMonths)
		if err != nil {
			return nil, err
		}
		loanProj, err := Project(loan.Balance, loanPayment, loan.AnnualRate, maxMonths)
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, CombinedScenario{
			Split: split,
			CC:    Scenario{Pct: split.CC, MonthlyPayment: ccPayment, Projection: ccProj},
			Loan:  Scenario{Pct: split.Loan, MonthlyPayment: loanPayment, Projection: loanProj},
		})
	}
	return scenarios, nil
}
