package payoff

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultPercentages is the standard menu of surplus allocation shares.
var DefaultPercentages = []decimal.Decimal{
	decimal.NewFromFloat(0.25),
	decimal.NewFromFloat(0.35),
	decimal.NewFromFloat(0.50),
	decimal.NewFromFloat(0.60),
	decimal.NewFromFloat(0.65),
	decimal.NewFromFloat(0.70),
	decimal.NewFromFloat(0.75),
}

var (
	// ErrNoSurplus means percentage-of-surplus scenarios cannot run and no
	// fixed base payment exists to fall back on.
	ErrNoSurplus = errors.New("no monthly surplus available for debt payoff")
	// ErrNoDebt means the balance is already zero or in credit.
	ErrNoDebt = errors.New("no debt to pay off")
	// ErrNoPercentages marks an invalid call contract.
	ErrNoPercentages = errors.New("payment schedule has no allocation percentages")
)

// Scenario pairs one payment schedule with its projection. Pct is zero for
// a fixed base-payment-only schedule.
type Scenario struct {
	Pct            decimal.Decimal
	MonthlyPayment decimal.Decimal
	Projection     Projection
}

// WithinHorizon reports whether the scenario reaches payoff inside the
// simulated window. Renderers must present an overrun as "not within
// horizon", never as a zero-interest instant payoff.
func (s Scenario) WithinHorizon() bool {
	return s.Projection.PaidOff
}

// SweepParams configures a scenario sweep for a single debt class.
type SweepParams struct {
	TotalDebt      decimal.Decimal
	MonthlySurplus decimal.Decimal
	BasePayment    decimal.Decimal // fixed budgeted installment, zero if none
	AnnualRate     decimal.Decimal
	Percentages    []decimal.Decimal
	MaxMonths      int
}

// Sweep projects one independent scenario per allocation percentage, with
// payment = base + surplus * pct. Scenarios never interact.
//
// With no positive surplus the percentage scenarios are refused: the sweep
// degrades to the single fixed base-payment schedule when one exists,
// otherwise it reports ErrNoSurplus. A non-positive debt reports ErrNoDebt.
func Sweep(p SweepParams) ([]Scenario, error) {
	if len(p.Percentages) == 0 {
		return nil, ErrNoPercentages
	}
	if p.TotalDebt.Sign() <= 0 {
		return nil, ErrNoDebt
	}
	maxMonths := p.MaxMonths
	if maxMonths == 0 {
		maxMonths = DefaultMaxMonths
	}

	if p.MonthlySurplus.Sign() <= 0 {
		if !p.BasePayment.IsPositive() {
			return nil, ErrNoSurplus
		}
		proj, err := Project(p.TotalDebt, p.BasePayment, p.AnnualRate, maxMonths)
		if err != nil {
			return nil, err
		}
		return []Scenario{{MonthlyPayment: p.BasePayment, Projection: proj}}, nil
	}

	scenarios := make([]Scenario, 0, len(p.Percentages))
	for _, pct := range p.Percentages {
		payment := p.BasePayment.Add(p.MonthlySurplus.Mul(pct))
		proj, err := Project(p.TotalDebt, payment, p.AnnualRate, maxMonths)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, Scenario{
			Pct:            pct,
			MonthlyPayment: payment,
			Projection:     proj,
		})
	}
	return scenarios, nil
}
