// Package payoff simulates monthly amortization of a debt balance and
// evaluates payment scenarios over an available cash surplus.
package payoff

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultMaxMonths is the projection horizon: ten years.
const DefaultMaxMonths = 120

var (
	// ErrNegativeRate marks an invalid call contract.
	ErrNegativeRate = errors.New("annual interest rate must not be negative")
	// ErrNegativePayment marks an invalid call contract.
	ErrNegativePayment = errors.New("monthly payment must not be negative")
)

var twelve = decimal.NewFromInt(12)

// MonthBalance is one point on a projection timeline.
type MonthBalance struct {
	Month   int
	Balance decimal.Decimal
}

// Projection is the result of simulating one payment schedule. Month 0 is
// always present with the starting balance. When PaidOff is false the debt
// survived the full horizon; Months then equals the horizon length and the
// interest and paid totals cover only the simulated window.
type Projection struct {
	Timeline      []MonthBalance
	TotalInterest decimal.Decimal
	TotalPaid     decimal.Decimal
	Months        int
	PaidOff       bool
}

// Project simulates paying down totalDebt with a fixed monthly payment.
// Each month interest accrues on the running balance first, then the
// payment is applied, capped at the remaining balance. The
// interest-then-payment ordering is load-bearing: it changes total interest
// relative to the reverse ordering.
//
// A non-positive totalDebt short-circuits to an already-paid-off projection
// without simulating. A zero payment is allowed and runs the horizon out.
func Project(totalDebt, monthlyPayment, annualRate decimal.Decimal, maxMonths int) (Projection, error) {
	if annualRate.IsNegative() {
		return Projection{}, ErrNegativeRate
	}
	if monthlyPayment.IsNegative() {
		return Projection{}, ErrNegativePayment
	}
	if maxMonths <= 0 {
		return Projection{}, fmt.Errorf("max months must be positive, got %d", maxMonths)
	}

	if totalDebt.Sign() <= 0 {
		return Projection{
			Timeline:      []MonthBalance{{Month: 0, Balance: decimal.Zero}},
			TotalInterest: decimal.Zero,
			TotalPaid:     decimal.Zero,
			Months:        0,
			PaidOff:       true,
		}, nil
	}

	monthlyRate := annualRate.Div(twelve)

	balance := totalDebt
	timeline := []MonthBalance{{Month: 0, Balance: balance}}
	totalInterest := decimal.Zero
	totalPaid := decimal.Zero

	for month := 1; month <= maxMonths; month++ {
		interest := balance.Mul(monthlyRate)
		balance = balance.Add(interest)
		totalInterest = totalInterest.Add(interest)

		payment := decimal.Min(monthlyPayment, balance)
		balance = balance.Sub(payment)
		totalPaid = totalPaid.Add(payment)

		timeline = append(timeline, MonthBalance{Month: month, Balance: balance})

		if balance.Sign() <= 0 {
			break
		}
	}

	return Projection{
		Timeline:      timeline,
		TotalInterest: totalInterest,
		TotalPaid:     totalPaid,
		Months:        len(timeline) - 1,
		PaidOff:       balance.Sign() <= 0,
	}, nil
}

// FinalBalance returns the balance at the end of the projection window.
func (p Projection) FinalBalance() decimal.Decimal {
	if len(p.Timeline) == 0 {
		return decimal.Zero
	}
	return p.Timeline[len(p.Timeline)-1].Balance
}
