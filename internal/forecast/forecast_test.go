package forecast

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/truecash-dev/truecash/internal/budget"
	"github.com/truecash-dev/truecash/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCompute(t *testing.T) {
	f := Compute(dec("3500"), dec("7000"), dec("2800.50"))

	assert.True(t, f.ExpectedEndCash.Equal(dec("7699.5")), "end cash: %s", f.ExpectedEndCash)
	assert.True(t, f.Surplus().Equal(f.ExpectedEndCash))
}

func TestCompute_NegativeSurplus(t *testing.T) {
	f := Compute(dec("200"), dec("1000"), dec("4000"))
	assert.True(t, f.ExpectedEndCash.IsNegative())
}

func TestFromBudget(t *testing.T) {
	snap := &model.Snapshot{
		Balances: []model.BalancePoint{
			{Date: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), Balance: dec("4100")},
			{Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Balance: dec("3500")},
		},
	}
	b := &budget.Budget{
		Income:   []budget.LineItem{{Name: "Paychecks", Planned: 7000}},
		Expenses: []budget.LineItem{{Name: "Rent", Planned: 1850}},
	}

	f := FromBudget(snap, b)
	// Starting cash is the earliest balance point regardless of slice order.
	assert.True(t, f.StartingCash.Equal(dec("3500")))
	assert.True(t, f.ExpectedEndCash.Equal(dec("8650")))
}

func TestFromBudget_NoBudget(t *testing.T) {
	snap := &model.Snapshot{
		Balances: []model.BalancePoint{
			{Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Balance: dec("3500")},
		},
	}
	f := FromBudget(snap, nil)
	assert.True(t, f.ExpectedEndCash.Equal(dec("3500")))
}

func TestFromBudget_NoBalances(t *testing.T) {
	f := FromBudget(&model.Snapshot{}, nil)
	assert.True(t, f.StartingCash.IsZero())
}
