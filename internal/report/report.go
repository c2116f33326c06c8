// Package report assembles a month's analysis into printable output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/truecash-dev/truecash/internal/cashflow"
	"github.com/truecash-dev/truecash/internal/ccactivity"
	"github.com/truecash-dev/truecash/internal/forecast"
	"github.com/truecash-dev/truecash/internal/model"
	"github.com/truecash-dev/truecash/internal/payoff"
	"github.com/truecash-dev/truecash/internal/period"
)

// MonthReport is one month's full cash-flow picture.
type MonthReport struct {
	Month        period.Month
	Metrics      model.TopLevelMetrics
	Income       []model.CategoryBreakdown
	Expenses     []model.CategoryBreakdown
	StartingCash decimal.Decimal
	EndingCash   decimal.Decimal
	HasBalances  bool
}

// BuildMonth runs the classifier over a snapshot and assembles the report.
func BuildMonth(snap *model.Snapshot, m period.Month, excludedIncome []string) *MonthReport {
	a := cashflow.NewAnalyzer(snap.Transactions, snap.Accounts, snap.Categories, excludedIncome)

	r := &MonthReport{
		Month:    m,
		Metrics:  a.TopLevelMetrics(),
		Income:   a.IncomeBreakdown(),
		Expenses: a.ExpenseBreakdown(),
	}
	if start, ok := snap.StartingCash(); ok {
		end, _ := snap.EndingCash()
		r.StartingCash = start
		r.EndingCash = end
		r.HasBalances = true
	}
	return r
}

// FormatCurrency renders an amount as "$1,234.56"; negatives as "-$1,234.56".
func FormatCurrency(d decimal.Decimal) string {
	return formatCurrency(d, false)
}

// FormatCurrencySigned is FormatCurrency with a leading + on positive amounts.
func FormatCurrencySigned(d decimal.Decimal) string {
	return formatCurrency(d, true)
}

func formatCurrency(d decimal.Decimal, showSign bool) string {
	sign := ""
	switch {
	case d.IsNegative():
		sign = "-"
		d = d.Abs()
	case showSign && d.IsPositive():
		sign = "+"
	}

	fixed := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(intPart) + "." + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// RenderCash writes the month's classification summary and category tables.
func (r *MonthReport) RenderCash(w io.Writer) {
	fmt.Fprintf(w, "Cash Flow Analysis: %s\n\n", r.Month.Label())

	m := r.Metrics
	fmt.Fprintf(w, "  Total income:         %s\n", FormatCurrency(m.TotalIncome))
	fmt.Fprintf(w, "  Total expenses:       %s\n", FormatCurrency(m.TotalExpenses))
	fmt.Fprintf(w, "  New CC spending:      %s\n", FormatCurrency(m.TotalNewCCSpending))
	fmt.Fprintf(w, "  Cash expenses:        %s\n", FormatCurrency(m.CashExpenses))
	fmt.Fprintf(w, "  CC payments:          %s\n", FormatCurrency(m.CCPayments))
	fmt.Fprintf(w, "  True cash remaining:  %s\n\n", FormatCurrencySigned(m.TrueCashRemaining))

	if r.HasBalances {
		fmt.Fprintf(w, "  Starting cash:        %s\n", FormatCurrency(r.StartingCash))
		fmt.Fprintf(w, "  Ending cash:          %s\n\n", FormatCurrency(r.EndingCash))
	}

	if len(r.Income) > 0 {
		fmt.Fprintln(w, "Income by category")
		for _, b := range r.Income {
			fmt.Fprintf(w, "  %-32s %12s\n", b.CategoryName, FormatCurrency(b.ActualAmount))
		}
		fmt.Fprintln(w)
	}

	if len(r.Expenses) > 0 {
		fmt.Fprintln(w, "Expenses by category")
		fmt.Fprintf(w, "  %-32s %12s %12s %12s\n", "category", "total", "on card", "cash")
		for _, b := range r.Expenses {
			name := b.CategoryName
			if b.Synthetic {
				name += " *"
			}
			fmt.Fprintf(w, "  %-32s %12s %12s %12s\n",
				name,
				FormatCurrency(b.ActualAmount),
				FormatCurrency(b.CCAmount),
				FormatCurrency(b.CashAmount))
		}
		fmt.Fprintln(w, "  * transfer to card balances, excluded from expense totals")
	}
}

// RenderCards writes the per-card credit activity report.
func RenderCards(w io.Writer, m period.Month, s ccactivity.Summary) {
	fmt.Fprintf(w, "Credit Card Activity: %s\n\n", m.Label())

	if len(s.Cards) == 0 {
		fmt.Fprintln(w, "  No credit card accounts found.")
		return
	}

	fmt.Fprintf(w, "  %-24s %12s %12s %12s %12s\n",
		"card", "balance", "purchases", "payments", "net paid off")
	for _, card := range s.Cards {
		fmt.Fprintf(w, "  %-24s %12s %12s %12s %12s\n",
			card.AccountName,
			FormatCurrency(card.Balance),
			FormatCurrency(card.Purchases),
			FormatCurrency(card.Payments),
			FormatCurrencySigned(card.NetDebtReduction))
	}

	fmt.Fprintf(w, "\n  Total card debt:      %s\n", FormatCurrency(s.TotalBalance.Abs()))
	fmt.Fprintf(w, "  Total new purchases:  %s\n", FormatCurrency(s.TotalPurchases))
	fmt.Fprintf(w, "  Total payments:       %s\n", FormatCurrency(s.TotalPayments))
	fmt.Fprintf(w, "  Net debt reduction:   %s\n", FormatCurrencySigned(s.NetDebtReduction))
}

// RenderForecast writes the budget surplus projection.
func RenderForecast(w io.Writer, m period.Month, f forecast.Forecast) {
	fmt.Fprintf(w, "Budget Forecast: %s\n\n", m.Label())
	fmt.Fprintf(w, "  Starting cash:      %s\n", FormatCurrency(f.StartingCash))
	fmt.Fprintf(w, "  Expected income:    %s\n", FormatCurrency(f.ExpectedIncome))
	fmt.Fprintf(w, "  Expected expenses:  %s\n", FormatCurrency(f.ExpectedExpenses))
	fmt.Fprintf(w, "  Expected end cash:  %s\n", FormatCurrencySigned(f.ExpectedEndCash))
}

// RenderScenarios writes the payoff sweep as a table, one scenario per row.
func RenderScenarios(w io.Writer, totalDebt, surplus decimal.Decimal, scenarios []payoff.Scenario) {
	fmt.Fprintf(w, "Debt Payoff Projections\n\n")
	fmt.Fprintf(w, "  Total debt:       %s\n", FormatCurrency(totalDebt))
	fmt.Fprintf(w, "  Monthly surplus:  %s\n\n", FormatCurrency(surplus))

	fmt.Fprintf(w, "  %8s %14s %10s %14s %14s\n",
		"surplus%", "payment/mo", "months", "interest", "total paid")
	for _, s := range scenarios {
		// A schedule that outlives the horizon has no payoff interest or
		// total to report; the window sums would misread as final figures.
		interest, paid := "N/A", "N/A"
		if s.WithinHorizon() {
			interest = FormatCurrency(s.Projection.TotalInterest)
			paid = FormatCurrency(s.Projection.TotalPaid)
		}
		fmt.Fprintf(w, "  %7s%% %14s %10s %14s %14s\n",
			s.Pct.Mul(decimal.NewFromInt(100)).StringFixed(0),
			FormatCurrency(s.MonthlyPayment),
			horizonMonths(s),
			interest,
			paid)
	}
}

// RenderCombined writes the two-debt split table.
func RenderCombined(w io.Writer, cc, loan payoff.DebtInput, scenarios []payoff.CombinedScenario) {
	fmt.Fprintf(w, "Combined Debt Payoff Projections\n\n")
	fmt.Fprintf(w, "  %-24s %s\n", cc.Name+":", FormatCurrency(cc.Balance))
	fmt.Fprintf(w, "  %-24s %s\n\n", loan.Name+":", FormatCurrency(loan.Balance))

	fmt.Fprintf(w, "  %12s %14s %10s %14s %10s\n",
		"split cc/ln", "cc pay/mo", "cc months", "loan pay/mo", "ln months")
	for _, s := range scenarios {
		split := fmt.Sprintf("%s/%s",
			s.Split.CC.Mul(decimal.NewFromInt(100)).StringFixed(0),
			s.Split.Loan.Mul(decimal.NewFromInt(100)).StringFixed(0))
		fmt.Fprintf(w, "  %12s %14s %10s %14s %10s\n",
			split,
			FormatCurrency(s.CC.MonthlyPayment),
			horizonMonths(s.CC),
			FormatCurrency(s.Loan.MonthlyPayment),
			horizonMonths(s.Loan))
	}
}

// horizonMonths renders a month count, marking a horizon overrun as a
// lower bound rather than a payoff.
func horizonMonths(s payoff.Scenario) string {
	if !s.WithinHorizon() {
		return fmt.Sprintf(">%d", s.Projection.Months)
	}
	return fmt.Sprintf("%d", s.Projection.Months)
}
