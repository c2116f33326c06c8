package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/truecash-dev/truecash/internal/budget"
	"github.com/truecash-dev/truecash/internal/cashflow"
	"github.com/truecash-dev/truecash/internal/config"
	"github.com/truecash-dev/truecash/internal/forecast"
	"github.com/truecash-dev/truecash/internal/model"
	"github.com/truecash-dev/truecash/internal/payoff"
	"github.com/truecash-dev/truecash/internal/period"
	"github.com/truecash-dev/truecash/internal/report"
)

func newPayoffCommand() *cobra.Command {
	var src sourceFlags
	var combined bool

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Project debt payoff scenarios from the monthly surplus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}

			ds, err := src.resolve(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			b, err := monthBudget(cmd.Context(), ds)
			if err != nil {
				return err
			}

			f := forecast.FromBudget(ds.snap, b)
			surplus := f.Surplus()
			out := cmd.OutOrStdout()

			if combined {
				err = runCombinedPayoff(cmd, cfg, ds, b, surplus)
			} else {
				err = runSweepPayoff(cmd, cfg, ds, b, surplus)
			}
			if err != nil {
				switch {
				case errors.Is(err, payoff.ErrNoDebt):
					fmt.Fprintln(out, "No debt to pay off.")
					return nil
				case errors.Is(err, payoff.ErrNoSurplus):
					fmt.Fprintln(out, "No monthly surplus available for debt payoff.")
					fmt.Fprintln(out, "Consider reducing planned expenses or increasing income.")
					return nil
				}
				return err
			}
			return nil
		},
	}

	src.register(cmd, period.Current(time.Now()))
	cmd.Flags().BoolVar(&combined, "combined", false, "project credit cards and loans side by side")

	return cmd
}

func runSweepPayoff(cmd *cobra.Command, cfg *config.Config, ds *dataSource, b *budget.Budget, surplus decimal.Decimal) error {
	ccDebt := model.DebtTotal(ds.snap.Accounts, model.AccountTypeCredit)

	scenarios, err := payoff.Sweep(payoff.SweepParams{
		TotalDebt:      ccDebt,
		MonthlySurplus: surplus,
		BasePayment:    basePayment(b, cashflow.SyntheticCCPaymentName),
		AnnualRate:     decimal.NewFromFloat(cfg.Payoff.AnnualRateCC),
		Percentages:    payoffPercentages(cfg),
		MaxMonths:      cfg.Payoff.MaxMonths,
	})
	if err != nil {
		return err
	}

	report.RenderScenarios(cmd.OutOrStdout(), ccDebt, surplus, scenarios)
	logRun("payoff", ds, "cc debt "+report.FormatCurrency(ccDebt))
	return nil
}

func runCombinedPayoff(cmd *cobra.Command, cfg *config.Config, ds *dataSource, b *budget.Budget, surplus decimal.Decimal) error {
	cc := payoff.DebtInput{
		Name:        "Credit Cards",
		Balance:     model.DebtTotal(ds.snap.Accounts, model.AccountTypeCredit),
		AnnualRate:  decimal.NewFromFloat(cfg.Payoff.AnnualRateCC),
		BasePayment: basePayment(b, cashflow.SyntheticCCPaymentName),
	}
	loan := payoff.DebtInput{
		Name:        "Loans",
		Balance:     model.DebtTotal(ds.snap.Accounts, model.AccountTypeLoan),
		AnnualRate:  decimal.NewFromFloat(cfg.Payoff.AnnualRateLoan),
		BasePayment: basePayment(b, cfg.Payoff.LoanPaymentCategory),
	}

	scenarios, err := payoff.Combined(cc, loan, surplus, payoffSplits(cfg), cfg.Payoff.MaxMonths)
	if err != nil {
		return err
	}

	report.RenderCombined(cmd.OutOrStdout(), cc, loan, scenarios)
	logRun("payoff", ds, fmt.Sprintf("combined cc %s loan %s",
		report.FormatCurrency(cc.Balance), report.FormatCurrency(loan.Balance)))
	return nil
}

func basePayment(b *budget.Budget, category string) decimal.Decimal {
	if b == nil || category == "" {
		return decimal.Zero
	}
	return b.BasePayment(category)
}

func payoffPercentages(cfg *config.Config) []decimal.Decimal {
	if len(cfg.Payoff.Percentages) == 0 {
		return payoff.DefaultPercentages
	}
	pcts := make([]decimal.Decimal, len(cfg.Payoff.Percentages))
	for i, p := range cfg.Payoff.Percentages {
		pcts[i] = decimal.NewFromFloat(p)
	}
	return pcts
}

func payoffSplits(cfg *config.Config) []payoff.SplitPair {
	if len(cfg.Payoff.CombinedSplits) == 0 {
		return payoff.DefaultSplits
	}
	splits := make([]payoff.SplitPair, len(cfg.Payoff.CombinedSplits))
	for i, s := range cfg.Payoff.CombinedSplits {
		splits[i] = payoff.SplitPair{
			CC:   decimal.NewFromFloat(s.CC),
			Loan: decimal.NewFromFloat(s.Loan),
		}
	}
	return splits
}
