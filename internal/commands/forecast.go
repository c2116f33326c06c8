package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/truecash-dev/truecash/internal/budget"
	"github.com/truecash-dev/truecash/internal/config"
	"github.com/truecash-dev/truecash/internal/forecast"
	"github.com/truecash-dev/truecash/internal/period"
	"github.com/truecash-dev/truecash/internal/report"
)

func newForecastCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project this month's ending cash from the saved budget",
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
			report.RenderForecast(cmd.OutOrStdout(), ds.month, f)

			logRun("forecast", ds, "surplus "+report.FormatCurrencySigned(f.Surplus()))
			return nil
		},
	}

	src.register(cmd, period.Current(time.Now()))

	return cmd
}

// monthBudget loads the saved budget for the month, pulling it from the
// provider and saving it locally on first use of a live source. No budget
// anywhere is fine; callers forecast from the balance alone.
func monthBudget(ctx context.Context, ds *dataSource) (*budget.Budget, error) {
	b, err := budget.Load(".", ds.month)
	if err != nil {
		return nil, err
	}
	if b != nil || ds.client == nil {
		return b, nil
	}

	b, err = ds.client.BudgetData(ctx, ds.month)
	if err != nil {
		return nil, err
	}
	if err := budget.Save(".", ds.month, b); err != nil {
		return nil, err
	}
	return b, nil
}
