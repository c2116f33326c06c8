package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/truecash-dev/truecash/internal/config"
	"github.com/truecash-dev/truecash/internal/period"
	"github.com/truecash-dev/truecash/internal/report"
	"github.com/truecash-dev/truecash/internal/store"
)

func newCashCommand() *cobra.Command {
	var src sourceFlags
	var save bool

	cmd := &cobra.Command{
		Use:   "cash",
		Short: "Classify a month's spending into true cash and credit",
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

			if save && ds.client != nil {
				dir := filepath.Join("snapshots", ds.month.String())
				if err := store.Save(dir, ds.snap); err != nil {
					return fmt.Errorf("saving snapshot: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved snapshot to %s\n\n", dir)
			}

			r := report.BuildMonth(ds.snap, ds.month, cfg.Analysis.ExcludedIncomeCategories)
			r.RenderCash(cmd.OutOrStdout())

			logRun("cash", ds, "true cash "+report.FormatCurrencySigned(r.Metrics.TrueCashRemaining))
			return nil
		},
	}

	// Spending analysis looks back at the last complete month.
	src.register(cmd, period.Previous(time.Now()))
	cmd.Flags().BoolVar(&save, "save", false, "save fetched data under snapshots/<month> for replay")

	return cmd
}
