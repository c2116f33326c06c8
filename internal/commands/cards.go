package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/truecash-dev/truecash/internal/ccactivity"
	"github.com/truecash-dev/truecash/internal/config"
	"github.com/truecash-dev/truecash/internal/period"
	"github.com/truecash-dev/truecash/internal/report"
)

func newCardsCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Report per-card purchases, payments, and net debt change",
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

			s := ccactivity.Analyze(ds.snap.Transactions, ds.snap.Accounts)
			report.RenderCards(cmd.OutOrStdout(), ds.month, s)

			logRun("cards", ds, "net reduction "+report.FormatCurrencySigned(s.NetDebtReduction))
			return nil
		},
	}

	// Card activity, like the cash report, looks at the last complete month.
	src.register(cmd, period.Previous(time.Now()))

	return cmd
}
