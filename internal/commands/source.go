package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/truecash-dev/truecash/internal/config"
	"github.com/truecash-dev/truecash/internal/model"
	"github.com/truecash-dev/truecash/internal/monarch"
	"github.com/truecash-dev/truecash/internal/period"
	"github.com/truecash-dev/truecash/internal/runlog"
	"github.com/truecash-dev/truecash/internal/store"
)

const tokenEnv = "MONARCH_TOKEN"

// sourceFlags are the data-source flags shared by the analysis commands.
type sourceFlags struct {
	month    string
	snapshot string
}

func (f *sourceFlags) register(cmd *cobra.Command, defaultMonth period.Month) {
	cmd.Flags().StringVar(&f.month, "month", defaultMonth.String(), "month to analyze (YYYY-MM)")
	cmd.Flags().StringVar(&f.snapshot, "snapshot", "", "read a saved snapshot directory instead of fetching")
}

// dataSource is a resolved month of data plus where it came from. The
// client is nil when reading from a snapshot directory.
type dataSource struct {
	snap   *model.Snapshot
	month  period.Month
	name   string
	client *monarch.Client
}

// resolve loads the month's snapshot, either from a saved directory or
// live from the provider. Fetching without credentials is a user error.
func (f *sourceFlags) resolve(ctx context.Context, cfg *config.Config) (*dataSource, error) {
	m, err := period.Parse(f.month)
	if err != nil {
		return nil, err
	}

	if f.snapshot != "" {
		snap, err := store.Load(f.snapshot)
		if err != nil {
			return nil, err
		}
		return &dataSource{snap: snap, month: m, name: "snapshot"}, nil
	}

	token := os.Getenv(tokenEnv)
	if token == "" {
		return nil, fmt.Errorf("%s is not set; export your session token or pass --snapshot DIR", tokenEnv)
	}

	client := newProviderClient(token, cfg)
	snap, err := client.FetchMonth(ctx, m)
	if err != nil {
		return nil, err
	}
	if snap.SkippedTransactions > 0 {
		fmt.Fprintf(os.Stderr, "warning: skipped %d malformed transaction(s) from the provider\n", snap.SkippedTransactions)
	}
	return &dataSource{snap: snap, month: m, name: "live", client: client}, nil
}

func newProviderClient(token string, cfg *config.Config) *monarch.Client {
	var opts []monarch.Option
	if cfg.Provider.BaseURL != "" {
		opts = append(opts, monarch.WithBaseURL(cfg.Provider.BaseURL))
	}
	if cfg.Provider.TransactionLimit > 0 {
		opts = append(opts, monarch.WithTransactionLimit(cfg.Provider.TransactionLimit))
	}
	return monarch.NewClient(token, opts...)
}

// logRun appends a run-log row; a logging failure never fails the command.
func logRun(command string, ds *dataSource, detail string) {
	entry := runlog.Entry{
		Timestamp: time.Now().UTC(),
		Command:   command,
		Month:     ds.month.String(),
		Source:    ds.name,
		Detail:    detail,
	}
	if err := runlog.Append(".", []runlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write run log: %v\n", err)
	}
}
