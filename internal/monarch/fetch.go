package monarch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/truecash-dev/truecash/internal/budget"
	"github.com/truecash-dev/truecash/internal/model"
	"github.com/truecash-dev/truecash/internal/period"
)

// depositoryType is the aggregate account type for cash balance snapshots.
const depositoryType = "depository"

// Accounts fetches all accounts.
func (c *Client) Accounts(ctx context.Context) ([]model.Account, error) {
	var out struct {
		Accounts []rawAccount `json:"accounts"`
	}
	if err := c.query(ctx, "GetAccounts", accountsQuery, nil, &out); err != nil {
		return nil, err
	}
	return parseAccounts(out.Accounts), nil
}

// Categories fetches the category set.
func (c *Client) Categories(ctx context.Context) (model.CategorySet, error) {
	var out struct {
		Categories []rawCategory `json:"categories"`
	}
	if err := c.query(ctx, "GetCategories", categoriesQuery, nil, &out); err != nil {
		return nil, err
	}
	return parseCategories(out.Categories), nil
}

// Transactions fetches every transaction in the month, paging until the
// provider reports no more results. skipped counts rows the provider
// returned but parsing dropped.
func (c *Client) Transactions(ctx context.Context, m period.Month) (all []model.Transaction, skipped int, err error) {
	start, end := m.Range()

	offset := 0
	for {
		var out struct {
			AllTransactions struct {
				TotalCount int              `json:"totalCount"`
				Results    []rawTransaction `json:"results"`
			} `json:"allTransactions"`
		}
		vars := map[string]any{
			"startDate": start.Format(dateFormat),
			"endDate":   end.Format(dateFormat),
			"limit":     c.txnLimit,
			"offset":    offset,
		}
		if err := c.query(ctx, "GetTransactions", transactionsQuery, vars, &out); err != nil {
			return nil, 0, err
		}

		page, dropped := parseTransactions(out.AllTransactions.Results)
		all = append(all, page...)
		skipped += dropped

		offset += len(out.AllTransactions.Results)
		if len(out.AllTransactions.Results) < c.txnLimit || offset >= out.AllTransactions.TotalCount {
			return all, skipped, nil
		}
	}
}

// AggregateSnapshots fetches daily cash balance points for the month
// across depository accounts.
func (c *Client) AggregateSnapshots(ctx context.Context, m period.Month) ([]model.BalancePoint, error) {
	start, end := m.Range()

	var out struct {
		AggregateSnapshots []rawSnapshot `json:"aggregateSnapshots"`
	}
	vars := map[string]any{
		"startDate":   start.Format(dateFormat),
		"endDate":     end.Format(dateFormat),
		"accountType": depositoryType,
	}
	if err := c.query(ctx, "GetAggregateSnapshots", snapshotsQuery, vars, &out); err != nil {
		return nil, err
	}
	return parseSnapshots(out.AggregateSnapshots), nil
}

// BudgetData fetches the provider-side planned budget for a month.
func (c *Client) BudgetData(ctx context.Context, m period.Month) (*budget.Budget, error) {
	start, _ := m.Range()

	var out struct {
		BudgetData rawBudgetData `json:"budgetData"`
	}
	vars := map[string]any{
		"startMonth": start.Format(dateFormat),
		"endMonth":   start.Format(dateFormat),
	}
	if err := c.query(ctx, "GetBudgetData", budgetQuery, vars, &out); err != nil {
		return nil, err
	}
	return parseBudget(out.BudgetData, m.String()), nil
}

// FetchMonth assembles a complete snapshot for one month. The four fetches
// run concurrently; the returned snapshot is immutable input for the
// analysis core.
func (c *Client) FetchMonth(ctx context.Context, m period.Month) (*model.Snapshot, error) {
	snap := &model.Snapshot{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := c.Accounts(ctx)
		if err != nil {
			return err
		}
		snap.Accounts = accounts
		return nil
	})
	g.Go(func() error {
		categories, err := c.Categories(ctx)
		if err != nil {
			return err
		}
		snap.Categories = categories
		return nil
	})
	g.Go(func() error {
		txns, skipped, err := c.Transactions(ctx, m)
		if err != nil {
			return err
		}
		snap.Transactions = txns
		snap.SkippedTransactions = skipped
		return nil
	})
	g.Go(func() error {
		balances, err := c.AggregateSnapshots(ctx, m)
		if err != nil {
			return err
		}
		snap.Balances = balances
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", m, err)
	}
	return snap, nil
}
