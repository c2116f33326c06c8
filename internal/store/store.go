// Package store persists provider snapshots as a directory of CSV files,
// so analyses replay offline against exactly the data once fetched.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/truecash-dev/truecash/internal/model"
)

const (
	accountsFile     = "accounts.csv"
	transactionsFile = "transactions.csv"
	categoriesFile   = "categories.csv"
	balancesFile     = "balances.csv"
)

// Load reads a snapshot directory. Accounts, transactions, and categories
// are required; balances.csv is optional (analyses degrade to reporting no
// cash balances).
func Load(dir string) (*model.Snapshot, error) {
	snap := &model.Snapshot{Categories: model.CategorySet{}}

	if err := loadFile(dir, accountsFile, true, func(rec []string) error {
		a, err := UnmarshalAccount(rec)
		if err != nil {
			return err
		}
		snap.Accounts = append(snap.Accounts, a)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, categoriesFile, true, func(rec []string) error {
		c, err := UnmarshalCategory(rec)
		if err != nil {
			return err
		}
		snap.Categories[c.ID] = c
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, transactionsFile, true, func(rec []string) error {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return err
		}
		snap.Transactions = append(snap.Transactions, t)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, balancesFile, false, func(rec []string) error {
		p, err := UnmarshalBalance(rec)
		if err != nil {
			return err
		}
		snap.Balances = append(snap.Balances, p)
		return nil
	}); err != nil {
		return nil, err
	}

	return snap, nil
}

func loadFile(dir, name string, required bool, unmarshal func([]string) error) error {
	f, err := os.Open(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		if required {
			return fmt.Errorf("snapshot %s: missing %s", dir, name)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	headers := map[string]string{
		accountsFile:     AccountsHeader,
		transactionsFile: TransactionsHeader,
		categoriesFile:   CategoriesHeader,
		balancesFile:     BalancesHeader,
	}
	if err := readRows(f, headers[name], unmarshal); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Save writes a snapshot to a directory, creating it if needed.
func Save(dir string, snap *model.Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	accountRows := make([][]string, 0, len(snap.Accounts))
	for _, a := range snap.Accounts {
		accountRows = append(accountRows, MarshalAccount(a))
	}
	if err := saveFile(dir, accountsFile, AccountsHeader, accountRows); err != nil {
		return err
	}

	categoryRows := make([][]string, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		categoryRows = append(categoryRows, MarshalCategory(c))
	}
	if err := saveFile(dir, categoriesFile, CategoriesHeader, categoryRows); err != nil {
		return err
	}

	txnRows := make([][]string, 0, len(snap.Transactions))
	for _, t := range snap.Transactions {
		txnRows = append(txnRows, MarshalTransaction(t))
	}
	if err := saveFile(dir, transactionsFile, TransactionsHeader, txnRows); err != nil {
		return err
	}

	balanceRows := make([][]string, 0, len(snap.Balances))
	for _, p := range snap.Balances {
		balanceRows = append(balanceRows, MarshalBalance(p))
	}
	return saveFile(dir, balancesFile, BalancesHeader, balanceRows)
}

func saveFile(dir, name, header string, rows [][]string) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := writeRows(f, header, rows); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
