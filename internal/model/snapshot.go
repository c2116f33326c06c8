package model

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BalancePoint is one aggregate cash-balance observation.
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// Snapshot is a complete, already-paginated view of one month's data as
// supplied by the fetch collaborator. The analysis core treats it as
// immutable for the duration of a run.
type Snapshot struct {
	Accounts     []Account
	Categories   CategorySet
	Transactions []Transaction
	Balances     []BalancePoint

	// SkippedTransactions counts provider rows dropped during parsing.
	// It is set on fetch only; saved snapshots load with zero.
	SkippedTransactions int
}

// AccountsByID returns an ID-keyed lookup over the snapshot accounts.
func (s *Snapshot) AccountsByID() map[string]Account {
	byID := make(map[string]Account, len(s.Accounts))
	for _, a := range s.Accounts {
		byID[a.ID] = a
	}
	return byID
}

// StartingCash returns the earliest balance observation in the snapshot.
// ok is false when no balance data was fetched.
func (s *Snapshot) StartingCash() (decimal.Decimal, bool) {
	p, ok := s.boundaryBalance(true)
	return p, ok
}

// EndingCash returns the latest balance observation in the snapshot.
func (s *Snapshot) EndingCash() (decimal.Decimal, bool) {
	p, ok := s.boundaryBalance(false)
	return p, ok
}

func (s *Snapshot) boundaryBalance(first bool) (decimal.Decimal, bool) {
	if len(s.Balances) == 0 {
		return decimal.Zero, false
	}
	points := make([]BalancePoint, len(s.Balances))
	copy(points, s.Balances)
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	if first {
		return points[0].Balance, true
	}
	return points[len(points)-1].Balance, true
}
