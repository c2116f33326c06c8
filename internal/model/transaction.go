package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one provider transaction.
type Transaction struct {
	ID         string
	Date       time.Time
	Amount     decimal.Decimal // negative = outflow, positive = inflow
	AccountID  string
	CategoryID string
	Merchant   string
	Notes      string
}
