// Package ccactivity analyzes per-card credit activity: it splits card
// transactions into new purchases and payments received, and reports how
// much each card's debt actually moved over the analyzed window.
package ccactivity

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/truecash-dev/truecash/internal/model"
)

// CardActivity is one credit card's activity over the analyzed window.
// NetDebtReduction is payments minus purchases: positive means the balance
// genuinely shrank, negative means new spending outpaced the payments.
type CardActivity struct {
	AccountID        string
	AccountName      string
	Balance          decimal.Decimal
	Payments         decimal.Decimal
	Purchases        decimal.Decimal
	PaymentCount     int
	PurchaseCount    int
	NetDebtReduction decimal.Decimal
}

// Summary aggregates card activity across all credit accounts.
type Summary struct {
	Cards            []CardActivity
	TotalBalance     decimal.Decimal
	TotalPayments    decimal.Decimal
	TotalPurchases   decimal.Decimal
	NetDebtReduction decimal.Decimal
}

// Analyze computes per-card activity from a transaction window. Only
// transactions sitting on credit accounts count: negative amounts are new
// purchases, positive amounts are payments landing on the card. Accounts
// with no activity still appear, so a dormant card's balance is visible.
func Analyze(transactions []model.Transaction, accounts []model.Account) Summary {
	byCard := make(map[string]*CardActivity)
	var order []string

	for _, a := range accounts {
		if !a.Type.IsCredit() {
			continue
		}
		byCard[a.ID] = &CardActivity{
			AccountID:   a.ID,
			AccountName: a.DisplayName,
			Balance:     a.CurrentBalance,
			Payments:    decimal.Zero,
			Purchases:   decimal.Zero,
		}
		order = append(order, a.ID)
	}

	for _, t := range transactions {
		card, ok := byCard[t.AccountID]
		if !ok {
			continue
		}
		switch {
		case t.Amount.IsNegative():
			card.Purchases = card.Purchases.Add(t.Amount.Abs())
			card.PurchaseCount++
		case t.Amount.IsPositive():
			card.Payments = card.Payments.Add(t.Amount)
			card.PaymentCount++
		}
	}

	s := Summary{
		Cards:            make([]CardActivity, 0, len(order)),
		TotalBalance:     decimal.Zero,
		TotalPayments:    decimal.Zero,
		TotalPurchases:   decimal.Zero,
		NetDebtReduction: decimal.Zero,
	}
	for _, id := range order {
		card := byCard[id]
		card.NetDebtReduction = card.Payments.Sub(card.Purchases)

		s.Cards = append(s.Cards, *card)
		s.TotalBalance = s.TotalBalance.Add(card.Balance)
		s.TotalPayments = s.TotalPayments.Add(card.Payments)
		s.TotalPurchases = s.TotalPurchases.Add(card.Purchases)
		s.NetDebtReduction = s.NetDebtReduction.Add(card.NetDebtReduction)
	}

	sort.Slice(s.Cards, func(i, j int) bool {
		if !s.Cards[i].Purchases.Equal(s.Cards[j].Purchases) {
			return s.Cards[i].Purchases.GreaterThan(s.Cards[j].Purchases)
		}
		return s.Cards[i].AccountName < s.Cards[j].AccountName
	})
	return s
}
