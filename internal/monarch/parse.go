package monarch

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/truecash-dev/truecash/internal/budget"
	"github.com/truecash-dev/truecash/internal/model"
)

const dateFormat = "2006-01-02"

type rawAccount struct {
	ID                string  `json:"id"`
	DisplayName       string  `json:"displayName"`
	CurrentBalance    float64 `json:"currentBalance"`
	IncludeInNetWorth bool    `json:"includeInNetWorth"`
	Type              struct {
		Name string `json:"name"`
	} `json:"type"`
}

func parseAccounts(raw []rawAccount) []model.Account {
	accounts := make([]model.Account, 0, len(raw))
	for _, r := range raw {
		if r.ID == "" {
			continue
		}
		accounts = append(accounts, model.Account{
			ID:                r.ID,
			DisplayName:       r.DisplayName,
			Type:              model.AccountType(r.Type.Name),
			CurrentBalance:    decimal.NewFromFloat(r.CurrentBalance),
			IncludeInNetWorth: r.IncludeInNetWorth,
		})
	}
	return accounts
}

type rawCategory struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SystemCategory string `json:"systemCategory"`
	Group          struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"group"`
}

func parseCategories(raw []rawCategory) model.CategorySet {
	set := make(model.CategorySet, len(raw))
	for _, r := range raw {
		if r.ID == "" {
			continue
		}
		catType := model.CategoryType(r.Group.Type)
		switch catType {
		case model.CategoryTypeIncome, model.CategoryTypeExpense, model.CategoryTypeTransfer:
		default:
			catType = model.CategoryTypeExpense
		}
		set[r.ID] = model.Category{
			ID:             r.ID,
			Name:           r.Name,
			GroupName:      r.Group.Name,
			Type:           catType,
			SystemCategory: r.SystemCategory,
		}
	}
	return set
}

type rawTransaction struct {
	ID      string  `json:"id"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
	Notes   string  `json:"notes"`
	Account struct {
		ID string `json:"id"`
	} `json:"account"`
	Category struct {
		ID string `json:"id"`
	} `json:"category"`
	Merchant struct {
		Name string `json:"name"`
	} `json:"merchant"`
}

// parseTransactions converts raw rows, skipping ones with no ID or an
// unparseable date, and reports how many were skipped.
func parseTransactions(raw []rawTransaction) (txns []model.Transaction, skipped int) {
	txns = make([]model.Transaction, 0, len(raw))
	for _, r := range raw {
		if r.ID == "" {
			skipped++
			continue
		}
		date, err := time.Parse(dateFormat, r.Date)
		if err != nil {
			skipped++
			continue
		}
		txns = append(txns, model.Transaction{
			ID:         r.ID,
			Date:       date,
			Amount:     decimal.NewFromFloat(r.Amount),
			AccountID:  r.Account.ID,
			CategoryID: r.Category.ID,
			Merchant:   r.Merchant.Name,
			Notes:      r.Notes,
		})
	}
	return txns, skipped
}

type rawSnapshot struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

func parseSnapshots(raw []rawSnapshot) []model.BalancePoint {
	points := make([]model.BalancePoint, 0, len(raw))
	for _, r := range raw {
		date, err := time.Parse(dateFormat, r.Date)
		if err != nil {
			continue
		}
		points = append(points, model.BalancePoint{
			Date:    date,
			Balance: decimal.NewFromFloat(r.Balance),
		})
	}
	return points
}

type rawBudgetData struct {
	MonthlyAmountsByCategory []struct {
		Category struct {
			Name  string `json:"name"`
			Group struct {
				Name string `json:"name"`
				Type string `json:"type"`
			} `json:"group"`
		} `json:"category"`
		MonthlyAmounts []struct {
			PlannedCashFlowAmount float64 `json:"plannedCashFlowAmount"`
		} `json:"monthlyAmounts"`
	} `json:"monthlyAmountsByCategory"`
	TotalsByMonth []struct {
		TotalIncome struct {
			PlannedAmount float64 `json:"plannedAmount"`
		} `json:"totalIncome"`
		TotalExpenses struct {
			PlannedAmount float64 `json:"plannedAmount"`
		} `json:"totalExpenses"`
	} `json:"totalsByMonth"`
}

// parseBudget converts the provider's planned amounts into a Budget:
// positive planned lines split by group type, each side sorted descending.
func parseBudget(raw rawBudgetData, monthKey string) *budget.Budget {
	b := &budget.Budget{Month: monthKey}

	for _, entry := range raw.MonthlyAmountsByCategory {
		if len(entry.MonthlyAmounts) == 0 {
			continue
		}
		planned := entry.MonthlyAmounts[0].PlannedCashFlowAmount
		if planned <= 0 {
			continue
		}
		item := budget.LineItem{
			Name:    entry.Category.Name,
			Group:   entry.Category.Group.Name,
			Planned: planned,
		}
		switch entry.Category.Group.Type {
		case string(model.CategoryTypeIncome):
			b.Income = append(b.Income, item)
		case string(model.CategoryTypeExpense):
			b.Expenses = append(b.Expenses, item)
		}
	}

	sort.Slice(b.Income, func(i, j int) bool { return b.Income[i].Planned > b.Income[j].Planned })
	sort.Slice(b.Expenses, func(i, j int) bool { return b.Expenses[i].Planned > b.Expenses[j].Planned })
	return b
}
