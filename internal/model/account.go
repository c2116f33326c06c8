package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts as reported by the budgeting provider.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCash       AccountType = "cash"
	AccountTypeDepository AccountType = "depository"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeOther      AccountType = "other"
)

// IsCashEquivalent reports whether money in this account type is spendable
// cash (checking, savings, cash, depository).
func (t AccountType) IsCashEquivalent() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash, AccountTypeDepository:
		return true
	}
	return false
}

// IsCredit reports whether this is a credit card account type.
func (t AccountType) IsCredit() bool {
	return t == AccountTypeCredit
}

// Account is one account in the provider snapshot. CurrentBalance is signed:
// liability accounts carry a negative balance for debt owed.
type Account struct {
	ID                string
	DisplayName       string
	Type              AccountType
	CurrentBalance    decimal.Decimal
	IncludeInNetWorth bool
}

// IsDebt reports whether the account currently owes money (negative balance
// on a credit or loan account).
func (a Account) IsDebt() bool {
	return (a.Type == AccountTypeCredit || a.Type == AccountTypeLoan) && a.CurrentBalance.IsNegative()
}

// DebtTotal sums the absolute balances of net-worth accounts of the given
// type that currently owe money.
func DebtTotal(accounts []Account, accountType AccountType) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a.Type != accountType || !a.IncludeInNetWorth {
			continue
		}
		if a.CurrentBalance.IsNegative() {
			total = total.Add(a.CurrentBalance.Abs())
		}
	}
	return total
}
