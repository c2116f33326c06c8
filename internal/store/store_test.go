package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truecash-dev/truecash/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Accounts: []model.Account{
			{ID: "checking-1", DisplayName: "Chase Checking", Type: model.AccountTypeChecking, CurrentBalance: dec("3500"), IncludeInNetWorth: true},
			{ID: "cc-1", DisplayName: "Chase Sapphire", Type: model.AccountTypeCredit, CurrentBalance: dec("-1245.67"), IncludeInNetWorth: true},
		},
		Categories: model.CategorySet{
			"cat-1": {ID: "cat-1", Name: "Paychecks", GroupName: "Income", Type: model.CategoryTypeIncome},
			"cat-2": {ID: "cat-2", Name: "Credit Card Payment", GroupName: "Transfers", Type: model.CategoryTypeTransfer, SystemCategory: model.SystemCategoryCCPayment},
		},
		Transactions: []model.Transaction{
			{ID: "t1", Date: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), Amount: dec("5000"), AccountID: "checking-1", CategoryID: "cat-1", Merchant: "Employer", Notes: "salary"},
			{ID: "t2", Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), Amount: dec("-800"), AccountID: "checking-1", CategoryID: "cat-2"},
		},
		Balances: []model.BalancePoint{
			{Date: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), Balance: dec("3500")},
			{Date: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), Balance: dec("4100.25")},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, sampleSnapshot()))

	got, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, got.Accounts, 2)
	assert.Equal(t, model.AccountTypeCredit, got.Accounts[1].Type)
	assert.True(t, got.Accounts[1].CurrentBalance.Equal(dec("-1245.67")))
	assert.True(t, got.Accounts[1].IncludeInNetWorth)

	require.Len(t, got.Categories, 2)
	ccpay, ok := got.Categories.CCPayment()
	require.True(t, ok)
	assert.Equal(t, "cat-2", ccpay.ID)

	require.Len(t, got.Transactions, 2)
	assert.True(t, got.Transactions[0].Amount.Equal(dec("5000")))
	assert.Equal(t, "salary", got.Transactions[0].Notes)
	assert.Equal(t, time.December, got.Transactions[1].Date.Month())

	require.Len(t, got.Balances, 2)
	start, ok := got.StartingCash()
	require.True(t, ok)
	assert.True(t, start.Equal(dec("3500")))
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, sampleSnapshot()))
	require.NoError(t, os.Remove(filepath.Join(dir, "transactions.csv")))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transactions.csv")
}

func TestLoad_BalancesOptional(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, sampleSnapshot()))
	require.NoError(t, os.Remove(filepath.Join(dir, "balances.csv")))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, got.Balances)

	_, ok := got.StartingCash()
	assert.False(t, ok)
}

func TestLoad_MalformedRow(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, sampleSnapshot()))

	bad := "id,date,amount,account_id,category_id,merchant,notes\nt1,not-a-date,5,a,c,m,n\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte(bad), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestUnmarshalAccount_FieldCount(t *testing.T) {
	_, err := UnmarshalAccount([]string{"only", "four", "fields", "here"})
	require.Error(t, err)
}
