package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/truecash-dev/truecash/internal/model"
)

const dateFormat = "2006-01-02"

// AccountsHeader is the CSV header for accounts.csv.
const AccountsHeader = "id,display_name,type,current_balance,include_in_net_worth"

const (
	acctNumFields = 5
	acctColID     = 0
	acctColName   = 1
	acctColType   = 2
	acctColBal    = 3
	acctColNW     = 4
)

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a model.Account) []string {
	row := make([]string, acctNumFields)
	row[acctColID] = a.ID
	row[acctColName] = a.DisplayName
	row[acctColType] = string(a.Type)
	row[acctColBal] = a.CurrentBalance.String()
	row[acctColNW] = strconv.FormatBool(a.IncludeInNetWorth)
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != acctNumFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", acctNumFields, len(record))
	}

	balance, err := decimal.NewFromString(record[acctColBal])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[acctColBal], err)
	}

	netWorth, err := strconv.ParseBool(record[acctColNW])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing include_in_net_worth %q: %w", record[acctColNW], err)
	}

	return model.Account{
		ID:                record[acctColID],
		DisplayName:       record[acctColName],
		Type:              model.AccountType(record[acctColType]),
		CurrentBalance:    balance,
		IncludeInNetWorth: netWorth,
	}, nil
}

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "id,date,amount,account_id,category_id,merchant,notes"

const (
	txnNumFields   = 7
	txnColID       = 0
	txnColDate     = 1
	txnColAmount   = 2
	txnColAccount  = 3
	txnColCategory = 4
	txnColMerchant = 5
	txnColNotes    = 6
)

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, txnNumFields)
	row[txnColID] = t.ID
	row[txnColDate] = t.Date.Format(dateFormat)
	row[txnColAmount] = t.Amount.String()
	row[txnColAccount] = t.AccountID
	row[txnColCategory] = t.CategoryID
	row[txnColMerchant] = t.Merchant
	row[txnColNotes] = t.Notes
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != txnNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", txnNumFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[txnColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[txnColDate], err)
	}

	amount, err := decimal.NewFromString(record[txnColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[txnColAmount], err)
	}

	return model.Transaction{
		ID:         record[txnColID],
		Date:       date,
		Amount:     amount,
		AccountID:  record[txnColAccount],
		CategoryID: record[txnColCategory],
		Merchant:   record[txnColMerchant],
		Notes:      record[txnColNotes],
	}, nil
}

// CategoriesHeader is the CSV header for categories.csv.
const CategoriesHeader = "id,name,group_name,type,system_category"

const (
	catNumFields = 5
	catColID     = 0
	catColName   = 1
	catColGroup  = 2
	catColType   = 3
	catColSystem = 4
)

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(c model.Category) []string {
	row := make([]string, catNumFields)
	row[catColID] = c.ID
	row[catColName] = c.Name
	row[catColGroup] = c.GroupName
	row[catColType] = string(c.Type)
	row[catColSystem] = c.SystemCategory
	return row
}

// UnmarshalCategory converts a CSV row to a Category.
func UnmarshalCategory(record []string) (model.Category, error) {
	if len(record) != catNumFields {
		return model.Category{}, fmt.Errorf("expected %d fields, got %d", catNumFields, len(record))
	}
	return model.Category{
		ID:             record[catColID],
		Name:           record[catColName],
		GroupName:      record[catColGroup],
		Type:           model.CategoryType(record[catColType]),
		SystemCategory: record[catColSystem],
	}, nil
}

// BalancesHeader is the CSV header for balances.csv.
const BalancesHeader = "date,balance"

const (
	balNumFields  = 2
	balColDate    = 0
	balColBalance = 1
)

// MarshalBalance converts a BalancePoint to a CSV row.
func MarshalBalance(p model.BalancePoint) []string {
	row := make([]string, balNumFields)
	row[balColDate] = p.Date.Format(dateFormat)
	row[balColBalance] = p.Balance.String()
	return row
}

// UnmarshalBalance converts a CSV row to a BalancePoint.
func UnmarshalBalance(record []string) (model.BalancePoint, error) {
	if len(record) != balNumFields {
		return model.BalancePoint{}, fmt.Errorf("expected %d fields, got %d", balNumFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[balColDate])
	if err != nil {
		return model.BalancePoint{}, fmt.Errorf("parsing date %q: %w", record[balColDate], err)
	}

	balance, err := decimal.NewFromString(record[balColBalance])
	if err != nil {
		return model.BalancePoint{}, fmt.Errorf("parsing balance %q: %w", record[balColBalance], err)
	}

	return model.BalancePoint{Date: date, Balance: balance}, nil
}

// readRows reads a whole CSV and hands each data row to unmarshal.
func readRows(r io.Reader, header string, unmarshal func([]string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(strings.Split(header, ","))

	records, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	for i, rec := range records[1:] {
		if err := unmarshal(rec); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return nil
}

// writeRows writes a header and rows to a CSV writer.
func writeRows(w io.Writer, header string, rows [][]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
