// Package budget reads and writes saved monthly budgets: planned income and
// expense line items the forecast and payoff reports draw on.
package budget

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/truecash-dev/truecash/internal/period"
)

// budgetsDir is the subdirectory holding saved monthly budgets.
const budgetsDir = "budgets"

// LineItem is one planned budget line.
type LineItem struct {
	Name    string  `yaml:"name"`
	Group   string  `yaml:"group"`
	Planned float64 `yaml:"planned"`
}

// Amount returns the planned amount as a decimal.
func (l LineItem) Amount() decimal.Decimal {
	return decimal.NewFromFloat(l.Planned)
}

// Budget is one month's saved budget.
type Budget struct {
	Month    string     `yaml:"month"`
	Income   []LineItem `yaml:"income"`
	Expenses []LineItem `yaml:"expenses"`
}

// Default returns an empty budget for a month, pre-seeded with the credit
// card payments line.
func Default(m period.Month) *Budget {
	return &Budget{
		Month: m.String(),
		Expenses: []LineItem{
			{Name: "Credit Card Payments", Group: "Financial", Planned: 0},
		},
	}
}

// Path returns the file a month's budget is saved under.
func Path(root string, m period.Month) string {
	return filepath.Join(root, budgetsDir, m.String()+".yaml")
}

// Load reads the saved budget for a month. A missing file is not an error:
// it returns (nil, nil) and callers treat it as "no budget saved".
func Load(root string, m period.Month) (*Budget, error) {
	data, err := os.ReadFile(Path(root, m))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading budget: %w", err)
	}

	var b Budget
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing budget: %w", err)
	}
	if b.Month == "" {
		b.Month = m.String()
	}
	return &b, nil
}

// Save writes a month's budget, creating the budgets directory if needed.
func Save(root string, m period.Month, b *Budget) error {
	if err := os.MkdirAll(filepath.Join(root, budgetsDir), 0o755); err != nil {
		return fmt.Errorf("creating budgets dir: %w", err)
	}

	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshaling budget: %w", err)
	}
	if err := os.WriteFile(Path(root, m), data, 0o644); err != nil {
		return fmt.Errorf("writing budget: %w", err)
	}
	return nil
}

// TotalIncome sums the planned income lines.
func (b *Budget) TotalIncome() decimal.Decimal {
	return sumLines(b.Income)
}

// TotalExpenses sums the planned expense lines.
func (b *Budget) TotalExpenses() decimal.Decimal {
	return sumLines(b.Expenses)
}

func sumLines(lines []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount())
	}
	return total
}

// BasePayment looks up a planned expense line by name with a
// case-insensitive exact match. Not found means zero, never an error.
func (b *Budget) BasePayment(name string) decimal.Decimal {
	for _, l := range b.Expenses {
		if strings.EqualFold(l.Name, name) {
			return l.Amount()
		}
	}
	return decimal.Zero
}
