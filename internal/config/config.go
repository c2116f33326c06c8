// Package config loads and saves the truecash.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/truecash-dev/truecash/internal/payoff"
)

const FileName = "truecash.yaml"

// Provider holds connection settings for the account aggregator.
type Provider struct {
	BaseURL          string `yaml:"base_url,omitempty"`
	TransactionLimit int    `yaml:"transaction_limit,omitempty"`
}

// Analysis controls how transactions are classified.
type Analysis struct {
	// Income categories ignored when totaling income, e.g. reinvested
	// dividends that never hit a cash account.
	ExcludedIncomeCategories []string `yaml:"excluded_income_categories"`
}

// Payoff holds the debt projection defaults.
type Payoff struct {
	AnnualRateCC        float64   `yaml:"annual_rate_cc"`
	AnnualRateLoan      float64   `yaml:"annual_rate_loan"`
	MaxMonths           int       `yaml:"max_months"`
	Percentages         []float64 `yaml:"percentages"`
	LoanPaymentCategory string    `yaml:"loan_payment_category,omitempty"`
	CombinedSplits      []Split   `yaml:"combined_splits,omitempty"`
}

// Split is one surplus allocation pair for the combined projection.
type Split struct {
	CC   float64 `yaml:"cc"`
	Loan float64 `yaml:"loan"`
}

type Config struct {
	Provider Provider `yaml:"provider"`
	Analysis Analysis `yaml:"analysis"`
	Payoff   Payoff   `yaml:"payoff"`
}

func Default() *Config {
	pcts := make([]float64, len(payoff.DefaultPercentages))
	for i, p := range payoff.DefaultPercentages {
		pcts[i], _ = p.Float64()
	}
	splits := make([]Split, len(payoff.DefaultSplits))
	for i, s := range payoff.DefaultSplits {
		cc, _ := s.CC.Float64()
		loan, _ := s.Loan.Float64()
		splits[i] = Split{CC: cc, Loan: loan}
	}
	return &Config{
		Analysis: Analysis{
			ExcludedIncomeCategories: []string{"Dividends & Capital Gains"},
		},
		Payoff: Payoff{
			AnnualRateCC:        0.24,
			AnnualRateLoan:      0.055,
			MaxMonths:           payoff.DefaultMaxMonths,
			Percentages:         pcts,
			LoanPaymentCategory: "Student Loan Payment",
			CombinedSplits:      splits,
		},
	}
}

// Load reads the config from dir. A missing file returns defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0o644)
}

func (c *Config) validate() error {
	if c.Payoff.AnnualRateCC < 0 || c.Payoff.AnnualRateLoan < 0 {
		return fmt.Errorf("annual rates must not be negative")
	}
	if c.Payoff.MaxMonths <= 0 {
		return fmt.Errorf("max_months must be positive")
	}
	for _, p := range c.Payoff.Percentages {
		if p <= 0 || p > 1 {
			return fmt.Errorf("percentages must be in (0, 1], got %v", p)
		}
	}
	for _, s := range c.Payoff.CombinedSplits {
		if s.CC < 0 || s.Loan < 0 || s.CC+s.Loan > 1 {
			return fmt.Errorf("combined split %v/%v must be non-negative and sum to at most 1", s.CC, s.Loan)
		}
	}
	return nil
}
