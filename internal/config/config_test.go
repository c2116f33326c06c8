package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Provider.BaseURL = "https://example.test/graphql"
	cfg.Payoff.AnnualRateCC = 0.1999
	cfg.Analysis.ExcludedIncomeCategories = []string{"Dividends & Capital Gains", "Interest"}

	require.NoError(t, Save(dir, cfg))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	data := []byte("payoff:\n  annual_rate_cc: 0.18\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), data, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0.18, cfg.Payoff.AnnualRateCC)
	// Everything not mentioned falls back to the default.
	assert.Equal(t, Default().Payoff.MaxMonths, cfg.Payoff.MaxMonths)
	assert.Equal(t, Default().Payoff.Percentages, cfg.Payoff.Percentages)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative rate":    "payoff:\n  annual_rate_cc: -0.1\n",
		"zero max months":  "payoff:\n  max_months: 0\n",
		"percentage above": "payoff:\n  percentages: [0.5, 1.5]\n",
		"split oversubscribed": "payoff:\n  combined_splits:\n" +
			"    - cc: 0.8\n      loan: 0.4\n",
		"malformed yaml": "payoff: [not a map\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644))
			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestDefault_MatchesProjectionDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.24, cfg.Payoff.AnnualRateCC)
	assert.Equal(t, 120, cfg.Payoff.MaxMonths)
	assert.Equal(t, []float64{0.25, 0.35, 0.50, 0.60, 0.65, 0.70, 0.75}, cfg.Payoff.Percentages)
	assert.Contains(t, cfg.Analysis.ExcludedIncomeCategories, "Dividends & Capital Gains")
}
