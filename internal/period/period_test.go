package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse("2025-12")
	require.NoError(t, err)
	assert.Equal(t, 2025, m.Year)
	assert.Equal(t, time.December, m.Month)
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{"", "2025", "2025-13", "2025-00", "25-01", "2025-1", "jan-2025"}
	for _, c := range cases {
		_, err := Parse(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestString_RoundTrip(t *testing.T) {
	m := Month{Year: 2026, Month: time.January}
	assert.Equal(t, "2026-01", m.String())

	parsed, err := Parse(m.String())
	require.NoError(t, err)
	assert.Equal(t, m, parsed)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "December 2025", Month{2025, time.December}.Label())
}

func TestRange(t *testing.T) {
	start, end := Month{2025, time.December}.Range()
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), end)

	// February in a leap year.
	start, end = Month{2024, time.February}.Range()
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 29, end.Day())
}

func TestAddMonths(t *testing.T) {
	m := Month{2025, time.December}
	assert.Equal(t, Month{2026, time.January}, m.AddMonths(1))
	assert.Equal(t, Month{2025, time.November}, m.AddMonths(-1))
	assert.Equal(t, Month{2026, time.June}, m.AddMonths(6))
}

func TestCurrentAndPrevious(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, Month{2026, time.January}, Current(now))
	assert.Equal(t, Month{2025, time.December}, Previous(now))
}

func TestContains(t *testing.T) {
	m := Month{2025, time.December}
	assert.True(t, m.Contains(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}
