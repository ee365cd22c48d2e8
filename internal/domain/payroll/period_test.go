package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	p, err := ParsePeriod("2024-04")
	require.NoError(t, err)
	assert.Equal(t, Period{Year: 2024, Month: time.April}, p)

	for _, bad := range []string{"", "2024", "2024-13", "04-2024", "2024-04-01", "abcd-ef"} {
		_, err := ParsePeriod(bad)
		assert.ErrorIs(t, err, ErrInvalidPeriod, "input %q", bad)
	}
}

func TestPeriodBounds(t *testing.T) {
	t.Parallel()

	feb := Period{Year: 2024, Month: time.February}
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), feb.Start())
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), feb.End())
	assert.Equal(t, 29, feb.Days())

	febPlain := Period{Year: 2023, Month: time.February}
	assert.Equal(t, 28, febPlain.Days())
}

func TestPeriodContains(t *testing.T) {
	t.Parallel()

	p := Period{Year: 2024, Month: time.April}
	assert.True(t, p.Contains(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, time.April, 30, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodPrevious(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Period{Year: 2024, Month: time.March},
		Period{Year: 2024, Month: time.April}.Previous())
	// Year boundary
	assert.Equal(t, Period{Year: 2023, Month: time.December},
		Period{Year: 2024, Month: time.January}.Previous())
}

func TestPeriodString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-04", Period{Year: 2024, Month: time.April}.String())
	assert.Equal(t, "2023-12", Period{Year: 2023, Month: time.December}.String())
}
