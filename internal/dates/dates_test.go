package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okabeach/flat-manager/internal/dates"
)

func TestParse_AcceptedFormats(t *testing.T) {
	iso, err := dates.Parse("2024-01-20")
	require.NoError(t, err)

	br, err := dates.Parse("20/01/2024")
	require.NoError(t, err)

	assert.Equal(t, iso, br)
	assert.Equal(t, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), iso)
}

func TestParse_UnparseableIsError(t *testing.T) {
	// datas ilegíveis nunca viram "hoje" silenciosamente
	for _, s := range []string{"", "20-01-2024", "2024/01/20", "amanhã", "2024-13-01"} {
		_, err := dates.Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDaysBetween(t *testing.T) {
	jan10 := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	jan13 := time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, dates.DaysBetween(jan10, jan13))
	assert.Equal(t, -3, dates.DaysBetween(jan13, jan10))
	assert.Equal(t, 0, dates.DaysBetween(jan10, jan10))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, time.January, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, time.January, 11, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, dates.DaysBetween(a, b))
}

func TestAge_Boundaries(t *testing.T) {
	birth := time.Date(2006, time.March, 15, 0, 0, 0, 0, time.UTC)

	// véspera do aniversário: ainda 17
	assert.Equal(t, 17, dates.Age(birth, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)))

	// no dia exato do 18º aniversário a idade já conta
	assert.Equal(t, 18, dates.Age(birth, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, 18, dates.Age(birth, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)))
}

func TestAge_MonthBeforeBirthMonth(t *testing.T) {
	birth := time.Date(2000, time.December, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 23, dates.Age(birth, now))
}
