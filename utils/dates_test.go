package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	days := DaysInclusive(date(2025, 2, 27), date(2025, 3, 2))
	require.Len(t, days, 4)
	assert.Equal(t, "2025-02-27", FormatDay(days[0]))
	assert.Equal(t, "2025-03-02", FormatDay(days[3]))

	assert.Len(t, DaysInclusive(date(2025, 3, 5), date(2025, 3, 5)), 1)
	assert.Nil(t, DaysInclusive(date(2025, 3, 5), date(2025, 3, 4)))

	// the length is always the day difference plus one
	start := date(2024, 12, 20)
	for n := 0; n < 400; n += 37 {
		assert.Len(t, DaysInclusive(start, start.AddDate(0, 0, n)), n+1)
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(date(2025, 3, 10), date(2025, 3, 12)))
	assert.Equal(t, 0, Nights(date(2025, 3, 10), date(2025, 3, 10)))
	assert.Equal(t, 0, Nights(date(2025, 3, 12), date(2025, 3, 10)))
	assert.Equal(t, 1, Nights(date(2025, 3, 10), date(2025, 3, 10).Add(3*time.Hour)))
}

func TestRoundedDays(t *testing.T) {
	assert.Equal(t, 3, RoundedDays(date(2025, 3, 1), date(2025, 3, 4)))
	assert.Equal(t, 1, RoundedDays(date(2025, 3, 1), date(2025, 3, 1).Add(13*time.Hour)))
	assert.Equal(t, 0, RoundedDays(date(2025, 3, 1), date(2025, 3, 1).Add(11*time.Hour)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
	assert.Len(t, MonthDays(2025, time.April), 30)
}

func TestCalendarWindow(t *testing.T) {
	days := CalendarWindow(time.Date(2025, 3, 10, 17, 45, 0, 0, time.UTC), 30, 30)
	require.Len(t, days, 61)
	assert.Equal(t, "2025-02-08", FormatDay(days[0]))
	assert.Equal(t, "2025-03-10", FormatDay(days[30]))
	assert.Equal(t, "2025-04-09", FormatDay(days[60]))
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d.Weekday())

	_, err = ParseDay("09/03/2025")
	assert.Error(t, err)
}

func TestNextDays(t *testing.T) {
	days := NextDays(time.Date(2025, 3, 8, 23, 0, 0, 0, time.UTC), 7)
	require.Len(t, days, 7)
	assert.Equal(t, NextDay{Date: "2025-03-09", DayLetter: "א", FullDayName: "ראשון"}, days[0])
	assert.Equal(t, NextDay{Date: "2025-03-15", DayLetter: "ש", FullDayName: "שבת"}, days[6])
}

func TestLabels(t *testing.T) {
	d := date(2025, 3, 5)
	assert.Equal(t, "05/03/25 - רביעי", DayLabel(d))
	assert.Equal(t, "5.3.2025", HebrewDate(d))
}
