package utils

import (
	"fmt"
	"math"
	"time"

	"frontdesk/constants"
)

var hebrewWeekdays = [7]string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}

var hebrewWeekdayLetters = [7]string{"א", "ב", "ג", "ד", "ה", "ו", "ש"}

// Day zeroes the time of day. Dates are treated as UTC civil dates.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(constants.DayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// FormatDay formats a date as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return Day(t).Format(constants.DayLayout)
}

// DaysInclusive returns every day from start to end, both included.
// It returns nil when end is before start.
func DaysInclusive(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Nights counts the nights between two dates, rounding partial days up.
func Nights(start, end time.Time) int {
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// RoundedDays is the day difference rounded to the nearest whole day.
func RoundedDays(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDays returns every day of the given month.
func MonthDays(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return DaysInclusive(first, last)
}

// CalendarWindow returns today surrounded by `before` earlier days and `after` later days.
func CalendarWindow(today time.Time, before, after int) []time.Time {
	today = Day(today)
	return DaysInclusive(today.AddDate(0, 0, -before), today.AddDate(0, 0, after))
}

// NextDay is one entry of the upcoming-days strip.
type NextDay struct {
	Date        string `json:"date"`
	DayLetter   string `json:"dayLetter"`
	FullDayName string `json:"fullDayName"`
}

// NextDays returns the n days following now.
func NextDays(now time.Time, n int) []NextDay {
	today := Day(now)
	days := make([]NextDay, 0, n)
	for i := 1; i <= n; i++ {
		d := today.AddDate(0, 0, i)
		days = append(days, NextDay{
			Date:        d.Format(constants.DayLayout),
			DayLetter:   hebrewWeekdayLetters[d.Weekday()],
			FullDayName: hebrewWeekdays[d.Weekday()],
		})
	}
	return days
}

// DayLabel renders a board row label such as "05/03/25 - רביעי".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%s - %s", t.Format("02/01/06"), hebrewWeekdays[t.Weekday()])
}

// HebrewDate formats a date the way he-IL short dates read, e.g. 5.3.2025.
func HebrewDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}
