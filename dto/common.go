package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"frontdesk/constants"
)

// FlexString accepts either a JSON string or a JSON number. Room numbers arrive both ways.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// FlexDate accepts YYYY-MM-DD or a full RFC 3339 timestamp and keeps the calendar date.
// null and "" leave it zero.
type FlexDate struct {
	time.Time
}

func (f *FlexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		f.Time = time.Time{}
		return nil
	}
	t, err := ParseFlexDate(s)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

func (f FlexDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Format(constants.DayLayout))
}

// ParseFlexDate parses YYYY-MM-DD or RFC 3339 into a UTC civil date.
func ParseFlexDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(constants.DayLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// ParseMonth parses YYYY-MM.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(constants.MonthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q", s)
	}
	return t.Year(), t.Month(), nil
}

// ParseYearMonth reads year and month query values, falling back to now.
func ParseYearMonth(yearStr, monthStr string, now time.Time) (int, time.Month, error) {
	year, month := now.Year(), now.Month()
	if yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1 {
			return 0, 0, fmt.Errorf("invalid year %q", yearStr)
		}
		year = y
	}
	if monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid month %q", monthStr)
		}
		month = time.Month(m)
	}
	return year, month, nil
}
