package dto

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringAcceptsNumbers(t *testing.T) {
	var body struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1a","b":106,"c":null}`), &body))
	assert.Equal(t, FlexString("1a"), body.A)
	assert.Equal(t, FlexString("106"), body.B)
	assert.Equal(t, FlexString(""), body.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &body))
}

func TestFlexDate(t *testing.T) {
	var body struct {
		Start FlexDate `json:"start"`
		End   FlexDate `json:"end"`
		Empty FlexDate `json:"empty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2025-03-10","end":"2025-03-12T21:00:00.000Z","empty":""}`), &body))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), body.Start.Time)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), body.End.Time)
	assert.True(t, body.Empty.IsZero())

	out, err := json.Marshal(body.Start)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-10"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"10/03/2025"}`), &body))
}

func TestParseYearMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	y, m, err := ParseYearMonth("", "", now)
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.June, m)

	y, m, err = ParseYearMonth("2024", "2", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.February, m)

	_, _, err = ParseYearMonth("", "13", now)
	assert.Error(t, err)
	_, _, err = ParseYearMonth("abc", "", now)
	assert.Error(t, err)

	y, m, err = ParseMonth("2025-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.January, m)
}
