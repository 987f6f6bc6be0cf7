package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		raw  string
		want ClockTime
	}{
		{"08:00", ClockTime{Hour: 8, Minute: 0}},
		{"8:00", ClockTime{Hour: 8, Minute: 0}},
		{"14:30", ClockTime{Hour: 14, Minute: 30}},
		{"14:30:00", ClockTime{Hour: 14, Minute: 30}},
		{"23:59:59", ClockTime{Hour: 23, Minute: 59}},
	}
	for _, tt := range tests {
		got, err := ParseClockTime(tt.raw)
		require.NoErrorf(t, err, "parsing %q", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseClockTimeRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "banana", "25:00", "12:61", "12h30"} {
		_, err := ParseClockTime(raw)
		assert.Errorf(t, err, "expected %q to be rejected", raw)
	}
}

func TestClockTimeString(t *testing.T) {
	assert.Equal(t, "08:05", NewClockTime(8, 5).String())
	assert.Equal(t, "19:00", NewClockTime(19, 0).String())
}

func TestClockTimeAddMinutes(t *testing.T) {
	assert.Equal(t, NewClockTime(10, 45), NewClockTime(10, 0).AddMinutes(45))
	assert.Equal(t, NewClockTime(11, 15), NewClockTime(10, 30).AddMinutes(45))
	assert.Equal(t, NewClockTime(9, 0), NewClockTime(8, 0).AddMinutes(60))
}

func TestClockTimeBefore(t *testing.T) {
	assert.True(t, NewClockTime(8, 0).Before(NewClockTime(8, 30)))
	assert.False(t, NewClockTime(8, 30).Before(NewClockTime(8, 30)))
	assert.False(t, NewClockTime(9, 0).Before(NewClockTime(8, 30)))
}

func TestClockTimeJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(NewClockTime(9, 30))
	require.NoError(t, err)
	assert.Equal(t, `"09:30"`, string(data))

	var parsed ClockTime
	require.NoError(t, json.Unmarshal([]byte(`"14:15:00"`), &parsed))
	assert.Equal(t, NewClockTime(14, 15), parsed)

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &parsed))
}

func TestTimeWindowContains(t *testing.T) {
	w := TimeWindow{Day: "Tuesday", Start: NewClockTime(8, 0), End: NewClockTime(15, 0)}

	assert.True(t, w.Contains("Tuesday", NewClockTime(8, 0), NewClockTime(9, 0)))
	assert.True(t, w.Contains("Tuesday", NewClockTime(14, 0), NewClockTime(15, 0)))
	assert.True(t, w.Contains("Tuesday", NewClockTime(10, 0), NewClockTime(10, 45)))

	assert.False(t, w.Contains("Wednesday", NewClockTime(8, 0), NewClockTime(9, 0)))
	assert.False(t, w.Contains("Tuesday", NewClockTime(7, 0), NewClockTime(8, 0)))
	assert.False(t, w.Contains("Tuesday", NewClockTime(14, 30), NewClockTime(15, 15)))
}
