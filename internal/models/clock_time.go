package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Accepted wire layouts for time-of-day fields. Clients either send the
// short "HH:MM" form or a full "HH:MM:SS" value produced by serialising an
// already-parsed time; both normalise to the same ClockTime.
var clockLayouts = []string{"15:04", "15:04:05"}

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// NewClockTime builds a ClockTime without validation.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{Hour: hour, Minute: minute}
}

// ParseClockTime normalises a textual time-of-day value.
func ParseClockTime(raw string) (ClockTime, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("unsupported time format: %q", raw)
}

// String renders the canonical "HH:MM" form.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TotalMinutes converts the time of day to minutes since midnight.
func (t ClockTime) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than other.
func (t ClockTime) Before(other ClockTime) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

// AddMinutes returns the clock time shifted forward by the given minutes.
func (t ClockTime) AddMinutes(minutes int) ClockTime {
	total := t.TotalMinutes() + minutes
	return ClockTime{Hour: total / 60, Minute: total % 60}
}

// MarshalJSON renders the canonical "HH:MM" form.
func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts any of the wire layouts.
func (t *ClockTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseClockTime(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TimeWindow is a weekly availability window on a single day.
type TimeWindow struct {
	Day   string    `json:"day"`
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// Contains reports whether the [start, end] span fits inside the window on
// the same day.
func (w TimeWindow) Contains(day string, start, end ClockTime) bool {
	if w.Day != day {
		return false
	}
	return !start.Before(w.Start) && !w.End.Before(end)
}
