// Package timeexpr turns human-entered clock times and day offsets into the
// compact timestamps Timewarrior accepts on its command line.
package timeexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTimeInput is returned when a clock time matches none of the
// accepted layouts.
var ErrMalformedTimeInput = errors.New("malformed time input")

// ErrInvalidDayOffset is returned for negative or non-numeric day offsets.
var ErrInvalidDayOffset = errors.New("invalid day offset")

const (
	// ClockLayout is the normalized 24-hour time of day.
	ClockLayout = "15:04:05"

	// TimestampLayout is the separator-free datetime timew accepts, e.g. 20240501T090000.
	TimestampLayout = "20060102T150405"
)

// clockLayout is one accepted notation.
type clockLayout struct {
	layout   string
	meridiem bool
}

// clockLayouts are tried in order against the whole input; the first one
// that parses wins. Input is lower-cased first, so the meridiem layouts use "pm".
var clockLayouts = []clockLayout{
	{layout: "3:04pm", meridiem: true},  // 6:00pm
	{layout: "3:04 pm", meridiem: true}, // 6:00 pm
	{layout: "3pm", meridiem: true},     // 6pm
	{layout: "15:04"},                   // 18:00, 9:00
	{layout: "15:04:05"},
}

// hourOf returns the leading hour digits of a clock value.
func hourOf(value string) string {
	end := strings.IndexFunc(value, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		return value
	}
	return value[:end]
}

// Resolve normalizes a free-form clock time to 24-hour HH:MM:SS.
//
// Accepted forms: "6:00pm", "6:00 pm", "6pm", "18:00", "9:00", "18:00:00".
// Surrounding whitespace and letter case are ignored.
func Resolve(raw string) (string, error) {
	t, err := ParseClock(raw)
	if err != nil {
		return "", err
	}
	return t.Format(ClockLayout), nil
}

// ParseClock parses a free-form clock time into a time.Time on the zero date.
// Only the hour, minute and second fields are meaningful.
func ParseClock(raw string) (time.Time, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range clockLayouts {
		t, err := time.Parse(candidate.layout, value)
		if err != nil {
			continue
		}
		// time.Parse takes hour 0 for "3"; a 12-hour clock starts at 1.
		if candidate.meridiem && strings.TrimLeft(hourOf(value), "0") == "" {
			continue
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q (try 9:00, 14:30, 6pm or 6:30 pm)", ErrMalformedTimeInput, raw)
}

// ParseDayOffset parses how many days before today an entry happened.
// Empty input means today.
func ParseDayOffset(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(value)
	if err != nil || days < 0 {
		return 0, fmt.Errorf("%w: %q (use 0 for today, 1 for yesterday)", ErrInvalidDayOffset, raw)
	}
	return days, nil
}

// BuildTimestamp joins the calendar date dayOffset days before now with a
// normalized HH:MM:SS clock into YYYYMMDDTHHMMSS.
//
// The clock is taken verbatim; no timezone conversion happens. The date is
// the calendar date of now in its own location.
func BuildTimestamp(now time.Time, dayOffset int, clock string) (string, error) {
	if dayOffset < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidDayOffset, dayOffset)
	}
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedTimeInput, clock)
	}
	day := now.AddDate(0, 0, -dayOffset)
	// UTC keeps the wall clock intact across DST gaps.
	stamp := time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return stamp.Format(TimestampLayout), nil
}

// ResolveTimestamp resolves raw and builds its timestamp in one step.
func ResolveTimestamp(now time.Time, dayOffset int, raw string) (string, error) {
	clock, err := Resolve(raw)
	if err != nil {
		return "", err
	}
	return BuildTimestamp(now, dayOffset, clock)
}
