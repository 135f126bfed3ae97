package timeutil

import (
	"errors"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// PrettyLayout renders like "Friday May 27 08:30:00 PM".
const PrettyLayout = "Monday January 02 03:04:05 PM"

// wallClockLayout accepts upstream timestamps that carry no zone at all.
const wallClockLayout = "2006-01-02T15:04:05"

// ErrEmptyTimestamp is returned when there is nothing to parse.
var ErrEmptyTimestamp = errors.New("timeutil: empty timestamp")

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatPretty formats a time with PrettyLayout in its current location.
func FormatPretty(t time.Time) string {
	return t.Format(PrettyLayout)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// Reinterpret keeps the clock-face reading of t and places it in loc.
// 20:30 UTC becomes 20:30 in loc, resolved through the zone's DST rules.
func Reinterpret(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// ParseWallClock parses an RFC 3339 timestamp (or one without any zone) and
// returns its clock-face reading in loc. Any zone designator on the input is
// ignored: the digits are taken as local time in loc.
func ParseWallClock(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyTimestamp
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		var fallbackErr error
		parsed, fallbackErr = time.Parse(wallClockLayout, value)
		if fallbackErr != nil {
			return time.Time{}, err
		}
	}
	return Reinterpret(parsed, loc), nil
}
