package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimestamp the timestamp matches none of the supported layouts
var ErrInvalidTimestamp = errors.New("invalid timestamp")

var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999Z0700",
		"2006-01-02 15:04:05.999999999Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04",
	}
	// Date-only timestamps are read as UTC midnight, the way browsers and the backend do
	dateOnlyLayout = "2006-01-02"
)

// ParseTimestamp Converts an ISO-8601 like timestamp, or milliseconds since the Unix epoch, to time.
// Timestamps without an offset are read in loc
func ParseTimestamp(timestamp string, loc *time.Location) (time.Time, error) {
	timestamp = strings.TrimSpace(timestamp)
	if len(timestamp) == 0 {
		return time.Time{}, ErrInvalidTimestamp
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, timestamp, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(dateOnlyLayout, timestamp); err == nil {
		return t, nil
	}
	if millis, err := strconv.ParseInt(timestamp, 10, 64); err == nil {
		return time.UnixMilli(millis).In(loc), nil
	}
	return time.Time{}, ErrInvalidTimestamp
}

// ParseTimestampPtr Converts an optional timestamp to time, ok is false when it is missing or invalid
func ParseTimestampPtr(timestamp *string, loc *time.Location) (t time.Time, ok bool) {
	if timestamp == nil {
		return time.Time{}, false
	}
	t, err := ParseTimestamp(*timestamp, loc)
	return t, err == nil
}
