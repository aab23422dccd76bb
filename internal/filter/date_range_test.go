package filter

import (
	"testing"
	"time"

	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/stretchr/testify/assert"
)

func Test_MatchesDateRange(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, loc)
	scenarios := []struct {
		name      string
		timestamp string
		dateRange modelsv1.DateRange
		expected  bool
	}{
		{name: "all matches anything", timestamp: "1999-01-01T00:00:00Z", dateRange: modelsv1.DateRangeAll, expected: true},
		{name: "all matches missing date", timestamp: "", dateRange: modelsv1.DateRangeAll, expected: true},
		{name: "today from midnight", timestamp: "2024-03-10T00:00:00", dateRange: modelsv1.DateRangeToday, expected: true},
		{name: "today excludes yesterday", timestamp: "2024-03-09T23:59:59", dateRange: modelsv1.DateRangeToday, expected: false},
		{name: "today in other zone", timestamp: "2024-03-09T23:30:00Z", dateRange: modelsv1.DateRangeToday, expected: true},
		{name: "yesterday excludes today", timestamp: "2024-03-10T00:00:01", dateRange: modelsv1.DateRangeYesterday, expected: false},
		{name: "yesterday late evening", timestamp: "2024-03-09T23:59:00", dateRange: modelsv1.DateRangeYesterday, expected: true},
		{name: "yesterday from midnight", timestamp: "2024-03-09T00:00:00", dateRange: modelsv1.DateRangeYesterday, expected: true},
		{name: "yesterday excludes the day before", timestamp: "2024-03-08T23:59:59", dateRange: modelsv1.DateRangeYesterday, expected: false},
		{name: "week includes six days ago", timestamp: "2024-03-04T10:00:00", dateRange: modelsv1.DateRangeWeek, expected: true},
		{name: "week boundary", timestamp: "2024-03-03T15:30:00", dateRange: modelsv1.DateRangeWeek, expected: true},
		{name: "week excludes older", timestamp: "2024-03-03T15:29:59", dateRange: modelsv1.DateRangeWeek, expected: false},
		{name: "month includes 29 days ago", timestamp: "2024-02-10", dateRange: modelsv1.DateRangeMonth, expected: true},
		{name: "month excludes 31 days ago", timestamp: "2024-02-08T15:00:00", dateRange: modelsv1.DateRangeMonth, expected: false},
		{name: "missing date", timestamp: "", dateRange: modelsv1.DateRangeWeek, expected: false},
		{name: "unparseable date", timestamp: "yesterday-ish", dateRange: modelsv1.DateRangeMonth, expected: false},
		{name: "unknown range", timestamp: "2000-01-01T00:00:00Z", dateRange: "decade", expected: true},
	}
	for _, ts := range scenarios {
		t.Run(ts.name, func(t *testing.T) {
			assert.Equal(t, ts.expected, MatchesDateRange(ts.timestamp, ts.dateRange, now))
		})
	}
}

func Test_DateRangeToDays(t *testing.T) {
	assert.Equal(t, 1, DateRangeToDays(modelsv1.DateRangeToday))
	assert.Equal(t, 2, DateRangeToDays(modelsv1.DateRangeYesterday))
	assert.Equal(t, 7, DateRangeToDays(modelsv1.DateRangeWeek))
	assert.Equal(t, 30, DateRangeToDays(modelsv1.DateRangeMonth))
	assert.Equal(t, 0, DateRangeToDays(modelsv1.DateRangeAll))
	assert.Equal(t, 30, DateRangeToDays("decade"))
}
