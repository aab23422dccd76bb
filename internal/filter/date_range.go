package filter

import (
	"time"

	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/equinor/radix-job-dashboard/utils"
)

// MatchesDateRange The timestamp falls within the date range relative to now, in the location of now.
// An empty range matches everything, a missing or unparseable timestamp matches only the empty range
func MatchesDateRange(timestamp string, dateRange modelsv1.DateRange, now time.Time) bool {
	if dateRange == modelsv1.DateRangeAll {
		return true
	}
	date, err := utils.ParseTimestamp(timestamp, now.Location())
	if err != nil {
		return false
	}
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch dateRange {
	case modelsv1.DateRangeToday:
		return !date.Before(todayStart)
	case modelsv1.DateRangeYesterday:
		return !date.Before(todayStart.AddDate(0, 0, -1)) && date.Before(todayStart)
	case modelsv1.DateRangeWeek:
		return !date.Before(now.AddDate(0, 0, -7))
	case modelsv1.DateRangeMonth:
		return !date.Before(now.AddDate(0, 0, -30))
	default:
		return true
	}
}

// DateRangeToDays Number of days requested from the backend for a date range, 0 is all time
func DateRangeToDays(dateRange modelsv1.DateRange) int {
	switch dateRange {
	case modelsv1.DateRangeToday:
		return 1
	case modelsv1.DateRangeYesterday:
		return 2
	case modelsv1.DateRangeWeek:
		return 7
	case modelsv1.DateRangeMonth:
		return 30
	case modelsv1.DateRangeAll:
		return 0
	default:
		return 30
	}
}
