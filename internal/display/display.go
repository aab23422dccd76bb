package display

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/equinor/radix-job-dashboard/utils"
)

// Missing shown in place of a missing or invalid value
const Missing = "—"

const (
	dateLayout    = "Jan 2, 03:04 PM"
	overdueSuffix = " | Job still in progress and taking more time than usual..."
)

var compactUnits = []struct {
	size   float64
	suffix string
}{
	{size: 1e3, suffix: "K"},
	{size: 1e6, suffix: "M"},
	{size: 1e9, suffix: "B"},
	{size: 1e12, suffix: "T"},
}

// FormatDateIn Formats a timestamp in loc, Missing when it is missing or invalid
func FormatDateIn(timestamp string, loc *time.Location) string {
	date, err := utils.ParseTimestamp(timestamp, loc)
	if err != nil {
		return Missing
	}
	return date.In(loc).Format(dateLayout)
}

// FormatDatePtr FormatDateIn for an optional timestamp
func FormatDatePtr(timestamp *string, loc *time.Location) string {
	if timestamp == nil {
		return Missing
	}
	return FormatDateIn(*timestamp, loc)
}

// FormatCount Formats a count in compact notation with at most two decimals, like 1.3K or 1.45M
func FormatCount(count int) string {
	value := float64(count)
	sign := ""
	if value < 0 {
		sign, value = "-", -value
	}
	if value < compactUnits[0].size {
		return strconv.Itoa(count)
	}
	for i, unit := range compactUnits {
		scaled := math.Round(value/unit.size*100) / 100
		if scaled >= 1000 && i < len(compactUnits)-1 {
			continue
		}
		return sign + humanize.FtoaWithDigits(scaled, 2) + unit.suffix
	}
	return strconv.Itoa(count)
}

// FormatStatistics Compact notation of every statistics category
func FormatStatistics(statistics modelsv1.Statistics) map[string]string {
	return map[string]string{
		"completed": FormatCount(statistics.Completed),
		"running":   FormatCount(statistics.Running),
		"queue":     FormatCount(statistics.Queue),
		"failed":    FormatCount(statistics.Failed),
		"cancelled": FormatCount(statistics.Cancelled),
		"total":     FormatCount(statistics.Total),
	}
}

// AverageTimeMessage Hint shown on a running job about its usual duration
func AverageTimeMessage(avgTime *float64, overdue bool) string {
	message := "Job running for the first time..."
	if avgTime != nil && *avgTime != 0 && !math.IsNaN(*avgTime) {
		message = fmt.Sprintf("Avg Time: %d min", int64(math.Round(*avgTime/60)))
	}
	if overdue {
		message += overdueSuffix
	}
	return message
}
