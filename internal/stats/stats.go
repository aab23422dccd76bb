package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
)

// Row is one entry of the backend status summary: a key, a status label and a count
type Row struct {
	Key    string
	Status string
	Count  int
}

type category int

const (
	categoryCompleted category = iota
	categoryRunning
	categoryQueue
	categoryFailed
	categoryCancelled
	categoryNone
)

// Keyword families in priority order, the first family with a keyword contained in the label wins
var families = []struct {
	category category
	keywords []string
}{
	{category: categoryCompleted, keywords: []string{"success", "completed", "succeeded"}},
	{category: categoryRunning, keywords: []string{"in_progress", "in progress", "running", "inprogress"}},
	{category: categoryQueue, keywords: []string{"queue", "queued", "in queue"}},
	{category: categoryFailed, keywords: []string{"fail", "failed", "failure"}},
	{category: categoryCancelled, keywords: []string{"cancel", "cancelled", "canceled"}},
}

// ParseRows Reads rows from a decoded JSON value shaped as [[key, status, count], ...].
// Anything that is not an array yields no rows
func ParseRows(raw interface{}) []Row {
	values, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	rows := make([]Row, 0, len(values))
	for _, value := range values {
		tuple, _ := value.([]interface{})
		rows = append(rows, Row{
			Key:    textAt(tuple, 0),
			Status: textAt(tuple, 1),
			Count:  countAt(tuple, 2),
		})
	}
	return rows
}

// Aggregate Sums the row counts into status categories by keyword containment.
// Rows matching no category are dropped, Total is the sum of the categories
func Aggregate(rows []Row) modelsv1.Statistics {
	var statistics modelsv1.Statistics
	for _, row := range rows {
		count := row.Count
		if count < 0 {
			count = 0
		}
		switch classify(row.Status) {
		case categoryCompleted:
			statistics.Completed += count
		case categoryRunning:
			statistics.Running += count
		case categoryQueue:
			statistics.Queue += count
		case categoryFailed:
			statistics.Failed += count
		case categoryCancelled:
			statistics.Cancelled += count
		}
	}
	statistics.Total = statistics.Sum()
	return statistics
}

// FromJobs Counts jobs by exact canonical status. Jobs with other statuses are not counted
func FromJobs(jobs []modelsv1.Job) modelsv1.Statistics {
	var statistics modelsv1.Statistics
	for _, job := range jobs {
		switch job.Status {
		case modelsv1.JobStatusEnumSuccess:
			statistics.Completed++
		case modelsv1.JobStatusEnumInProgress:
			statistics.Running++
		case modelsv1.JobStatusEnumInQueue:
			statistics.Queue++
		case modelsv1.JobStatusEnumFailed:
			statistics.Failed++
		case modelsv1.JobStatusEnumCancelled:
			statistics.Cancelled++
		}
	}
	statistics.Total = statistics.Sum()
	return statistics
}

func classify(status string) category {
	label := strings.ToLower(strings.TrimSpace(status))
	if len(label) == 0 {
		return categoryNone
	}
	for _, family := range families {
		for _, keyword := range family.keywords {
			if strings.Contains(label, keyword) {
				return family.category
			}
		}
	}
	return categoryNone
}

func textAt(tuple []interface{}, idx int) string {
	if idx >= len(tuple) || tuple[idx] == nil {
		return ""
	}
	switch v := tuple[idx].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func countAt(tuple []interface{}, idx int) int {
	if idx >= len(tuple) {
		return 0
	}
	var count float64
	switch v := tuple[idx].(type) {
	case float64:
		count = v
	case int:
		count = float64(v)
	case json.Number:
		count, _ = v.Float64()
	case string:
		count, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
	}
	if math.IsNaN(count) || math.IsInf(count, 0) || count < 0 {
		return 0
	}
	return int(count)
}
