package estimate

import (
	"regexp"
	"strconv"

	"github.com/equinor/radix-common/utils/slice"
	"github.com/equinor/radix-job-dashboard/internal/predicates"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
)

var durationPattern = regexp.MustCompile(`(?:(\d+)h)?\s*(?:(\d+)m)?\s*(?:(\d+)s)?`)

// ParseExecutionTime Converts an execution time to seconds. Numbers are returned as is,
// texts like "1h 2m 3s" are parsed with each part optional. Anything else is 0
func ParseExecutionTime(executionTime *modelsv1.ExecutionTime) float64 {
	if seconds, ok := executionTime.Seconds(); ok {
		return seconds
	}
	match := durationPattern.FindStringSubmatch(executionTime.Text())
	if match == nil {
		return 0
	}
	return float64(partOf(match, 1)*3600 + partOf(match, 2)*60 + partOf(match, 3))
}

// EstimateAverage Mean execution time in seconds of the successful jobs with the same name as job.
// Returns nil when no such job reported an execution time
func EstimateAverage(job modelsv1.Job, jobs []modelsv1.Job) *float64 {
	candidates := slice.FindAll(jobs, predicates.IsTimedSuccessfulJobWithName(job.JobName))
	if len(candidates) == 0 {
		return nil
	}
	total := slice.Reduce(candidates, 0.0, func(acc float64, j modelsv1.Job) float64 {
		return acc + ParseExecutionTime(j.ExecutionTime)
	})
	average := total / float64(len(candidates))
	return &average
}

// AveragesByName EstimateAverage for every job name in one pass over jobs
func AveragesByName(jobs []modelsv1.Job) map[string]float64 {
	type sum struct {
		total float64
		count int
	}
	sums := make(map[string]*sum)
	for _, job := range slice.FindAll(jobs, predicates.IsTimedSuccessfulJob) {
		s, ok := sums[job.JobName]
		if !ok {
			s = &sum{}
			sums[job.JobName] = s
		}
		s.total += ParseExecutionTime(job.ExecutionTime)
		s.count++
	}
	averages := make(map[string]float64, len(sums))
	for name, s := range sums {
		averages[name] = s.total / float64(s.count)
	}
	return averages
}

func partOf(match []string, idx int) int {
	if len(match[idx]) == 0 {
		return 0
	}
	value, err := strconv.Atoi(match[idx])
	if err != nil {
		return 0
	}
	return value
}
