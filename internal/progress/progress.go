package progress

import (
	"math"

	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
)

const (
	// DefaultDuration seconds assumed for a running job without an average
	DefaultDuration = 300.0
	// RunningCap highest percent shown while a job is running
	RunningCap = 90
)

// Projection Display progress of a job
type Projection struct {
	Percent int
	Overdue bool
}

// Project Maps status, average duration and elapsed seconds to a percent 0-100.
// Running jobs never pass RunningCap, and are overdue when elapsed exceeds the duration
func Project(status modelsv1.JobStatusEnum, avgTime *float64, elapsed float64, reported *float64) Projection {
	switch {
	case status.IsQueued():
		return Projection{}
	case status.IsFinished():
		return Projection{Percent: 100}
	case status.IsRunning():
		duration := DefaultDuration
		if avgTime != nil && isFinite(*avgTime) && *avgTime > 0 {
			duration = *avgTime
		}
		if !isFinite(elapsed) || elapsed < 0 {
			elapsed = 0
		}
		percent := int(math.Round(elapsed / duration * RunningCap))
		return Projection{Percent: min(RunningCap, percent), Overdue: elapsed > duration}
	}
	if reported == nil || !isFinite(*reported) {
		return Projection{}
	}
	return Projection{Percent: int(max(0, min(100, math.Round(*reported))))}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
