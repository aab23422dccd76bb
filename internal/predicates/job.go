package predicates

import (
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
)

func IsJobWithID(id string) func(j modelsv1.Job) bool {
	return func(j modelsv1.Job) bool {
		return len(id) > 0 && j.ID == id
	}
}

func IsRunningJob(j modelsv1.Job) bool {
	return j.Status.IsRunning()
}

func IsQueuedJob(j modelsv1.Job) bool {
	return j.Status.IsQueued()
}

func IsTerminalJob(j modelsv1.Job) bool {
	return j.Status.IsTerminal()
}

// IsTimedSuccessfulJob the job succeeded and reported an execution time
func IsTimedSuccessfulJob(j modelsv1.Job) bool {
	return j.Status == modelsv1.JobStatusEnumSuccess && !j.ExecutionTime.IsEmpty()
}

func IsTimedSuccessfulJobWithName(name string) func(j modelsv1.Job) bool {
	return func(j modelsv1.Job) bool {
		return j.JobName == name && IsTimedSuccessfulJob(j)
	}
}
