package v1

// JobStatusEnum Canonical status of a job
// swagger:enum JobStatusEnum
type JobStatusEnum string

const (
	// JobStatusEnumSuccess the job completed successfully
	JobStatusEnumSuccess JobStatusEnum = "SUCCESS"

	// JobStatusEnumFailed the job failed
	JobStatusEnumFailed JobStatusEnum = "FAILED"

	// JobStatusEnumInProgress the job is running
	JobStatusEnumInProgress JobStatusEnum = "IN_PROGRESS"

	// JobStatusEnumInQueue the job is waiting to be started
	JobStatusEnumInQueue JobStatusEnum = "In Queue"

	// JobStatusEnumCancelled the job was cancelled
	JobStatusEnumCancelled JobStatusEnum = "CANCELLED"
)

// IsRunning the job is in progress
func (s JobStatusEnum) IsRunning() bool {
	return s == JobStatusEnumInProgress
}

// IsQueued the job is waiting in the queue
func (s JobStatusEnum) IsQueued() bool {
	return s == JobStatusEnumInQueue
}

// IsTerminal any status other than in progress or in queue, unknown statuses included
func (s JobStatusEnum) IsTerminal() bool {
	return !s.IsRunning() && !s.IsQueued()
}

// IsFinished the job reached one of the known final statuses
func (s JobStatusEnum) IsFinished() bool {
	return s == JobStatusEnumSuccess || s == JobStatusEnumFailed || s == JobStatusEnumCancelled
}
