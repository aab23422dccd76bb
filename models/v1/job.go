package v1

// Job holds the canonical information about a job reported by the job backend
// swagger:model Job
type Job struct {
	// ID of the job, unique within a fetch
	//
	// required: true
	// example: 1234
	ID string `json:"id"`

	// Name of the job, falls back to the file name
	//
	// required: true
	// example: nightly-import
	JobName string `json:"jobName"`

	// FileName associated with the job
	//
	// required: false
	// example: import.csv
	FileName string `json:"fileName"`

	// BatchName Optional grouping label
	//
	// required: false
	// example: batch-2024-01
	BatchName *string `json:"batchName"`

	// UserName of the submitting user
	//
	// required: true
	// example: jdoe
	UserName string `json:"userName"`

	// Status of the job
	// - SUCCESS = Job has succeeded
	// - FAILED = Job has failed
	// - IN_PROGRESS = Job is running
	// - In Queue = Job is waiting
	// - CANCELLED = Job was cancelled
	// Unknown statuses are passed through as reported
	//
	// required: true
	// example: IN_PROGRESS
	Status JobStatusEnum `json:"status"`

	// StartDate timestamp
	//
	// required: false
	// example: 2006-01-02T15:04:05Z
	StartDate *string `json:"startDate"`

	// EndDate timestamp
	//
	// required: false
	// example: 2006-01-02T15:04:05Z
	EndDate *string `json:"endDate"`

	// ExecutionTime reported duration, seconds or "1h 2m 3s"
	//
	// required: false
	ExecutionTime *ExecutionTime `json:"executionTime"`

	// Environment the job ran in
	//
	// required: false
	// example: prod
	Environment *string `json:"environment"`

	// ReportedProgress raw progress value reported by the backend, if any
	//
	// required: false
	// example: 42
	ReportedProgress *float64 `json:"reportedProgress,omitempty"`
}

// StartDateValue the start date, or an empty string when missing
func (j Job) StartDateValue() string {
	if j.StartDate == nil {
		return ""
	}
	return *j.StartDate
}

// JobView is a job with the values derived for the dashboard
// swagger:model JobView
type JobView struct {
	Job

	// AvgTime mean duration in seconds of earlier successful runs with the same name
	//
	// required: false
	// example: 3723
	AvgTime *float64 `json:"avgTime"`

	// ElapsedTime seconds since the job started, for running jobs
	//
	// required: true
	// example: 150
	ElapsedTime int64 `json:"elapsedTime"`

	// Progress percent 0-100
	//
	// required: true
	// example: 45
	Progress int `json:"progress"`

	// Overdue the job runs longer than its estimated duration
	//
	// required: true
	Overdue bool `json:"overdue"`

	// StartedDisplay formatted start date, "—" when missing
	//
	// required: true
	// example: Jan 2, 03:04 PM
	StartedDisplay string `json:"startedDisplay"`

	// EndedDisplay formatted end date, "—" when missing
	//
	// required: true
	EndedDisplay string `json:"endedDisplay"`

	// AvgTimeMessage hint shown for running jobs
	//
	// required: false
	// example: Avg Time: 62 min
	AvgTimeMessage string `json:"avgTimeMessage,omitempty"`
}
