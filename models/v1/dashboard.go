package v1

import "time"

// JobPage is one page of a job list
// swagger:model JobPage
type JobPage struct {
	// Items on the page
	//
	// required: true
	Items []JobView `json:"items"`

	// Page number, starting at 1
	//
	// required: true
	// example: 1
	Page int `json:"page"`

	// PageSize maximum number of items on a page
	//
	// required: true
	// example: 12
	PageSize int `json:"pageSize"`

	// TotalPages number of pages, at least 1
	//
	// required: true
	// example: 3
	TotalPages int `json:"totalPages"`

	// TotalItems number of items in all pages
	//
	// required: true
	// example: 30
	TotalItems int `json:"totalItems"`
}

// NoticeLevel Severity of a notice
// swagger:enum NoticeLevel
type NoticeLevel string

const (
	// NoticeLevelSuccess an operation succeeded
	NoticeLevelSuccess NoticeLevel = "success"
	// NoticeLevelError an operation failed
	NoticeLevelError NoticeLevel = "error"
)

// Notice is a transient message about the last refresh
// swagger:model Notice
type Notice struct {
	// Level of the notice
	//
	// required: true
	// example: error
	Level NoticeLevel `json:"level"`

	// Message of the notice
	//
	// required: true
	// example: Failed to load data from server
	Message string `json:"message"`

	// Created timestamp
	//
	// required: true
	// swagger:strfmt date-time
	Created time.Time `json:"created"`
}

// Dashboard holds the derived state of a dashboard session
// swagger:model Dashboard
type Dashboard struct {
	// Statistics for the current filters
	//
	// required: true
	Statistics Statistics `json:"statistics"`

	// StatisticsDisplay compact formatted statistics
	//
	// required: true
	StatisticsDisplay map[string]string `json:"statisticsDisplay"`

	// Filters applied
	//
	// required: true
	Filters FilterState `json:"filters"`

	// Running jobs in progress
	//
	// required: true
	Running JobPage `json:"running"`

	// Queued jobs waiting
	//
	// required: true
	Queued JobPage `json:"queued"`

	// Jobs completed and other terminal jobs, newest first
	//
	// required: true
	Jobs JobPage `json:"jobs"`

	// FilteredTotal number of jobs matching the filters, all statuses
	//
	// required: true
	FilteredTotal int `json:"filteredTotal"`

	// Actions user actions matching the filters
	//
	// required: true
	Actions []UserAction `json:"actions"`

	// HasMoreJobs more jobs can be loaded from the backend
	//
	// required: true
	HasMoreJobs bool `json:"hasMoreJobs"`

	// Loaded at least one refresh has completed
	//
	// required: true
	Loaded bool `json:"loaded"`

	// Notice about the last refresh
	//
	// required: false
	Notice *Notice `json:"notice,omitempty"`

	// LastRefreshed timestamp of the last applied refresh
	//
	// required: false
	// swagger:strfmt date-time
	LastRefreshed *time.Time `json:"lastRefreshed,omitempty"`
}

// DashboardOptions holds the per-view paging of the running and queued lists
type DashboardOptions struct {
	RunningPage int
	QueuedPage  int
}

// LoadMoreResult holds the result of loading the next page of jobs from the backend
// swagger:model LoadMoreResult
type LoadMoreResult struct {
	// Loaded number of jobs received
	//
	// required: true
	Loaded int `json:"loaded"`

	// TotalJobs number of jobs held by the session
	//
	// required: true
	TotalJobs int `json:"totalJobs"`

	// HasMoreJobs more jobs can be loaded
	//
	// required: true
	HasMoreJobs bool `json:"hasMoreJobs"`
}
