package v1

// DateRange Time window applied to jobs and actions
// swagger:enum DateRange
type DateRange string

const (
	// DateRangeAll no time constraint
	DateRangeAll DateRange = ""
	// DateRangeToday since local midnight today
	DateRangeToday DateRange = "today"
	// DateRangeYesterday the previous calendar day
	DateRangeYesterday DateRange = "yesterday"
	// DateRangeWeek the last 7 days
	DateRangeWeek DateRange = "week"
	// DateRangeMonth the last 30 days
	DateRangeMonth DateRange = "month"
)

// FilterState holds the filter selections of a dashboard session
// swagger:model FilterState
type FilterState struct {
	// JobNameFilter case-insensitive part of the job name
	//
	// required: false
	// example: import
	JobNameFilter string `json:"jobNameFilter"`

	// UserNameFilter case-insensitive part of the user name
	//
	// required: false
	// example: jdoe
	UserNameFilter string `json:"userNameFilter"`

	// DateRangeFilter time window
	//
	// required: false
	// enum: ,today,yesterday,week,month
	// example: week
	DateRangeFilter DateRange `json:"dateRangeFilter" validate:"omitempty,oneof=today yesterday week month"`

	// StatusFilter job status, matched after normalization
	//
	// required: false
	// example: failed
	StatusFilter string `json:"statusFilter"`

	// CurrentPage page of the completed jobs list, starting at 1
	//
	// required: true
	// minimum: 1
	// example: 1
	CurrentPage int `json:"currentPage" validate:"min=1"`
}

// DefaultFilterState filter selections for a new session, and after a reset
func DefaultFilterState() FilterState {
	return FilterState{
		DateRangeFilter: DateRangeWeek,
		CurrentPage:     1,
	}
}

// HasSearchFilters job name, user name and status filters are all set
func (f FilterState) HasSearchFilters() bool {
	return len(f.JobNameFilter) > 0 && len(f.UserNameFilter) > 0 && len(f.StatusFilter) > 0
}

// IsDefaultView no name, user or status filter, and the default date range
func (f FilterState) IsDefaultView() bool {
	return len(f.JobNameFilter) == 0 && len(f.UserNameFilter) == 0 && len(f.StatusFilter) == 0 &&
		f.DateRangeFilter == DateRangeWeek
}

// SameCriteria the filter criteria are equal, the current page is ignored
func (f FilterState) SameCriteria(other FilterState) bool {
	return f.JobNameFilter == other.JobNameFilter &&
		f.UserNameFilter == other.UserNameFilter &&
		f.DateRangeFilter == other.DateRangeFilter &&
		f.StatusFilter == other.StatusFilter
}
