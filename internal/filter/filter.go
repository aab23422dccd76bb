package filter

import (
	"strings"
	"time"

	"github.com/equinor/radix-common/utils/slice"
	"github.com/equinor/radix-job-dashboard/internal/normalize"
	"github.com/equinor/radix-job-dashboard/internal/stats"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
)

// Jobs Jobs matching the name, user, status and date range filters.
// When name, user and status filters are all set the jobs were filtered by the backend and are returned as is
func Jobs(jobs []modelsv1.Job, filters modelsv1.FilterState, now time.Time) []modelsv1.Job {
	if filters.HasSearchFilters() {
		return jobs
	}
	return slice.FindAll(jobs, func(job modelsv1.Job) bool {
		return containsFold(job.JobName, filters.JobNameFilter) &&
			containsFold(job.UserName, filters.UserNameFilter) &&
			matchesStatus(job.Status, filters.StatusFilter) &&
			MatchesDateRange(job.StartDateValue(), filters.DateRangeFilter, now)
	})
}

// Actions User actions matching the name, user and date range filters. The name filter applies to the
// file name, or to the job name when the action has no file name
func Actions(actions []modelsv1.UserAction, filters modelsv1.FilterState, now time.Time) []modelsv1.UserAction {
	return slice.FindAll(actions, func(action modelsv1.UserAction) bool {
		name := action.FileName
		if len(name) == 0 {
			name = action.JobName
		}
		return containsFold(name, filters.JobNameFilter) &&
			containsFold(action.UserName, filters.UserNameFilter) &&
			MatchesDateRange(action.Timestamp, filters.DateRangeFilter, now)
	})
}

// Statistics Statistics to show for the filters. The backend statistics cover the default view,
// any other view counts the filtered jobs
func Statistics(filtered []modelsv1.Job, backend modelsv1.Statistics, filters modelsv1.FilterState) modelsv1.Statistics {
	if filters.IsDefaultView() {
		return backend
	}
	return stats.FromJobs(filtered)
}

func containsFold(value, part string) bool {
	return len(part) == 0 || strings.Contains(strings.ToLower(value), strings.ToLower(part))
}

func matchesStatus(status modelsv1.JobStatusEnum, statusFilter string) bool {
	return len(statusFilter) == 0 || normalize.NormalizeStatus(string(status)) == normalize.NormalizeStatus(statusFilter)
}
