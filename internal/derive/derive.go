package derive

import (
	"time"

	"github.com/equinor/radix-common/utils/slice"
	"github.com/equinor/radix-job-dashboard/internal/display"
	"github.com/equinor/radix-job-dashboard/internal/estimate"
	"github.com/equinor/radix-job-dashboard/internal/filter"
	"github.com/equinor/radix-job-dashboard/internal/predicates"
	"github.com/equinor/radix-job-dashboard/internal/progress"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
)

// Input State of a dashboard session the dashboard is derived from
type Input struct {
	Jobs          []modelsv1.Job
	Actions       []modelsv1.UserAction
	Statistics    modelsv1.Statistics
	Filters       modelsv1.FilterState
	Elapsed       map[string]int64
	Notice        *modelsv1.Notice
	HasMoreJobs   bool
	Loaded        bool
	LastRefreshed *time.Time
}

// Build Derives the dashboard from the session state at time now
func Build(input Input, options modelsv1.DashboardOptions, now time.Time) modelsv1.Dashboard {
	averages := estimate.AveragesByName(input.Jobs)
	toView := viewer(averages, input.Elapsed, now.Location())

	filtered := filter.Jobs(input.Jobs, input.Filters, now)
	running, queued, terminal := filter.Partition(filtered)
	terminal = filter.SortByStartDesc(terminal, now.Location())
	statistics := filter.Statistics(filtered, input.Statistics, input.Filters)

	return modelsv1.Dashboard{
		Statistics:        statistics,
		StatisticsDisplay: display.FormatStatistics(statistics),
		Filters:           input.Filters,
		Running:           toJobPage(filter.Paginate(running, options.RunningPage, filter.RunningPageSize), toView),
		Queued:            toJobPage(filter.Paginate(queued, options.QueuedPage, filter.QueuedPageSize), toView),
		Jobs:              toJobPage(filter.Paginate(terminal, input.Filters.CurrentPage, filter.TerminalPageSize), toView),
		FilteredTotal:     len(filtered),
		Actions:           filter.Actions(input.Actions, input.Filters, now),
		HasMoreJobs:       input.HasMoreJobs,
		Loaded:            input.Loaded,
		Notice:            input.Notice,
		LastRefreshed:     input.LastRefreshed,
	}
}

// JobDetails The view of the job with the id, false when the session holds no such job
func JobDetails(input Input, id string, now time.Time) (modelsv1.JobView, bool) {
	job, ok := slice.FindFirst(input.Jobs, predicates.IsJobWithID(id))
	if !ok {
		return modelsv1.JobView{}, false
	}
	return viewer(estimate.AveragesByName(input.Jobs), input.Elapsed, now.Location())(job), true
}

func viewer(averages map[string]float64, elapsed map[string]int64, loc *time.Location) func(modelsv1.Job) modelsv1.JobView {
	return func(job modelsv1.Job) modelsv1.JobView {
		view := modelsv1.JobView{
			Job:            job,
			ElapsedTime:    elapsed[job.ID],
			StartedDisplay: display.FormatDatePtr(job.StartDate, loc),
			EndedDisplay:   display.FormatDatePtr(job.EndDate, loc),
		}
		if average, ok := averages[job.JobName]; ok {
			view.AvgTime = &average
		}
		projection := progress.Project(job.Status, view.AvgTime, float64(view.ElapsedTime), job.ReportedProgress)
		view.Progress = projection.Percent
		view.Overdue = projection.Overdue
		if job.Status.IsRunning() {
			view.AvgTimeMessage = display.AverageTimeMessage(view.AvgTime, view.Overdue)
		}
		return view
	}
}

func toJobPage(page filter.Page[modelsv1.Job], toView func(modelsv1.Job) modelsv1.JobView) modelsv1.JobPage {
	items := make([]modelsv1.JobView, 0, len(page.Items))
	for _, job := range page.Items {
		items = append(items, toView(job))
	}
	return modelsv1.JobPage{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
}
