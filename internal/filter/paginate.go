package filter

import (
	"math"
	"slices"
	"time"

	"github.com/equinor/radix-job-dashboard/internal/predicates"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/equinor/radix-job-dashboard/utils"
)

const (
	// RunningPageSize running jobs per page
	RunningPageSize = 5
	// QueuedPageSize queued jobs per page
	QueuedPageSize = 5
	// TerminalPageSize completed, failed, cancelled and other jobs per page
	TerminalPageSize = 12
)

// Page One page of a list
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
}

// Partition Splits jobs into running, queued and all other jobs, keeping their order
func Partition(jobs []modelsv1.Job) (running, queued, terminal []modelsv1.Job) {
	running, queued, terminal = []modelsv1.Job{}, []modelsv1.Job{}, []modelsv1.Job{}
	for _, job := range jobs {
		switch {
		case predicates.IsTerminalJob(job):
			terminal = append(terminal, job)
		case predicates.IsRunningJob(job):
			running = append(running, job)
		default:
			queued = append(queued, job)
		}
	}
	return running, queued, terminal
}

// SortByStartDesc Copy of jobs sorted by start date, newest first. Jobs without a valid start date
// come last, ties keep their original order
func SortByStartDesc(jobs []modelsv1.Job, loc *time.Location) []modelsv1.Job {
	type keyed struct {
		job     modelsv1.Job
		started time.Time
		ok      bool
	}
	items := make([]keyed, 0, len(jobs))
	for _, job := range jobs {
		started, ok := utils.ParseTimestampPtr(job.StartDate, loc)
		items = append(items, keyed{job: job, started: started, ok: ok})
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		switch {
		case a.ok && b.ok:
			return b.started.Compare(a.started)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})
	sorted := make([]modelsv1.Job, 0, len(items))
	for _, item := range items {
		sorted = append(sorted, item.job)
	}
	return sorted
}

// Paginate The page of items with the page size. Pages start at 1, lower pages are read as 1,
// pages after the last one are empty
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}
	totalPages := max(1, int(math.Ceil(float64(len(items))/float64(pageSize))))
	result := Page[T]{Items: []T{}, Page: page, PageSize: pageSize, TotalPages: totalPages, TotalItems: len(items)}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return result
	}
	end := min(start+pageSize, len(items))
	result.Items = append(result.Items, items[start:end]...)
	return result
}
