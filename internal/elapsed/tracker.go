package elapsed

import (
	"math"
	"sync"
	"time"

	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/equinor/radix-job-dashboard/utils"
)

// Tracker Seconds since start of each running job, keyed by job id
type Tracker struct {
	mu      sync.RWMutex
	seconds map[string]int64
}

// NewTracker Creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{seconds: make(map[string]int64)}
}

// Refresh Replaces all entries with now minus start date of every running job.
// Jobs without id or with a missing or unparseable start date are not tracked
func (t *Tracker) Refresh(jobs []modelsv1.Job, now time.Time) {
	seconds := make(map[string]int64)
	for _, job := range jobs {
		if !job.Status.IsRunning() || len(job.ID) == 0 {
			continue
		}
		started, ok := utils.ParseTimestampPtr(job.StartDate, now.Location())
		if !ok {
			continue
		}
		seconds[job.ID] = int64(math.Floor(now.Sub(started).Seconds()))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seconds = seconds
}

// Tick Adds one second to every entry
func (t *Tracker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id := range t.seconds {
		t.seconds[id]++
	}
}

// Snapshot Copy of all entries
func (t *Tracker) Snapshot() map[string]int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	snapshot := make(map[string]int64, len(t.seconds))
	for id, seconds := range t.seconds {
		snapshot[id] = seconds
	}
	return snapshot
}
