package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/equinor/radix-job-dashboard/internal/derive"
	"github.com/equinor/radix-job-dashboard/internal/elapsed"
	"github.com/equinor/radix-job-dashboard/internal/filter"
	"github.com/equinor/radix-job-dashboard/internal/normalize"
	"github.com/equinor/radix-job-dashboard/internal/stats"
	"github.com/equinor/radix-job-dashboard/models"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/equinor/radix-job-dashboard/pkg/backend"
	"github.com/equinor/radix-job-dashboard/pkg/filterstore"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	// FallbackActionDays days of user actions requested when an all time request returned none
	FallbackActionDays = 30
	// TickInterval interval of the elapsed time ticks
	TickInterval = time.Second

	refreshFailedMessage    = "Failed to load data from server"
	refreshSucceededMessage = "Data refreshed successfully"
)

// ErrRefreshInProgress another load of more jobs is running
var ErrRefreshInProgress = errors.New("a load of more jobs is already in progress")

// RefreshOptions Options for a refresh of the session data
type RefreshOptions struct {
	// Page of jobs and actions to fetch, 0 replaces the held lists, later pages are appended
	Page int
	// Size of the page, the configured fetch page size when not set
	Size int
	// Notify Set a success notice when the refresh succeeds
	Notify bool
}

type refreshResult struct {
	jobsLoaded int
	jobsErr    error
	discarded  bool
}

// Session Holds the jobs, user actions, statistics and filter selections of a dashboard
type Session struct {
	id      string
	cfg     *models.Config
	client  backend.Client
	store   filterstore.Store
	tracker *elapsed.Tracker
	now     func() time.Time
	logger  zerolog.Logger

	mu                sync.RWMutex
	jobs              []modelsv1.Job
	actions           []modelsv1.UserAction
	statistics        modelsv1.Statistics
	filters           modelsv1.FilterState
	notice            *modelsv1.Notice
	loaded            bool
	lastRefreshed     *time.Time
	jobsPage          int
	hasMoreJobs       bool
	generation        uint64
	appliedGeneration uint64

	loadMu      sync.Mutex
	lifecycleMu sync.Mutex
	scheduler   *cron.Cron
	cancel      context.CancelFunc
	subscribers *broadcaster
}

// New Creates a session and restores its persisted filter selections
func New(ctx context.Context, cfg *models.Config, client backend.Client, store filterstore.Store, options ...Option) *Session {
	s := &Session{
		id:          cfg.SessionID,
		cfg:         cfg,
		client:      client,
		store:       store,
		tracker:     elapsed.NewTracker(),
		now:         time.Now,
		logger:      log.Logger.With().Str("pkg", "session").Str("sessionId", cfg.SessionID).Logger(),
		hasMoreJobs: true,
		subscribers: newBroadcaster(),
	}
	for _, option := range options {
		option(s)
	}
	s.filters = s.restoreFilters(ctx)
	return s
}

// ID of the session
func (s *Session) ID() string {
	return s.id
}

// Start Loads the data and schedules the periodic refresh and the elapsed time ticks
func (s *Session) Start(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()
	if s.scheduler != nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	refreshSpec, refreshInterval := everySpec(s.cfg.RefreshInterval)
	if refreshInterval != s.cfg.RefreshInterval {
		s.logger.Warn().Dur("configured", s.cfg.RefreshInterval).Dur("used", refreshInterval).Msg("Refresh interval is scheduled in whole seconds")
	}
	if _, err := scheduler.AddFunc(refreshSpec, func() {
		if err := s.Refresh(runCtx, RefreshOptions{}); err != nil {
			s.logger.Warn().Err(err).Msg("Scheduled refresh failed")
		}
	}); err != nil {
		cancel()
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}
	tickSpec, _ := everySpec(TickInterval)
	if _, err := scheduler.AddFunc(tickSpec, s.tick); err != nil {
		cancel()
		return fmt.Errorf("failed to schedule elapsed time tick: %w", err)
	}

	if err := s.Refresh(runCtx, RefreshOptions{}); err != nil {
		s.logger.Warn().Err(err).Msg("Initial refresh failed")
	}
	s.subscribers.open()
	scheduler.Start()
	s.scheduler, s.cancel = scheduler, cancel
	s.logger.Info().Dur("refreshInterval", refreshInterval).Msg("Dashboard session started")
	return nil
}

// Stop Stops the scheduled jobs and waits for running ones to finish. No refresh or tick happens afterwards
func (s *Session) Stop() {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()
	if s.scheduler == nil {
		return
	}
	s.cancel()
	<-s.scheduler.Stop().Done()
	s.scheduler, s.cancel = nil, nil
	s.subscribers.closeAll()
	s.logger.Info().Msg("Dashboard session stopped")
}

// Refresh Fetches jobs, user actions and statistics from the backend and applies them.
// A failed source keeps its held data and sets an error notice, the other sources are still applied
func (s *Session) Refresh(ctx context.Context, options RefreshOptions) error {
	_, err := s.refresh(ctx, options)
	return err
}

// LoadMoreJobs Fetches the next page of jobs and appends it. The page is dropped when a refresh of the
// first page was applied while it was fetched. The error is the failure of the jobs page, failures of
// user actions or statistics only set the error notice
func (s *Session) LoadMoreJobs(ctx context.Context) (modelsv1.LoadMoreResult, error) {
	if !s.loadMu.TryLock() {
		return modelsv1.LoadMoreResult{}, ErrRefreshInProgress
	}
	defer s.loadMu.Unlock()

	s.mu.RLock()
	nextPage := s.jobsPage + 1
	s.mu.RUnlock()

	result, _ := s.refresh(ctx, RefreshOptions{Page: nextPage})
	s.mu.Lock()
	loadMore := modelsv1.LoadMoreResult{}
	if result.jobsErr == nil && !result.discarded {
		s.jobsPage = nextPage
		s.hasMoreJobs = result.jobsLoaded >= s.pageSize(0)
		loadMore.Loaded = result.jobsLoaded
	}
	loadMore.TotalJobs, loadMore.HasMoreJobs = len(s.jobs), s.hasMoreJobs
	s.mu.Unlock()
	s.subscribers.notify()
	return loadMore, result.jobsErr
}

// Snapshot Copy of the session state to derive a dashboard from
func (s *Session) Snapshot() derive.Input {
	s.mu.RLock()
	defer s.mu.RUnlock()
	input := derive.Input{
		Jobs:        slices.Clone(s.jobs),
		Actions:     slices.Clone(s.actions),
		Statistics:  s.statistics,
		Filters:     s.filters,
		Elapsed:     s.tracker.Snapshot(),
		HasMoreJobs: s.hasMoreJobs,
		Loaded:      s.loaded,
	}
	if s.notice != nil {
		notice := *s.notice
		input.Notice = &notice
	}
	if s.lastRefreshed != nil {
		lastRefreshed := *s.lastRefreshed
		input.LastRefreshed = &lastRefreshed
	}
	return input
}

// Dashboard Derives the dashboard from the current state
func (s *Session) Dashboard(options modelsv1.DashboardOptions) modelsv1.Dashboard {
	return derive.Build(s.Snapshot(), options, s.now())
}

// JobDetails The job with the id and its derived values
func (s *Session) JobDetails(id string) (modelsv1.JobView, bool) {
	return derive.JobDetails(s.Snapshot(), id, s.now())
}

// Subscribe Returns a channel signalled after every tick and data change, and a func to unsubscribe.
// The channel is closed when the session stops
func (s *Session) Subscribe() (<-chan struct{}, func()) {
	return s.subscribers.subscribe()
}

func (s *Session) tick() {
	s.tracker.Tick()
	s.subscribers.notify()
}

func (s *Session) pageSize(size int) int {
	if size > 0 {
		return size
	}
	return s.cfg.FetchPageSize
}

func (s *Session) refresh(ctx context.Context, options RefreshOptions) (refreshResult, error) {
	size := s.pageSize(options.Size)

	s.mu.Lock()
	filters, firstLoad := s.filters, !s.loaded
	if options.Page == 0 {
		s.generation++
	}
	generation := s.generation
	s.mu.Unlock()

	jobsDays := filter.DateRangeToDays(filters.DateRangeFilter)
	statsDays := jobsDays
	if firstLoad {
		statsDays = 0
	}
	query := backend.Query{Page: options.Page, Size: size, Days: jobsDays}
	if filters.HasSearchFilters() {
		query.UserName = filters.UserNameFilter
		query.JobName = filters.JobNameFilter
		query.FileName = filters.JobNameFilter
		query.Status = filters.StatusFilter
	}

	var (
		jobRecords, actionRecords  []normalize.Record
		rawStatistics              interface{}
		jobsErr, actionsErr, stErr error
		g                          errgroup.Group
	)
	g.Go(func() error {
		jobRecords, jobsErr = s.client.GetJobs(ctx, query)
		return jobsErr
	})
	g.Go(func() error {
		actionRecords, actionsErr = s.client.GetActions(ctx, query)
		return actionsErr
	})
	g.Go(func() error {
		rawStatistics, stErr = s.client.GetStatistics(ctx, statsDays)
		return stErr
	})
	_ = g.Wait()

	if len(actionRecords) == 0 && jobsDays == 0 {
		fallback, err := s.client.GetActions(ctx, backend.Query{Page: 0, Size: s.cfg.FetchPageSize, Days: FallbackActionDays})
		if err == nil && len(fallback) > 0 {
			s.logger.Debug().Msgf("Using %d user actions of the last %d days, all time request returned none", len(fallback), FallbackActionDays)
			actionRecords, actionsErr = fallback, nil
		}
	}

	jobs := normalize.NormalizeJobs(jobRecords)
	actions := normalize.NormalizeActions(actionRecords)
	var statistics modelsv1.Statistics
	if stErr == nil {
		statistics = stats.Aggregate(stats.ParseRows(rawStatistics))
	}
	err := errors.Join(wrapSourceError("jobs", jobsErr), wrapSourceError("actions", actionsErr), wrapSourceError("statistics", stErr))
	now := s.now()

	s.mu.Lock()
	if generation < s.appliedGeneration {
		s.mu.Unlock()
		s.logger.Debug().Uint64("generation", generation).Int("page", options.Page).Msg("Discarded a refresh superseded by a newer one")
		return refreshResult{discarded: true, jobsErr: wrapSourceError("jobs", jobsErr)}, err
	}
	if options.Page == 0 {
		s.appliedGeneration = generation
	}
	if jobsErr == nil {
		s.jobs = mergePage(s.jobs, jobs, options.Page)
		if options.Page == 0 {
			s.jobsPage = 0
			s.hasMoreJobs = len(jobs) >= size
		}
	}
	if actionsErr == nil {
		s.actions = mergePage(s.actions, actions, options.Page)
	}
	s.statistics = statistics
	s.tracker.Refresh(s.jobs, now)
	switch {
	case err != nil:
		s.notice = &modelsv1.Notice{Level: modelsv1.NoticeLevelError, Message: refreshFailedMessage, Created: now}
	case options.Notify && !firstLoad:
		s.notice = &modelsv1.Notice{Level: modelsv1.NoticeLevelSuccess, Message: refreshSucceededMessage, Created: now}
	}
	s.loaded = true
	s.lastRefreshed = &now
	heldJobs := len(s.jobs)
	s.mu.Unlock()

	s.subscribers.notify()
	if err != nil {
		s.logger.Warn().Err(err).Msg(refreshFailedMessage)
	} else {
		s.logger.Debug().Int("page", options.Page).Int("jobs", heldJobs).Int("loaded", len(jobs)).Msg("Refreshed")
	}
	return refreshResult{jobsLoaded: len(jobs), jobsErr: wrapSourceError("jobs", jobsErr)}, err
}

// everySpec Cron spec running every interval. Cron schedules in whole seconds, so the interval is
// truncated to seconds, and is at least one second
func everySpec(interval time.Duration) (string, time.Duration) {
	interval = max(interval.Truncate(time.Second), time.Second)
	return fmt.Sprintf("@every %s", interval), interval
}

func mergePage[T any](held, fetched []T, page int) []T {
	if page == 0 {
		return fetched
	}
	return append(slices.Clone(held), fetched...)
}

func wrapSourceError(source string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to get %s: %w", source, err)
}
