package dashboard

import (
	"context"
	"errors"
	"time"

	apierrors "github.com/equinor/radix-job-dashboard/api/errors"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/equinor/radix-job-dashboard/pkg/session"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Handler Serves the dashboard of a session
type Handler interface {
	// GetDashboard Get the derived dashboard
	GetDashboard(ctx context.Context, options modelsv1.DashboardOptions) (*modelsv1.Dashboard, error)
	// GetJob Get a job with its derived values
	GetJob(ctx context.Context, jobID string) (*modelsv1.JobView, error)
	// Refresh Reload the data from the job backend and get the dashboard
	Refresh(ctx context.Context) (*modelsv1.Dashboard, error)
	// LoadMoreJobs Load the next page of jobs from the job backend
	LoadMoreJobs(ctx context.Context) (*modelsv1.LoadMoreResult, error)
	// GetFilters Get the filter selections
	GetFilters(ctx context.Context) (*modelsv1.FilterState, error)
	// UpdateFilters Replace the filter selections
	UpdateFilters(ctx context.Context, filters modelsv1.FilterState) (*modelsv1.FilterState, error)
	// ResetFilters Restore the default filter selections
	ResetFilters(ctx context.Context) (*modelsv1.FilterState, error)
	// Subscribe Get a channel signalled when the dashboard changes, and a func to unsubscribe
	Subscribe(ctx context.Context) (<-chan struct{}, func())
}

type handler struct {
	session        *session.Session
	refreshLimiter *rate.Limiter
}

// New Constructor for the dashboard handler. Explicit refreshes are allowed once per minRefreshInterval
func New(dashboardSession *session.Session, minRefreshInterval time.Duration) Handler {
	return &handler{
		session:        dashboardSession,
		refreshLimiter: rate.NewLimiter(rate.Every(minRefreshInterval), 1),
	}
}

func (h *handler) GetDashboard(_ context.Context, options modelsv1.DashboardOptions) (*modelsv1.Dashboard, error) {
	dashboard := h.session.Dashboard(options)
	return &dashboard, nil
}

func (h *handler) GetJob(_ context.Context, jobID string) (*modelsv1.JobView, error) {
	view, ok := h.session.JobDetails(jobID)
	if !ok {
		return nil, apierrors.NewNotFound("job", jobID)
	}
	return &view, nil
}

func (h *handler) Refresh(ctx context.Context) (*modelsv1.Dashboard, error) {
	if !h.refreshLimiter.Allow() {
		return nil, apierrors.NewTooManyRequests("refresh was requested too recently")
	}
	if err := h.session.Refresh(ctx, session.RefreshOptions{Notify: true}); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Refresh completed with errors")
	}
	dashboard := h.session.Dashboard(modelsv1.DashboardOptions{RunningPage: 1, QueuedPage: 1})
	return &dashboard, nil
}

func (h *handler) LoadMoreJobs(ctx context.Context) (*modelsv1.LoadMoreResult, error) {
	result, err := h.session.LoadMoreJobs(ctx)
	switch {
	case errors.Is(err, session.ErrRefreshInProgress):
		return nil, apierrors.NewTooManyRequests(err.Error())
	case err != nil:
		return nil, apierrors.NewFromError(err)
	}
	return &result, nil
}

func (h *handler) GetFilters(_ context.Context) (*modelsv1.FilterState, error) {
	filters := h.session.Filters()
	return &filters, nil
}

func (h *handler) UpdateFilters(ctx context.Context, filters modelsv1.FilterState) (*modelsv1.FilterState, error) {
	updated, err := h.session.UpdateFilters(ctx, filters)
	if errors.Is(err, session.ErrInvalidFilters) {
		return nil, apierrors.NewInvalidWithReason("filters", err)
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (h *handler) ResetFilters(ctx context.Context) (*modelsv1.FilterState, error) {
	filters, err := h.session.ResetFilters(ctx)
	if err != nil {
		return nil, err
	}
	return &filters, nil
}

func (h *handler) Subscribe(_ context.Context) (<-chan struct{}, func()) {
	return h.session.Subscribe()
}
