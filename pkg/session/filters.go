package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dario.cat/mergo"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/equinor/radix-job-dashboard/pkg/filterstore"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidFilters the filter selections did not pass validation
var ErrInvalidFilters = errors.New("invalid filters")

var validate = validator.New()

// persistedFilters filter selections as stored, a nil field was not stored
type persistedFilters struct {
	JobNameFilter   *string             `json:"jobNameFilter"`
	UserNameFilter  *string             `json:"userNameFilter"`
	DateRangeFilter *modelsv1.DateRange `json:"dateRangeFilter"`
	StatusFilter    *string             `json:"statusFilter"`
	CurrentPage     *int                `json:"currentPage"`
}

func toPersisted(filters modelsv1.FilterState) persistedFilters {
	return persistedFilters{
		JobNameFilter:   &filters.JobNameFilter,
		UserNameFilter:  &filters.UserNameFilter,
		DateRangeFilter: &filters.DateRangeFilter,
		StatusFilter:    &filters.StatusFilter,
		CurrentPage:     &filters.CurrentPage,
	}
}

func (p persistedFilters) filterState() modelsv1.FilterState {
	return modelsv1.FilterState{
		JobNameFilter:   *p.JobNameFilter,
		UserNameFilter:  *p.UserNameFilter,
		DateRangeFilter: *p.DateRangeFilter,
		StatusFilter:    *p.StatusFilter,
		CurrentPage:     *p.CurrentPage,
	}
}

// Filters The current filter selections
func (s *Session) Filters() modelsv1.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// UpdateFilters Replaces the filter selections. A change of the criteria starts the job list at page 1,
// a change of the date range refreshes the data
func (s *Session) UpdateFilters(ctx context.Context, filters modelsv1.FilterState) (modelsv1.FilterState, error) {
	if filters.CurrentPage == 0 {
		filters.CurrentPage = 1
	}
	if err := validate.Struct(filters); err != nil {
		return s.Filters(), fmt.Errorf("%w: %v", ErrInvalidFilters, err)
	}

	s.mu.Lock()
	previous := s.filters
	if !previous.SameCriteria(filters) {
		filters.CurrentPage = 1
	}
	s.filters = filters
	s.mu.Unlock()

	s.persistFilters(ctx, filters)
	s.subscribers.notify()
	if previous.DateRangeFilter != filters.DateRangeFilter {
		if err := s.Refresh(ctx, RefreshOptions{}); err != nil {
			s.logger.Warn().Err(err).Msg("Refresh after date range change failed")
		}
	}
	return filters, nil
}

// ResetFilters Restores the default filter selections
func (s *Session) ResetFilters(ctx context.Context) (modelsv1.FilterState, error) {
	return s.UpdateFilters(ctx, modelsv1.DefaultFilterState())
}

func (s *Session) persistFilters(ctx context.Context, filters modelsv1.FilterState) {
	value, err := json.Marshal(filters)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to serialize filters")
		return
	}
	if err := s.store.Save(ctx, filterstore.SessionKey(s.id), value); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist filters")
	}
}

// restoreFilters Reads the persisted filter selections. Fields not stored get their default,
// a missing, corrupt or invalid state gives the defaults
func (s *Session) restoreFilters(ctx context.Context) modelsv1.FilterState {
	defaults := modelsv1.DefaultFilterState()
	value, err := s.store.Load(ctx, filterstore.SessionKey(s.id))
	if err != nil {
		if !errors.Is(err, filterstore.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("Failed to load persisted filters")
		}
		return defaults
	}
	var persisted persistedFilters
	if err := json.Unmarshal(value, &persisted); err != nil {
		s.logger.Warn().Err(err).Msg("Persisted filters are corrupt, using defaults")
		return defaults
	}
	if err := mergo.Merge(&persisted, toPersisted(defaults), mergo.WithoutDereference); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to merge persisted filters with defaults")
		return defaults
	}
	filters := persisted.filterState()
	if err := validate.Struct(filters); err != nil {
		s.logger.Warn().Err(err).Msg("Persisted filters are invalid, using defaults")
		return defaults
	}
	return filters
}
