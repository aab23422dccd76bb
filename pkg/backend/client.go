package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/equinor/radix-job-dashboard/internal/normalize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	jobsPath       = "/jobs"
	actionsPath    = "/actions"
	statisticsPath = "/jobs/stats"
	maxErrorBody   = 512
)

// Client Reads jobs, user actions and job statistics from the job backend
type Client interface {
	// GetJobs Get a page of job records
	GetJobs(ctx context.Context, query Query) ([]normalize.Record, error)
	// GetActions Get a page of user action records
	GetActions(ctx context.Context, query Query) ([]normalize.Record, error)
	// GetStatistics Get the job status summary for the last days, 0 is all time
	GetStatistics(ctx context.Context, days int) (interface{}, error)
}

// ResponseError The backend responded with a non-success status code
type ResponseError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient Creates a client for the backend REST API at baseURL
func NewClient(baseURL string, timeout time.Duration) Client {
	return NewClientWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTPClient Creates a client for the backend REST API at baseURL using httpClient
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) Client {
	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     log.Logger.With().Str("pkg", "backend").Logger(),
	}
}

func (c *client) GetJobs(ctx context.Context, query Query) ([]normalize.Record, error) {
	return c.getRecords(ctx, jobsPath, query.Values())
}

func (c *client) GetActions(ctx context.Context, query Query) ([]normalize.Record, error) {
	return c.getRecords(ctx, actionsPath, query.Values())
}

func (c *client) GetStatistics(ctx context.Context, days int) (interface{}, error) {
	values := url.Values{}
	values.Set("days", strconv.Itoa(days))
	var statistics interface{}
	if err := c.get(ctx, statisticsPath, values, &statistics); err != nil {
		return nil, err
	}
	return statistics, nil
}

func (c *client) getRecords(ctx context.Context, path string, values url.Values) ([]normalize.Record, error) {
	var payload interface{}
	if err := c.get(ctx, path, values, &payload); err != nil {
		return nil, err
	}
	items, ok := payload.([]interface{})
	if !ok {
		c.logger.Warn().Str("path", path).Msgf("Expected an array, got %T", payload)
		return []normalize.Record{}, nil
	}
	records := make([]normalize.Record, 0, len(items))
	for _, item := range items {
		record, _ := item.(map[string]interface{})
		records = append(records, record)
	}
	return records, nil
}

func (c *client) get(ctx context.Context, path string, values url.Values, target interface{}) error {
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request %s: %w", path, err)
	}
	request.Header.Set("Accept", "application/json")

	started := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", path, err)
	}
	defer func() { _ = response.Body.Close() }()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response of %s: %w", path, err)
	}
	c.logger.Trace().Str("url", requestURL).Int("status", response.StatusCode).Dur("elapsed", time.Since(started)).Msg("Backend response")

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return &ResponseError{Method: http.MethodGet, URL: requestURL, StatusCode: response.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("failed to decode response of %s: %w", path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
