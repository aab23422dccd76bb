package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultBackendAPIURL            = "http://localhost:8080/api"
	defaultBackendTimeout           = 30 * time.Second
	defaultRefreshInterval          = 15 * time.Second
	defaultFetchPageSize            = 1000
	defaultManualRefreshMinInterval = 2 * time.Second
	defaultPort                     = "8090"
)

// Config instance variables
type Config struct {
	BackendAPIURL            string
	BackendTimeout           time.Duration
	RefreshInterval          time.Duration
	FetchPageSize            int
	ManualRefreshMinInterval time.Duration
	FilterStorePath          string
	SessionID                string
	Port                     string
	LogLevel                 string
	LogPretty                bool
}

type fileConfig struct {
	Backend struct {
		URL     string `toml:"url"`
		Timeout string `toml:"timeout"`
	} `toml:"backend"`
	Dashboard struct {
		SessionID                string `toml:"session_id"`
		Port                     string `toml:"port"`
		RefreshInterval          string `toml:"refresh_interval"`
		FetchPageSize            int    `toml:"fetch_page_size"`
		ManualRefreshMinInterval string `toml:"manual_refresh_min_interval"`
		FilterStorePath          string `toml:"filter_store_path"`
	} `toml:"dashboard"`
	Logging struct {
		Level  string `toml:"level"`
		Pretty bool   `toml:"pretty"`
	} `toml:"logging"`
}

// NewConfig Builds the config from defaults, the optional TOML file at path, and environment variables, in that order
func NewConfig(path string) (*Config, error) {
	cfg := Config{
		BackendAPIURL:            defaultBackendAPIURL,
		BackendTimeout:           defaultBackendTimeout,
		RefreshInterval:          defaultRefreshInterval,
		FetchPageSize:            defaultFetchPageSize,
		ManualRefreshMinInterval: defaultManualRefreshMinInterval,
		Port:                     defaultPort,
		LogLevel:                 "info",
	}
	if len(path) > 0 {
		if err := applyFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(&cfg)
	if len(cfg.SessionID) == 0 {
		cfg.SessionID = uuid.NewString()
	}
	return &cfg, nil
}

func applyFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	setString(file.Backend.URL, &cfg.BackendAPIURL)
	setString(file.Dashboard.SessionID, &cfg.SessionID)
	setString(file.Dashboard.Port, &cfg.Port)
	setString(file.Dashboard.FilterStorePath, &cfg.FilterStorePath)
	setString(file.Logging.Level, &cfg.LogLevel)
	cfg.LogPretty = cfg.LogPretty || file.Logging.Pretty
	setPositiveInt(strconv.Itoa(file.Dashboard.FetchPageSize), &cfg.FetchPageSize)
	setDuration(file.Backend.Timeout, &cfg.BackendTimeout)
	setDuration(file.Dashboard.RefreshInterval, &cfg.RefreshInterval)
	setDuration(file.Dashboard.ManualRefreshMinInterval, &cfg.ManualRefreshMinInterval)
	return nil
}

func applyEnv(cfg *Config) {
	setString(os.Getenv("BACKEND_API_URL"), &cfg.BackendAPIURL)
	setDuration(os.Getenv("BACKEND_TIMEOUT"), &cfg.BackendTimeout)
	setDuration(os.Getenv("REFRESH_INTERVAL"), &cfg.RefreshInterval)
	setPositiveInt(os.Getenv("FETCH_PAGE_SIZE"), &cfg.FetchPageSize)
	setDuration(os.Getenv("MANUAL_REFRESH_MIN_INTERVAL"), &cfg.ManualRefreshMinInterval)
	setString(os.Getenv("FILTER_STORE_PATH"), &cfg.FilterStorePath)
	setString(os.Getenv("DASHBOARD_SESSION_ID"), &cfg.SessionID)
	setString(os.Getenv("DASHBOARD_PORT"), &cfg.Port)
	setString(os.Getenv("LOG_LEVEL"), &cfg.LogLevel)
	if pretty, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("LOG_PRETTY"))); err == nil {
		cfg.LogPretty = pretty
	}
}

func setString(value string, target *string) {
	if value = strings.TrimSpace(value); len(value) > 0 {
		*target = value
	}
}

func setPositiveInt(value string, target *int) {
	if i, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && i > 0 {
		*target = i
	}
}

func setDuration(value string, target *time.Duration) {
	if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && d > 0 {
		*target = d
	}
}
