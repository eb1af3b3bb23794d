package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents service configuration for dp-fetcher
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	UsersAPIURL                string        `envconfig:"USERS_API_URL"`
	UsersHealthcheckEnabled    bool          `envconfig:"USERS_HEALTHCHECK_ENABLED"`
	RequestTimeout             time.Duration `envconfig:"REQUEST_TIMEOUT"`
	ServiceAuthToken           string        `envconfig:"SERVICE_AUTH_TOKEN"         json:"-"`
	MetricsNamespace           string        `envconfig:"METRICS_NAMESPACE"`
	ComponentTestUseLogFile    bool          `envconfig:"COMPONENT_TEST_USE_LOG_FILE"`
}

var cfg *Config

// Get returns the default config with any modifications through environment
// variables
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:                   ":26900",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
		UsersAPIURL:                "http://localhost:26950",
		UsersHealthcheckEnabled:    true,
		RequestTimeout:             10 * time.Second,
		ServiceAuthToken:           "",
		MetricsNamespace:           "dp_fetcher",
		ComponentTestUseLogFile:    false,
	}

	return cfg, envconfig.Process("", cfg)
}
