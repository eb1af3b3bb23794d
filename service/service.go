package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ONSdigital/dp-fetcher/config"
	"github.com/ONSdigital/dp-fetcher/fetcher"
	"github.com/ONSdigital/dp-fetcher/handler"
	"github.com/ONSdigital/dp-fetcher/reporter"
	"github.com/ONSdigital/dp-fetcher/transport"
	"github.com/ONSdigital/dp-fetcher/users"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/http"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service contains all the configs, server and clients to run the service
type Service struct {
	cfg         *config.Config
	server      HTTPServer
	healthCheck HealthChecker
	registry    *prometheus.Registry
	usersClient UsersClient
}

// GetHTTPServer returns an http server
var GetHTTPServer = func(bindAddr string, router http.Handler) HTTPServer {
	s := dphttp.NewServer(bindAddr, router)
	s.HandleOSSignals = false
	return s
}

// GetHealthCheck returns a healthcheck
var GetHealthCheck = func(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	hc := healthcheck.New(versionInfo, cfg.HealthCheckCriticalTimeout, cfg.HealthCheckInterval)
	return &hc, nil
}

// GetMetricsRegistry returns the registry served on /metrics, holding the
// go and process collectors
var GetMetricsRegistry = func() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// GetUsersClient returns a users API client reporting every fetch to r
var GetUsersClient = func(cfg *config.Config, r fetcher.Reporter) (UsersClient, error) {
	tr, err := transport.NewDefault(transport.Config{
		Host:             cfg.UsersAPIURL,
		ServiceAuthToken: cfg.ServiceAuthToken,
		Timeout:          cfg.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	return users.NewClient(tr.Perform, fetcher.WithReporter(r))
}

// New creates a new empty service
func New() *Service {
	return &Service{}
}

// Init initialises all the service dependencies, including healthcheck with checkers, api and middleware
func (svc *Service) Init(ctx context.Context, cfg *config.Config, buildTime, gitCommit, version string) error {
	var err error

	if cfg == nil {
		return errors.New("nil config passed to service init")
	}

	svc.cfg = cfg

	// Get metrics
	svc.registry = GetMetricsRegistry()
	rep := reporter.NewPrometheusReporter(cfg.MetricsNamespace, svc.registry)

	// Get API clients
	if svc.usersClient, err = GetUsersClient(cfg, rep); err != nil {
		return fmt.Errorf("failed to initialise users API client: %w", err)
	}

	// Get HealthCheck
	if svc.healthCheck, err = GetHealthCheck(cfg, buildTime, gitCommit, version); err != nil {
		return fmt.Errorf("could not instantiate healthcheck: %w", err)
	}

	if err := svc.registerCheckers(); err != nil {
		return fmt.Errorf("unable to register checkers: %w", err)
	}

	r := mux.NewRouter()
	r.StrictSlash(true).Path("/health").HandlerFunc(svc.healthCheck.Handler)
	r.StrictSlash(true).Path("/metrics").Handler(promhttp.HandlerFor(svc.registry, promhttp.HandlerOpts{}))
	r.StrictSlash(true).Path("/users").Methods(http.MethodGet).HandlerFunc(handler.NewUsers(svc.usersClient).Handle)
	svc.server = GetHTTPServer(cfg.BindAddr, r)

	return nil
}

// Start starts an initialised service
func (svc *Service) Start(ctx context.Context, svcErrors chan error) {
	log.Info(ctx, "starting service...")

	// Start health checker
	svc.healthCheck.Start(ctx)

	// Run the http server in a new go-routine
	go func() {
		if err := svc.server.ListenAndServe(); err != nil {
			svcErrors <- fmt.Errorf("failure in http listen and serve: %w", err)
		}
	}()
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.cfg.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	go func() {
		defer cancel()

		// stop healthcheck, as it depends on everything else
		if svc.healthCheck != nil {
			svc.healthCheck.Stop()
			log.Info(ctx, "stopped health checker")
		}

		// stop any incoming requests
		if svc.server != nil {
			if err := svc.server.Shutdown(ctx); err != nil {
				log.Error(ctx, "failed to shutdown http server", err)
				hasShutdownError = true
			}
			log.Info(ctx, "stopped http server")
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-ctx.Done()

	// timeout expired
	if ctx.Err() == context.DeadlineExceeded {
		log.Error(ctx, "shutdown timed out", ctx.Err())
		return ctx.Err()
	}

	// other error
	if hasShutdownError {
		err := fmt.Errorf("failed to shutdown gracefully")
		log.Error(ctx, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(ctx, "graceful shutdown was successful")
	return nil
}

// registerCheckers adds the checkers for the service clients to the health check object.
func (svc *Service) registerCheckers() error {
	usersChecker := svc.usersClient.Checker
	if !svc.cfg.UsersHealthcheckEnabled {
		usersChecker = func(ctx context.Context, state *healthcheck.CheckState) error {
			return state.Update(healthcheck.StatusOK, "users API healthcheck placeholder", http.StatusOK)
		}
	}

	if err := svc.healthCheck.AddCheck("Users API client", usersChecker); err != nil {
		return fmt.Errorf("error adding check for Users API client: %w", err)
	}

	return nil
}
