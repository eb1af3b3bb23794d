package steps

import (
	"context"
	"net/http"

	componenttest "github.com/ONSdigital/dp-component-test"
	"github.com/ONSdigital/dp-fetcher/config"
	"github.com/ONSdigital/dp-fetcher/service"
	"github.com/ONSdigital/dp-fetcher/service/mock"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/http"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/maxcnunes/httpfake"
	"github.com/pkg/errors"
)

var (
	BuildTime string = "1625046891"
	GitCommit string = "7434fe334d9f51b7239f978094ea29d10ac33b16"
	Version   string = ""
)

type Component struct {
	componenttest.ErrorFeature
	apiFeature *componenttest.APIFeature
	svc        *service.Service
	cfg        *config.Config
	router     http.Handler
	UsersAPI   *httpfake.HTTPFake
}

func NewComponent() (*Component, error) {
	c := &Component{
		UsersAPI: httpfake.New(),
	}

	cfg, err := config.Get()
	if err != nil {
		return nil, errors.Wrap(err, "unexpected config error in NewComponent")
	}

	cfg.UsersAPIURL = c.UsersAPI.ResolveURL("")
	c.cfg = cfg

	service.GetHealthCheck = c.GetHealthCheck
	service.GetHTTPServer = c.GetHTTPServer

	c.apiFeature = componenttest.NewAPIFeature(c.InitialiseService)

	return c, nil
}

// InitialiseService initialises a new service and returns its router, which
// the api feature sends its requests to
func (c *Component) InitialiseService() (http.Handler, error) {
	c.svc = service.New()
	if err := c.svc.Init(context.Background(), c.cfg, BuildTime, GitCommit, Version); err != nil {
		return nil, errors.Wrap(err, "unexpected service Init error in InitialiseService")
	}

	return c.router, nil
}

func (c *Component) Close() {
	ctx := context.Background()

	if c.svc != nil {
		if err := c.svc.Close(ctx); err != nil {
			log.Error(ctx, "error closing service", err)
		}
	}

	c.UsersAPI.Close()
}

func (c *Component) Reset() error {
	c.UsersAPI.Reset()
	c.apiFeature.Reset()
	return nil
}

func (c *Component) GetHealthCheck(cfg *config.Config, buildTime string, gitCommit string, version string) (service.HealthChecker, error) {
	return &mock.HealthCheckerMock{
		AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
		HandlerFunc:  func(w http.ResponseWriter, req *http.Request) { w.WriteHeader(http.StatusOK) },
		StartFunc:    func(ctx context.Context) {},
		StopFunc:     func() {},
	}, nil
}

func (c *Component) GetHTTPServer(bindAddr string, router http.Handler) service.HTTPServer {
	c.router = router
	return dphttp.NewServer(bindAddr, router)
}
