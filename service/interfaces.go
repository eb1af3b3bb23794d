package service

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-fetcher/users"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
)

//go:generate moq -out mock/server.go -pkg mock . HTTPServer
//go:generate moq -out mock/health-check.go -pkg mock . HealthChecker
//go:generate moq -out mock/users-client.go -pkg mock . UsersClient

// HTTPServer defines the required methods from the HTTP server
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HealthChecker defines the required methods from Healthcheck
type HealthChecker interface {
	Handler(w http.ResponseWriter, req *http.Request)
	Start(ctx context.Context)
	Stop()
	AddCheck(name string, checker healthcheck.Checker) (err error)
}

// UsersClient defines the required methods from the users API client
type UsersClient interface {
	GetUsers(ctx context.Context) (users.Result, error)
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}
