package users

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-fetcher/fetcher"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
)

const (
	usersPath  = "/users"
	healthPath = "/health"
)

// Health check messages
const (
	MsgHealthy     = "users API is ok"
	MsgRateLimited = "users API is rate limiting requests"
	MsgUnhealthy   = "users API is unhealthy"
)

// Client is the client for the users API
type Client struct {
	users  fetcher.Task[Result]
	health fetcher.Task[health]
}

// NewClient returns a new Client that makes its requests with perform.
// Resource URLs are relative, so perform is expected to resolve them
// against the users API host.
func NewClient(perform fetcher.PerformRequest, opts ...fetcher.TaskOption) (*Client, error) {
	uf, err := NewUsersFetcher()
	if err != nil {
		return nil, err
	}

	hf, err := newHealthFetcher()
	if err != nil {
		return nil, err
	}

	return &Client{
		users:  fetcher.Bind(perform, uf, opts...),
		health: fetcher.Bind(perform, hf, opts...),
	}, nil
}

// NewUsersFetcher builds the Fetcher for GET /users. The documented success
// and validation responses form the base table, which is then extended with
// the request failures.
func NewUsersFetcher() (*fetcher.Fetcher[Result], error) {
	base, err := fetcher.Make(
		fetcher.Get(usersPath),
		fetcher.Table[Result]{
			http.StatusOK:                  decodeUsers,
			http.StatusUnprocessableEntity: decodeUnprocessable,
		},
		fetcher.Unexpected[Result](),
		fetcher.Named("users"),
	)
	if err != nil {
		return nil, err
	}

	return base.Extend(
		fetcher.Table[Result]{
			http.StatusBadRequest:   decodeBadRequest,
			http.StatusUnauthorized: decodeUnauthorised,
		},
		fetcher.Expect(
			http.StatusOK,
			http.StatusBadRequest,
			http.StatusUnauthorized,
			http.StatusUnprocessableEntity,
		),
	)
}

// GetUsers calls GET /users. Every documented status is returned as a
// Result; any other status, or a response that cannot be decoded, is an
// error.
func (c *Client) GetUsers(ctx context.Context) (Result, error) {
	return c.users(ctx)
}

// Checker calls the users API health endpoint and updates the provided
// CheckState accordingly
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	h, err := c.health(ctx)
	if err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), fetcher.StatusCode(err))
	}

	return state.Update(h.status, h.message, h.code)
}

// health is the state reported by the users API health endpoint
type health struct {
	status  string
	message string
	code    int
}

func healthState(status, message string) fetcher.Decoder[health] {
	return func(ctx context.Context, res *http.Response) (health, error) {
		return health{status: status, message: message, code: res.StatusCode}, nil
	}
}

func newHealthFetcher() (*fetcher.Fetcher[health], error) {
	return fetcher.Make(
		fetcher.Get(healthPath),
		fetcher.Table[health]{
			http.StatusOK:              healthState(healthcheck.StatusOK, MsgHealthy),
			http.StatusTooManyRequests: healthState(healthcheck.StatusWarning, MsgRateLimited),
		},
		healthState(healthcheck.StatusCritical, MsgUnhealthy),
		fetcher.Named("users-health"),
	)
}
