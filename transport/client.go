package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ONSdigital/dp-api-clients-go/v2/headers"
	"github.com/ONSdigital/dp-fetcher/fetcher"
	dphttp "github.com/ONSdigital/dp-net/http"
	"github.com/ONSdigital/log.go/v2/log"
)

const defaultTimeout = 30 * time.Second

// Client performs the requests described by fetcher Resources. Its Perform
// method is a fetcher.PerformRequest.
type Client struct {
	ua    httpClient
	host  *url.URL
	token string
}

// NewClient returns a new Client using the given user agent. Relative
// resource URLs are resolved against cfg.Host.
func NewClient(ua httpClient, cfg Config) (*Client, error) {
	c := &Client{
		ua:    ua,
		token: cfg.ServiceAuthToken,
	}

	if cfg.Host != "" {
		host, err := url.Parse(cfg.Host)
		if err != nil {
			return nil, fmt.Errorf("failed to parse host %q: %w", cfg.Host, err)
		}
		c.host = host
	}

	return c, nil
}

// NewDefault returns a Client backed by a dp-net user agent with the
// configured timeout, or 30 seconds if none is set
func NewDefault(cfg Config) (*Client, error) {
	ua := dphttp.NewClient()

	to := cfg.Timeout
	if to <= 0 {
		to = defaultTimeout
	}
	ua.SetTimeout(to)

	return NewClient(ua, cfg)
}

// Perform makes the request described by r. A response with any status code
// is returned as is; only a failure to get a response is an error.
func (c *Client) Perform(ctx context.Context, r fetcher.Resource) (*http.Response, error) {
	u, err := c.resolve(r.URL)
	if err != nil {
		return nil, err
	}
	r.URL = u

	req, err := r.Request(ctx)
	if err != nil {
		return nil, err
	}

	if c.token != "" {
		if err := headers.SetServiceAuthToken(req, c.token); err != nil {
			return nil, fmt.Errorf("failed to set service auth token: %w", err)
		}
	}

	log.Info(ctx, "performing request", log.Data{"method": req.Method, "url": u})

	res, err := c.ua.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	return res, nil
}

// resolve returns the absolute form of path
func (c *Client) resolve(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse url: %w", err)
	}

	if ref.IsAbs() || c.host == nil {
		return ref.String(), nil
	}

	return c.host.ResolveReference(ref).String(), nil
}
