package transport

import (
	"context"
	"net/http"
)

// httpClient is an interface for a user agent to make http requests.
// It is satisfied by the dp-net Clienter.
type httpClient interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}
