package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Resource describes the request a Fetcher performs. It is opaque to the
// dispatch engine and only interpreted by the injected PerformRequest.
type Resource struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Get returns a Resource for a GET request to url
func Get(url string) Resource {
	return Resource{Method: http.MethodGet, URL: url}
}

// Request builds an *http.Request for the resource. The method defaults to GET.
func (r Resource) Request(ctx context.Context) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method(), r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, vals := range r.Header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	return req, nil
}

func (r Resource) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// clone returns a deep copy so that a Fetcher never shares mutable state
// with its caller or with a transport
func (r Resource) clone() Resource {
	cp := r
	if r.Header != nil {
		cp.Header = r.Header.Clone()
	}
	if r.Body != nil {
		cp.Body = append([]byte(nil), r.Body...)
	}
	return cp
}
