package fetcher_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/ONSdigital/dp-fetcher/fetcher"
)

const testURL = "http://host.tld"

var (
	ctx             = context.Background()
	errUnexpected   = errors.New("unexpected error")
	errTransport    = errors.New("connection refused")
	unexpectedError = fetcher.Fail[result](errUnexpected)
)

// result is the tagged union used by most tests
type result struct {
	Code    int
	Payload interface{}
}

func tag[A any](code int) func(A) result {
	return func(v A) result {
		return result{Code: code, Payload: v}
	}
}

// Response builds a minimal *http.Response
func Response(body []byte, statusCode int, header http.Header) *http.Response {
	if header == nil {
		header = make(http.Header)
	}

	return &http.Response{
		StatusCode: statusCode,
		Header:     header,
		Body:       &trackingBody{Reader: bytes.NewReader(body)},
	}
}

// trackingBody records whether the body was closed
type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

// failingBody fails every read
type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("stream aborted") }
func (failingBody) Close() error             { return nil }

// transport is a stub PerformRequest that records every resource it is given
type transport struct {
	mu        sync.Mutex
	res       func() *http.Response
	err       error
	resources []fetcher.Resource
}

func respondWith(body string, statusCode int, header http.Header) *transport {
	return &transport{
		res: func() *http.Response { return Response([]byte(body), statusCode, header) },
	}
}

func (t *transport) Perform(ctx context.Context, r fetcher.Resource) (*http.Response, error) {
	t.mu.Lock()
	t.resources = append(t.resources, r)
	t.mu.Unlock()

	if t.err != nil {
		return nil, t.err
	}
	return t.res(), nil
}

func (t *transport) calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.resources)
}

// counter wraps a decoder and counts its invocations
type counter struct {
	mu sync.Mutex
	n  int
}

func count[A any](c *counter, d fetcher.Decoder[A]) fetcher.Decoder[A] {
	return func(ctx context.Context, res *http.Response) (A, error) {
		c.mu.Lock()
		c.n++
		c.mu.Unlock()
		return d(ctx, res)
	}
}

func (c *counter) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
