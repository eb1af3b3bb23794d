package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"
)

// PerformRequest is the transport capability a Fetcher is executed with. It
// performs the request described by r and returns the raw response, or an
// error if no response was received. Retries, redirects, timeouts and
// cancellation are the transport's responsibility.
type PerformRequest func(ctx context.Context, r Resource) (*http.Response, error)

// Task is a runnable fetch. Every call performs exactly one request and one
// decode, independently of any other call.
type Task[R any] func(ctx context.Context) (R, error)

// ToTask closes over perform and turns Fetchers into Tasks
func ToTask[R any](perform PerformRequest, opts ...TaskOption) func(*Fetcher[R]) Task[R] {
	o := newTaskOptions(opts)

	return func(f *Fetcher[R]) Task[R] {
		return func(ctx context.Context) (R, error) {
			return f.execute(ctx, perform, o)
		}
	}
}

// Bind returns the Task executing f with perform
func Bind[R any](perform PerformRequest, f *Fetcher[R], opts ...TaskOption) Task[R] {
	return ToTask[R](perform, opts...)(f)
}

// Run executes f once with perform
func Run[R any](ctx context.Context, perform PerformRequest, f *Fetcher[R], opts ...TaskOption) (R, error) {
	return Bind(perform, f, opts...)(ctx)
}

func (f *Fetcher[R]) execute(ctx context.Context, perform PerformRequest, o *taskOptions) (R, error) {
	var zero R

	ld := log.Data{
		"fetcher": f.name,
		"method":  f.resource.method(),
		"url":     f.resource.URL,
	}

	res, err := perform(ctx, f.resource.clone())
	if err == nil && res == nil {
		err = errors.New("transport returned no response")
	}
	if err != nil {
		o.reporter.ReportTransportError(f.name)

		var ferr *Error
		if errors.As(err, &ferr) {
			return zero, err
		}

		return zero, &Error{
			kind:       KindTransport,
			err:        fmt.Errorf("failed to perform request: %w", err),
			statusCode: http.StatusInternalServerError,
			logData:    ld,
		}
	}

	defer func() {
		if res.Body != nil {
			res.Body.Close()
		}
	}()

	d, matched := f.decoder(res.StatusCode)

	ld["status_code"] = res.StatusCode
	if matched {
		o.reporter.ReportMatched(f.name, res.StatusCode)
		log.Info(ctx, "decoding response", ld)
	} else {
		o.reporter.ReportFallback(f.name, res.StatusCode)
		log.Warn(ctx, "no decoder for response status, using fallback", ld)
	}

	r, err := d(ctx, res)
	if err != nil {
		o.reporter.ReportDecodeError(f.name, res.StatusCode)
		return zero, err
	}

	return r, nil
}
