package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"
)

// maxUnexpectedBody bounds how much of an unexpected response is kept for
// error messages and log data
const maxUnexpectedBody = 4096

// Decoder turns a received response into a value of type A, or an error.
// Decoders are stateless: invoking the same Decoder twice on equivalent
// responses produces equivalent results. The response body is closed by
// the caller once the Decoder returns.
type Decoder[A any] func(ctx context.Context, res *http.Response) (A, error)

// TextDecoder reads the whole response body as text
var TextDecoder Decoder[string] = func(ctx context.Context, res *http.Response) (string, error) {
	b, err := readBody(res)
	if err != nil {
		return "", normalise(KindExtraction, fmt.Errorf("failed to read response body: %w", err), res)
	}

	return string(b), nil
}

// JSONDecoder reads the response body and parses it as JSON. The result is
// untyped; refine it into a domain shape by chaining a validator with Refine.
var JSONDecoder Decoder[interface{}] = func(ctx context.Context, res *http.Response) (interface{}, error) {
	s, err := TextDecoder(ctx, res)
	if err != nil {
		return nil, err
	}

	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, normalise(KindExtraction, fmt.Errorf("failed to parse response body as json: %w", err), res)
	}

	return v, nil
}

// Header returns a Decoder that yields the value of the named response header.
// It fails only if the header is absent; a header sent with an empty value
// yields "".
func Header(name string) Decoder[string] {
	return func(ctx context.Context, res *http.Response) (string, error) {
		if vs := res.Header.Values(name); len(vs) > 0 {
			return vs[0], nil
		}

		return "", normalise(KindExtraction, fmt.Errorf("header %q not found", name), res)
	}
}

// Succeed returns a Decoder that ignores the response and yields v
func Succeed[A any](v A) Decoder[A] {
	return func(context.Context, *http.Response) (A, error) {
		return v, nil
	}
}

// Fail returns a Decoder that ignores the response and fails with err
func Fail[A any](err error) Decoder[A] {
	return func(context.Context, *http.Response) (A, error) {
		var zero A
		return zero, err
	}
}

// Unexpected returns a Decoder suitable as a fallback. It always fails, with
// an error carrying the response status code and (a prefix of) the body.
func Unexpected[A any]() Decoder[A] {
	return func(ctx context.Context, res *http.Response) (A, error) {
		var zero A

		b, err := io.ReadAll(io.LimitReader(body(res), maxUnexpectedBody))
		if err != nil {
			return zero, &Error{
				kind:       KindUnexpected,
				err:        fmt.Errorf("failed to read unexpected response body: %w", err),
				statusCode: res.StatusCode,
			}
		}

		if len(b) == 0 {
			b = []byte("[response body empty]")
		}

		return zero, &Error{
			kind:       KindUnexpected,
			err:        fmt.Errorf("unexpected response status %d: %s", res.StatusCode, string(b)),
			statusCode: res.StatusCode,
			logData: log.Data{
				"response_status": res.StatusCode,
				"response_body":   string(b),
			},
		}
	}
}

// Chain runs d and, if it succeeds, passes its value to f. The first failure
// short-circuits the chain.
func Chain[A, B any](d Decoder[A], f func(context.Context, A) (B, error)) Decoder[B] {
	return func(ctx context.Context, res *http.Response) (B, error) {
		a, err := d(ctx, res)
		if err != nil {
			var zero B
			return zero, err
		}

		return f(ctx, a)
	}
}

// Map transforms the value produced by d with f
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return func(ctx context.Context, res *http.Response) (B, error) {
		a, err := d(ctx, res)
		if err != nil {
			var zero B
			return zero, err
		}

		return f(a), nil
	}
}

// Refine runs the value produced by d through validate. A validator failure
// is reported as a validation *Error.
func Refine[A, B any](d Decoder[A], validate func(A) (B, error)) Decoder[B] {
	return func(ctx context.Context, res *http.Response) (B, error) {
		var zero B

		a, err := d(ctx, res)
		if err != nil {
			return zero, err
		}

		b, err := validate(a)
		if err != nil {
			return zero, normalise(KindValidation, err, res)
		}

		return b, nil
	}
}

func body(res *http.Response) io.Reader {
	if res == nil || res.Body == nil {
		return http.NoBody
	}
	return res.Body
}

func readBody(res *http.Response) ([]byte, error) {
	return io.ReadAll(body(res))
}
