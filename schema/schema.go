package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ONSdigital/dp-fetcher/fetcher"
	"github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"
)

// Schema is a goskema schema binding JSON into a T, paired with the display
// name used in violation messages, e.g. "{ foo: string, baz: number }"
type Schema[T any] struct {
	name string
	s    goskema.Schema[T]
}

// New names s for use in violation messages
func New[T any](name string, s goskema.Schema[T]) Schema[T] {
	return Schema[T]{name: name, s: s}
}

// Array accepts a JSON array whose every element satisfies elem
func Array[T any](elem Schema[T]) Schema[[]T] {
	return New[[]T]("Array<"+elem.name+">", g.Array(elem.s))
}

// Name returns the display form of the schema
func (s Schema[T]) Name() string {
	return s.name
}

// Parse validates the JSON document data and binds it to a T. A document
// that does not satisfy the schema fails with Violations; any other error
// means data could not be read as JSON.
func (s Schema[T]) Parse(ctx context.Context, data []byte) (T, error) {
	v, err := goskema.ParseFrom(ctx, s.s, goskema.JSONBytes(data))
	if err != nil {
		var zero T

		var iss goskema.Issues
		if errors.As(err, &iss) {
			return zero, fromIssues(s.name, iss)
		}
		return zero, err
	}

	return v, nil
}

// Validator returns a check of an untyped value (as produced by
// fetcher.JSONDecoder) against s, for use with fetcher.Refine
func Validator[T any](s Schema[T]) func(interface{}) (T, error) {
	return func(v interface{}) (T, error) {
		b, err := json.Marshal(v)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("failed to encode value for %s: %w", s.name, err)
		}

		return s.Parse(context.Background(), b)
	}
}

// Decoder returns a fetcher.Decoder parsing the response body with s.
// Violations become validation errors, unreadable bodies extraction errors.
func Decoder[T any](s Schema[T]) fetcher.Decoder[T] {
	return fetcher.Chain(fetcher.TextDecoder, func(ctx context.Context, body string) (T, error) {
		if !json.Valid([]byte(body)) {
			var zero T
			return zero, fetcher.HandleError(errors.New("failed to parse response body as json"))
		}

		v, err := s.Parse(ctx, []byte(body))
		if err == nil {
			return v, nil
		}

		var vs Violations
		if errors.As(err, &vs) {
			return v, fetcher.ValidationError(vs)
		}
		return v, fetcher.HandleError(fmt.Errorf("failed to parse response body: %w", err))
	})
}
