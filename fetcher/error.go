package fetcher

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/ONSdigital/log.go/v2/log"
)

// Kind classifies the stage of a fetch in which an Error was produced
type Kind int

const (
	// KindUnknown is reported for errors that are not an *Error
	KindUnknown Kind = iota
	// KindTransport: the request could not be performed or no response was received
	KindTransport
	// KindExtraction: the response body or a header could not be read or parsed
	KindExtraction
	// KindValidation: a decoded value did not satisfy its schema
	KindValidation
	// KindUnexpected: the response status has no decoder and the fallback rejected it
	KindUnexpected
	// KindConstruction: a Fetcher was built with an incomplete or invalid table
	KindConstruction
)

var kindNames = map[Kind]string{
	KindUnknown:      "unknown",
	KindTransport:    "transport",
	KindExtraction:   "extraction",
	KindValidation:   "validation",
	KindUnexpected:   "unexpected",
	KindConstruction: "construction",
}

// String returns the lower case name of the kind, as used in log data
// and metric labels
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// Error is the package's error type. Is not meant to be compared as a
// type, but information should be extracted via the interfaces
// it implements with callback functions (StatusCode, LogData, KindOf).
type Error struct {
	kind       Kind
	err        error
	statusCode int
	logData    log.Data
}

// Error implements the Go standard error interface
func (e *Error) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s error", e.kind)
	}
	return e.err.Error()
}

// Unwrap implements Go's error wrapping interface
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the http status code callers should associate with the error.
// For responses that reached a fallback decoder this is the upstream status,
// otherwise it is 500.
func (e *Error) Code() int {
	return e.statusCode
}

// LogData implements the dataLogger interface which allows you extract
// embedded log.Data from an error
func (e *Error) LogData() map[string]interface{} {
	return e.logData
}

// Kind returns the stage of the fetch the error was produced in
func (e *Error) Kind() Kind {
	return e.kind
}

// TransportError normalises a failure of the injected transport. Errors that
// are already an *Error are returned unchanged.
func TransportError(err error) error {
	return normalise(KindTransport, err, nil)
}

// HandleError normalises a failure to read or parse a response body into the
// canonical *Error, so that every Decoder presents the same failure channel
// regardless of how the transport represents the underlying problem.
func HandleError(err error) error {
	return normalise(KindExtraction, err, nil)
}

// ValidationError normalises a validator failure (for example schema.Violations)
// into a validation *Error
func ValidationError(err error) error {
	return normalise(KindValidation, err, nil)
}

func normalise(k Kind, err error, res *http.Response) error {
	if err == nil {
		return nil
	}

	var ferr *Error
	if errors.As(err, &ferr) {
		return err
	}

	e := &Error{
		kind:       k,
		err:        err,
		statusCode: http.StatusInternalServerError,
	}

	if res != nil {
		e.logData = log.Data{
			"response_status": res.StatusCode,
		}
	}

	return e
}

// constructionError reports a table that cannot be used to build a Fetcher
func constructionError(name, reason string, codes []int) error {
	e := &Error{
		kind:       KindConstruction,
		err:        fmt.Errorf("invalid fetcher %q: %s", name, reason),
		statusCode: http.StatusInternalServerError,
		logData:    log.Data{"fetcher": name},
	}

	if len(codes) > 0 {
		sort.Ints(codes)
		e.err = fmt.Errorf("invalid fetcher %q: %s: %v", name, reason, codes)
		e.logData["codes"] = codes
	}

	return e
}
