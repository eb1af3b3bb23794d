package fetcher

import (
	"errors"
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"
)

// StatusCode is a callback function that allows you to extract
// a status code from an error, or returns 500 as a default
func StatusCode(err error) int {
	var cerr coder
	if errors.As(err, &cerr) {
		if code := cerr.Code(); code != 0 {
			return code
		}
	}

	return http.StatusInternalServerError
}

// LogData returns logData for an error if there is any
func LogData(err error) log.Data {
	var lderr dataLogger
	if errors.As(err, &lderr) {
		return lderr.LogData()
	}

	return nil
}

// UnwrapLogData recursively unwraps logData from an error
func UnwrapLogData(err error) []log.Data {
	var data []log.Data

	for err != nil {
		if lderr, ok := err.(dataLogger); ok {
			if d := lderr.LogData(); d != nil {
				data = append(data, d)
			}
		}

		err = errors.Unwrap(err)
	}

	return data
}

// KindOf returns the Kind of the first *Error found in the chain,
// or KindUnknown if there is none
func KindOf(err error) Kind {
	var kerr kinder
	if errors.As(err, &kerr) {
		return kerr.Kind()
	}

	return KindUnknown
}
