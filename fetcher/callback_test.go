package fetcher

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ONSdigital/log.go/v2/log"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCallbackHappy(t *testing.T) {

	Convey("Given an error with embedded status code", t, func() {
		err := &Error{
			statusCode: http.StatusBadRequest,
		}

		Convey("When StatusCode(err) is called", func() {
			statusCode := StatusCode(err)
			So(statusCode, ShouldEqual, http.StatusBadRequest)
		})
	})

	Convey("Given an error with embedded logData", t, func() {
		err := &Error{
			logData: log.Data{
				"log": "data",
			},
		}

		Convey("When LogData(err) is called", func() {
			logData := LogData(err)
			So(logData, ShouldResemble, log.Data{"log": "data"})
		})
	})

	Convey("Given an error with an embedded kind", t, func() {
		err := fmt.Errorf("wrapped: %w", &Error{kind: KindValidation})

		Convey("When KindOf(err) is called", func() {
			So(KindOf(err), ShouldEqual, KindValidation)
			So(KindOf(err).String(), ShouldEqual, "validation")
		})
	})

	Convey("Given an error chain with wrapped logData", t, func() {
		err1 := &Error{
			err: errors.New("original error"),
			logData: log.Data{
				"log": "data",
			},
		}

		err2 := &Error{
			err: fmt.Errorf("err1: %w", err1),
			logData: log.Data{
				"additional": "data",
			},
		}

		err3 := &Error{
			err: fmt.Errorf("err2: %w", err2),
			logData: log.Data{
				"final": "data",
			},
		}

		Convey("When UnwrapLogData(err) is called", func() {
			logData := UnwrapLogData(err3)
			expected := []log.Data{
				{"final": "data"},
				{"additional": "data"},
				{"log": "data"},
			}

			So(logData, ShouldResemble, expected)
		})
	})
}

func TestCallbackUnhappy(t *testing.T) {

	Convey("Given an error without a status code", t, func() {
		Convey("Then StatusCode returns 500", func() {
			So(StatusCode(errors.New("plain")), ShouldEqual, http.StatusInternalServerError)
			So(StatusCode(&Error{kind: KindTransport}), ShouldEqual, http.StatusInternalServerError)
		})
	})

	Convey("Given an error without logData", t, func() {
		Convey("Then LogData returns nil and UnwrapLogData returns nothing", func() {
			So(LogData(errors.New("plain")), ShouldBeNil)
			So(UnwrapLogData(errors.New("plain")), ShouldBeEmpty)
		})
	})

	Convey("Given an error that is not an *Error", t, func() {
		Convey("Then its kind is unknown", func() {
			So(KindOf(errors.New("plain")), ShouldEqual, KindUnknown)
		})
	})
}

func TestNormalise(t *testing.T) {

	Convey("Given a plain error", t, func() {
		cause := errors.New("boom")

		Convey("When it is normalised", func() {
			err := HandleError(cause)

			Convey("Then it is wrapped with the requested kind and a 500 status", func() {
				So(KindOf(err), ShouldEqual, KindExtraction)
				So(StatusCode(err), ShouldEqual, http.StatusInternalServerError)
				So(errors.Is(err, cause), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "boom")
			})
		})
	})

	Convey("Given an error that is already normalised", t, func() {
		first := ValidationError(errors.New("bad shape"))

		Convey("Then normalising it again returns it unchanged", func() {
			So(TransportError(first), ShouldEqual, first)
			So(KindOf(HandleError(first)), ShouldEqual, KindValidation)
		})
	})

	Convey("Given a nil error", t, func() {
		Convey("Then normalising it returns nil", func() {
			So(HandleError(nil), ShouldBeNil)
		})
	})

	Convey("Given an *Error without a cause", t, func() {
		Convey("Then its message names its kind", func() {
			So((&Error{kind: KindTransport}).Error(), ShouldEqual, "transport error")
		})
	})
}
