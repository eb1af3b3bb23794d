package fetcher_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/ONSdigital/dp-fetcher/fetcher"
	"github.com/ONSdigital/dp-fetcher/fetcher/mock"

	. "github.com/smartystreets/goconvey/convey"
)

func newReporterMock() *mock.ReporterMock {
	return &mock.ReporterMock{
		ReportMatchedFunc:        func(name string, code int) {},
		ReportFallbackFunc:       func(name string, code int) {},
		ReportDecodeErrorFunc:    func(name string, code int) {},
		ReportTransportErrorFunc: func(name string) {},
	}
}

func TestRun(t *testing.T) {
	Convey("Given a Fetcher with counted decoders", t, func() {
		var okCount, badCount, fallbackCount counter

		f := fetcher.MustMake(fetcher.Get(testURL),
			fetcher.Table[result]{
				http.StatusOK:         count(&okCount, okDecoder),
				http.StatusBadRequest: count(&badCount, badRequest),
			},
			count(&fallbackCount, fetcher.Unexpected[result]()),
			fetcher.Named("things"),
		)
		reporter := newReporterMock()

		Convey("When the response status is handled by the table", func() {
			tr := respondWith("foo", http.StatusOK, nil)
			r, err := fetcher.Run(ctx, tr.Perform, f, fetcher.WithReporter(reporter))

			Convey("Then exactly the matching decoder runs, once", func() {
				So(err, ShouldBeNil)
				So(r, ShouldResemble, result{Code: http.StatusOK, Payload: "foo"})
				So(okCount.calls(), ShouldEqual, 1)
				So(badCount.calls(), ShouldEqual, 0)
				So(fallbackCount.calls(), ShouldEqual, 0)
			})

			Convey("And the transport is called once with the Fetcher's resource", func() {
				So(tr.calls(), ShouldEqual, 1)
				So(tr.resources[0].URL, ShouldEqual, testURL)
				So(tr.resources[0].Method, ShouldEqual, http.MethodGet)
			})

			Convey("And the match is reported", func() {
				So(reporter.ReportMatchedCalls(), ShouldHaveLength, 1)
				So(reporter.ReportMatchedCalls()[0].Name, ShouldEqual, "things")
				So(reporter.ReportMatchedCalls()[0].Code, ShouldEqual, http.StatusOK)
				So(reporter.ReportFallbackCalls(), ShouldBeEmpty)
			})
		})

		Convey("When the 400 decoder reads a header", func() {
			h := http.Header{}
			h.Set("x-payload", "fooo")
			r, err := fetcher.Run(ctx, respondWith("", http.StatusBadRequest, h).Perform, f)

			Convey("Then the header value is returned", func() {
				So(err, ShouldBeNil)
				So(r, ShouldResemble, result{Code: http.StatusBadRequest, Payload: "fooo"})
				So(badCount.calls(), ShouldEqual, 1)
			})
		})

		Convey("When the 400 decoder fails", func() {
			_, err := fetcher.Run(ctx, respondWith("", http.StatusBadRequest, nil).Perform, f, fetcher.WithReporter(reporter))

			Convey("Then its error is returned without falling back", func() {
				So(err, ShouldNotBeNil)
				So(fetcher.KindOf(err), ShouldEqual, fetcher.KindExtraction)
				So(fallbackCount.calls(), ShouldEqual, 0)
				So(reporter.ReportDecodeErrorCalls(), ShouldHaveLength, 1)
				So(reporter.ReportDecodeErrorCalls()[0].Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the response status is not in the table", func() {
			_, err := fetcher.Run(ctx, respondWith("not here", http.StatusNotFound, nil).Perform, f, fetcher.WithReporter(reporter))

			Convey("Then only the fallback runs, once", func() {
				So(err, ShouldNotBeNil)
				So(fetcher.StatusCode(err), ShouldEqual, http.StatusNotFound)
				So(okCount.calls(), ShouldEqual, 0)
				So(badCount.calls(), ShouldEqual, 0)
				So(fallbackCount.calls(), ShouldEqual, 1)
			})

			Convey("And the fallback is reported", func() {
				So(reporter.ReportFallbackCalls(), ShouldHaveLength, 1)
				So(reporter.ReportFallbackCalls()[0].Code, ShouldEqual, http.StatusNotFound)
				So(reporter.ReportMatchedCalls(), ShouldBeEmpty)
			})
		})

		Convey("When the transport fails", func() {
			tr := &transport{err: errTransport}
			_, err := fetcher.Run(ctx, tr.Perform, f, fetcher.WithReporter(reporter))

			Convey("Then a transport error is returned and no decoder runs", func() {
				So(err, ShouldNotBeNil)
				So(fetcher.KindOf(err), ShouldEqual, fetcher.KindTransport)
				So(err.Error(), ShouldEqual, "failed to perform request: connection refused")
				So(fetcher.StatusCode(err), ShouldEqual, http.StatusInternalServerError)
				So(okCount.calls()+badCount.calls()+fallbackCount.calls(), ShouldEqual, 0)
			})

			Convey("And the failure is reported with the request in the log data", func() {
				So(reporter.ReportTransportErrorCalls(), ShouldHaveLength, 1)
				So(fetcher.LogData(err)["fetcher"], ShouldEqual, "things")
				So(fetcher.LogData(err)["url"], ShouldEqual, testURL)
			})
		})

		Convey("When the transport returns an already normalised error", func() {
			cause := fetcher.TransportError(errTransport)
			_, err := fetcher.Run(ctx, (&transport{err: cause}).Perform, f)

			Convey("Then it is returned unchanged", func() {
				So(err, ShouldEqual, cause)
			})
		})

		Convey("When the transport returns neither a response nor an error", func() {
			perform := func(context.Context, fetcher.Resource) (*http.Response, error) { return nil, nil }
			_, err := fetcher.Run(ctx, perform, f)

			Convey("Then a transport error is returned", func() {
				So(fetcher.KindOf(err), ShouldEqual, fetcher.KindTransport)
				So(fallbackCount.calls(), ShouldEqual, 0)
			})
		})
	})
}

func TestResponseBodyIsClosed(t *testing.T) {
	Convey("Given a Fetcher and a tracked response", t, func() {
		res := Response([]byte("foo"), http.StatusOK, nil)
		perform := func(context.Context, fetcher.Resource) (*http.Response, error) { return res, nil }

		f := fetcher.MustMake(fetcher.Get(testURL), fetcher.Table[result]{http.StatusOK: okDecoder}, unexpectedError)

		Convey("When the task runs", func() {
			_, err := fetcher.Run(ctx, perform, f)

			Convey("Then the body is closed once decoding is done", func() {
				So(err, ShouldBeNil)
				So(res.Body.(*trackingBody).closed, ShouldBeTrue)
			})
		})

		Convey("When the fallback handles the response", func() {
			res.StatusCode = http.StatusTeapot
			_, err := fetcher.Run(ctx, perform, f)

			Convey("Then the body is still closed", func() {
				So(err, ShouldEqual, errUnexpected)
				So(res.Body.(*trackingBody).closed, ShouldBeTrue)
			})
		})
	})
}

func TestToTask(t *testing.T) {
	Convey("Given a task built with ToTask", t, func() {
		var okCount counter
		tr := respondWith("foo", http.StatusOK, nil)

		f := fetcher.MustMake(fetcher.Get(testURL), fetcher.Table[result]{http.StatusOK: count(&okCount, okDecoder)}, unexpectedError)
		task := fetcher.ToTask[result](tr.Perform)(f)

		Convey("When nothing runs the task", func() {
			Convey("Then no request is made", func() {
				So(tr.calls(), ShouldEqual, 0)
			})
		})

		Convey("When the task runs twice", func() {
			r1, err1 := task(ctx)
			r2, err2 := task(ctx)

			Convey("Then each run performs its own request and decode", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(r1, ShouldResemble, r2)
				So(tr.calls(), ShouldEqual, 2)
				So(okCount.calls(), ShouldEqual, 2)
			})
		})

		Convey("When the task runs from many goroutines", func() {
			const n = 20

			var wg sync.WaitGroup
			errs := make(chan error, n)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					r, err := task(ctx)
					if err == nil && r.Payload != "foo" {
						err = errUnexpected
					}
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)

			Convey("Then every run succeeds independently", func() {
				for err := range errs {
					So(err, ShouldBeNil)
				}
				So(tr.calls(), ShouldEqual, n)
				So(okCount.calls(), ShouldEqual, n)
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		perform := func(ctx context.Context, r fetcher.Resource) (*http.Response, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return Response(nil, http.StatusOK, nil), nil
		}
		f := fetcher.MustMake(fetcher.Get(testURL), fetcher.Table[result]{http.StatusOK: okDecoder}, unexpectedError)

		Convey("Then the cancellation surfaces as a transport error", func() {
			_, err := fetcher.Bind(perform, f)(cctx)
			So(fetcher.KindOf(err), ShouldEqual, fetcher.KindTransport)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
