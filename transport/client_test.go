package transport_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/ONSdigital/dp-fetcher/fetcher"
	"github.com/ONSdigital/dp-fetcher/transport"
	dphttp "github.com/ONSdigital/dp-net/http"

	. "github.com/smartystreets/goconvey/convey"
)

func Response(body []byte, statusCode int) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

func TestPerformHappy(t *testing.T) {

	Convey("Given a client configured with a host and a service auth token", t, func() {
		testCtx := context.Background()

		var got *http.Request
		mockHttpClient := &dphttp.ClienterMock{
			DoFunc: func(ctx context.Context, req *http.Request) (*http.Response, error) {
				got = req
				return Response([]byte("[]"), http.StatusTeapot), nil
			},
		}

		client, err := transport.NewClient(mockHttpClient, transport.Config{
			Host:             "http://users-api:8080",
			ServiceAuthToken: "secret",
		})
		So(err, ShouldBeNil)

		Convey("When a relative resource is performed", func() {
			r := fetcher.Resource{
				Method: http.MethodPost,
				URL:    "/users?limit=1",
				Header: http.Header{"Accept": {"application/json"}},
				Body:   []byte(`{"name":"foo"}`),
			}
			res, err := client.Perform(testCtx, r)

			Convey("Then the response is returned whatever its status", func() {
				So(err, ShouldBeNil)
				So(res.StatusCode, ShouldEqual, http.StatusTeapot)
			})

			Convey("And the request is resolved against the host", func() {
				So(mockHttpClient.DoCalls(), ShouldHaveLength, 1)
				So(got.URL.String(), ShouldEqual, "http://users-api:8080/users?limit=1")
				So(got.Method, ShouldEqual, http.MethodPost)
			})

			Convey("And the headers, body and auth token are sent", func() {
				So(got.Header.Get("Accept"), ShouldEqual, "application/json")
				So(got.Header.Get("Authorization"), ShouldEqual, "Bearer secret")

				b, err := io.ReadAll(got.Body)
				So(err, ShouldBeNil)
				So(string(b), ShouldEqual, `{"name":"foo"}`)
			})
		})

		Convey("When an absolute resource is performed", func() {
			_, err := client.Perform(testCtx, fetcher.Get("http://elsewhere/health"))

			Convey("Then the url is used as is", func() {
				So(err, ShouldBeNil)
				So(got.URL.String(), ShouldEqual, "http://elsewhere/health")
				So(got.Method, ShouldEqual, http.MethodGet)
			})
		})
	})

	Convey("Given a client without a service auth token", t, func() {
		var got *http.Request
		mockHttpClient := &dphttp.ClienterMock{
			DoFunc: func(ctx context.Context, req *http.Request) (*http.Response, error) {
				got = req
				return Response(nil, http.StatusOK), nil
			},
		}

		client, err := transport.NewClient(mockHttpClient, transport.Config{})
		So(err, ShouldBeNil)

		Convey("Then no Authorization header is sent", func() {
			_, err := client.Perform(context.Background(), fetcher.Get("http://host.tld/users"))
			So(err, ShouldBeNil)
			So(got.Header.Get("Authorization"), ShouldBeEmpty)
		})
	})
}

func TestPerformUnhappy(t *testing.T) {

	Convey("Given a user agent that cannot reach the host", t, func() {
		mockHttpClient := &dphttp.ClienterMock{
			DoFunc: func(ctx context.Context, req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
		}

		client, err := transport.NewClient(mockHttpClient, transport.Config{Host: "http://users-api:8080"})
		So(err, ShouldBeNil)

		Convey("When Perform is called", func() {
			res, err := client.Perform(context.Background(), fetcher.Get("/users"))

			Convey("Then the failure is returned", func() {
				So(res, ShouldBeNil)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, "failed to make request: connection refused")
			})
		})
	})

	Convey("Given a resource with an invalid url", t, func() {
		mockHttpClient := &dphttp.ClienterMock{}

		client, err := transport.NewClient(mockHttpClient, transport.Config{})
		So(err, ShouldBeNil)

		Convey("Then Perform fails without calling the user agent", func() {
			_, err := client.Perform(context.Background(), fetcher.Get("http://host.tld/%zz"))
			So(err, ShouldNotBeNil)
			So(mockHttpClient.DoCalls(), ShouldBeEmpty)
		})
	})

	Convey("Given an invalid host", t, func() {
		Convey("Then NewClient fails", func() {
			_, err := transport.NewClient(&dphttp.ClienterMock{}, transport.Config{Host: "http://%zz"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPerformWithFetcher(t *testing.T) {

	Convey("Given a Fetcher executed through the client", t, func() {
		mockHttpClient := &dphttp.ClienterMock{
			DoFunc: func(ctx context.Context, req *http.Request) (*http.Response, error) {
				return Response([]byte("foo"), http.StatusOK), nil
			},
		}

		client, err := transport.NewClient(mockHttpClient, transport.Config{Host: "http://host.tld"})
		So(err, ShouldBeNil)

		f := fetcher.MustMake(fetcher.Get("/text"),
			fetcher.Table[string]{http.StatusOK: fetcher.TextDecoder},
			fetcher.Unexpected[string](),
		)

		Convey("Then the decoded body is returned", func() {
			s, err := fetcher.Run(context.Background(), client.Perform, f)
			So(err, ShouldBeNil)
			So(s, ShouldEqual, "foo")
		})
	})
}
