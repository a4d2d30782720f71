package httpclientx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/placefetch/placefetch/internal/model"
	"github.com/placefetch/placefetch/internal/testingx"
)

type apiRequest struct {
	UserID int    `json:"userId"`
	Title  string `json:"title"`
}

func TestPostJSON(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		var (
			gotmethod      string
			gotcontenttype string
			gotrawbody     []byte
			gotmu          sync.Mutex
		)

		// create a server echoing back an object with an assigned ID
		server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawbody, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			gotmu.Lock()
			gotmethod = r.Method
			gotcontenttype = r.Header.Get("Content-Type")
			gotrawbody = rawbody
			gotmu.Unlock()
			w.WriteHeader(201)
			w.Write([]byte(`{"id": 101}`))
		}))
		defer server.Close()

		// invoke the API
		resp, err := PostJSON[*apiRequest, *apiResponse](
			context.Background(),
			NewEndpoint(server.URL),
			&Config{
				Client:    http.DefaultClient,
				Logger:    model.DiscardLogger,
				UserAgent: model.HTTPHeaderUserAgent,
			},
			&apiRequest{UserID: 7, Title: "et porro tempora"},
		)
		if err != nil {
			t.Fatal(err)
		}
		if resp == nil {
			t.Fatal("expected a response")
		}

		// make sure there are no data races
		defer gotmu.Unlock()
		gotmu.Lock()

		// make sure the server saw the expected request
		if gotmethod != "POST" {
			t.Fatal("unexpected method", gotmethod)
		}
		if gotcontenttype != "application/json" {
			t.Fatal("unexpected content type", gotcontenttype)
		}
		expectbody := `{"userId":7,"title":"et porro tempora"}`
		if diff := cmp.Diff(expectbody, string(gotrawbody)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we refuse to serialize a nil input", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		resp, err := PostJSON[*apiRequest, *apiResponse](
			context.Background(),
			NewEndpoint(server.URL),
			&Config{
				Client:    http.DefaultClient,
				Logger:    model.DiscardLogger,
				UserAgent: model.HTTPHeaderUserAgent,
			},
			nil,
		)

		t.Log(resp)
		t.Log(err)

		if err == nil {
			t.Fatal("expected an error")
		}
		if resp != nil {
			t.Fatal("expected nil response")
		}
	})
}

func TestPutJSON(t *testing.T) {
	var (
		gotmethod string
		gotmu     sync.Mutex
	)

	server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotmu.Lock()
		gotmethod = r.Method
		gotmu.Unlock()
		w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	resp, err := PutJSON[*apiRequest, *apiResponse](
		context.Background(),
		NewEndpoint(server.URL),
		&Config{
			Client:    http.DefaultClient,
			Logger:    model.DiscardLogger,
			UserAgent: model.HTTPHeaderUserAgent,
		},
		&apiRequest{UserID: 7, Title: "corrected title"},
	)
	if err != nil {
		t.Fatal(err)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}

	defer gotmu.Unlock()
	gotmu.Lock()
	if gotmethod != "PUT" {
		t.Fatal("unexpected method", gotmethod)
	}
}

func TestDelete(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		var (
			gotmethod string
			gotmu     sync.Mutex
		)

		server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotmu.Lock()
			gotmethod = r.Method
			gotmu.Unlock()
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		err := Delete(context.Background(), NewEndpoint(server.URL), &Config{
			Client:    http.DefaultClient,
			Logger:    model.DiscardLogger,
			UserAgent: model.HTTPHeaderUserAgent,
		})
		if err != nil {
			t.Fatal(err)
		}

		defer gotmu.Unlock()
		gotmu.Lock()
		if gotmethod != "DELETE" {
			t.Fatal("unexpected method", gotmethod)
		}
	})

	t.Run("when the server rejects the request", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(404)
		}))
		defer server.Close()

		err := Delete(context.Background(), NewEndpoint(server.URL), &Config{
			Client:    http.DefaultClient,
			Logger:    model.DiscardLogger,
			UserAgent: model.HTTPHeaderUserAgent,
		})

		t.Log(err)

		var failure *ErrRequestFailed
		if !errors.As(err, &failure) {
			t.Fatal("not an *ErrRequestFailed instance", err)
		}
		if failure.StatusCode != 404 {
			t.Fatal("unexpected status code", failure.StatusCode)
		}
	})
}
