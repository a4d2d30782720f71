// Package httpclientx contains extensions to more easily invoke HTTP APIs
// returning JSON bodies.
package httpclientx

//
// httpclientx.go - shared request transaction code.
//

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// ErrRequestFailed indicates that an HTTP request failed with a
// status code outside of the 2xx range.
type ErrRequestFailed struct {
	// StatusCode is the status code that failed the request.
	StatusCode int
}

var _ error = &ErrRequestFailed{}

// Error implements error.
func (err *ErrRequestFailed) Error() string {
	return "httpx: request failed"
}

// ErrTruncated indicates that the response body size exceeds the
// maximum size that we are willing to read.
var ErrTruncated = errors.New("httpx: truncated response body")

// zeroValue is a convenience function to return the zero value.
func zeroValue[Type any]() Type {
	return *new(Type)
}

// do sends the request and reads the whole response body.
//
// All the request-issuing functions in this package converge here. We
// assign the common headers, log the transaction, enforce the maximum
// response body size, and map non-2xx responses to [*ErrRequestFailed].
func do(ctx context.Context, req *http.Request, epnt *Endpoint, config *Config) ([]byte, error) {
	// optionally assign the authorization header
	if config.Authorization != "" {
		req.Header.Set("Authorization", config.Authorization)
	}

	// assign the common headers
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	// optionally override the host header for cloudfronting
	if epnt.Host != "" {
		req.Host = epnt.Host
	}

	config.Logger.Debugf("%s %s...", req.Method, epnt.URL)

	// send the request and get a response
	resp, err := config.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	config.Logger.Debugf("%s %s... %d", req.Method, epnt.URL, resp.StatusCode)

	// make sure the response is successful before reading the body
	if resp.StatusCode/100 != 2 {
		return nil, &ErrRequestFailed{resp.StatusCode}
	}

	// optionally setup gzip decompression
	var baseReader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzreader, err := gzip.NewReader(baseReader)
		if err != nil {
			return nil, err
		}
		defer gzreader.Close()
		baseReader = gzreader
	}

	// read the whole body within the configured limit
	limit := config.maxResponseBodySize()
	reader := io.LimitReader(baseReader, limit+1)
	rawrespbody, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if int64(len(rawrespbody)) > limit {
		return nil, ErrTruncated
	}

	return NilSafetyAvoidNilBytesSlice(rawrespbody), nil
}
