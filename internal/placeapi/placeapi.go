// Package placeapi implements a typed client for JSONPlaceholder-like
// REST services exposing posts, comments, photos, albums, and todos.
//
// The client fetches response bodies as untyped mappings and then
// validates them strictly into [model] records, so a syntactically
// invalid body and a body failing record validation surface as
// distinct error types ([encoding/json] errors and
// [*mapx.ErrFieldValidation] respectively).
//
// The client is stateless and safe for concurrent use.
package placeapi

import (
	"net/url"
	"strconv"

	"github.com/placefetch/placefetch/internal/httpclientx"
	"github.com/placefetch/placefetch/internal/model"
	"github.com/placefetch/placefetch/internal/must"
)

// Client is a client for a single JSONPlaceholder-like service.
//
// The zero value is invalid; construct using [NewClient].
type Client struct {
	baseURL *url.URL
	config  *httpclientx.Config
}

// NewClient constructs a [*Client] using the given base URL, logger,
// and HTTP client. A nil logger means discarding logs. This function
// panics if the base URL does not parse.
func NewClient(baseURL string, logger model.Logger, httpClient model.HTTPClient) *Client {
	return &Client{
		baseURL: must.ParseURL(baseURL),
		config: &httpclientx.Config{
			Client:    httpClient,
			Logger:    model.ValidLoggerOrDefault(logger),
			UserAgent: model.HTTPHeaderUserAgent,
		},
	}
}

// CloseIdleConnections closes the idle connections held by the
// underlying HTTP client, if any.
func (c *Client) CloseIdleConnections() {
	c.config.Client.CloseIdleConnections()
}

// endpoint builds the [*httpclientx.Endpoint] for the given path
// elements below the base URL.
func (c *Client) endpoint(elem ...string) *httpclientx.Endpoint {
	return httpclientx.NewEndpoint(c.baseURL.JoinPath(elem...).String())
}

// endpointWithQuery is like endpoint but also sets a query string.
func (c *Client) endpointWithQuery(query url.Values, elem ...string) *httpclientx.Endpoint {
	URL := c.baseURL.JoinPath(elem...)
	URL.RawQuery = query.Encode()
	return httpclientx.NewEndpoint(URL.String())
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
