package model

//
// Common HTTP definitions.
//

import "net/http"

// HTTPHeaderUserAgent is the User-Agent header sent by this module.
const HTTPHeaderUserAgent = "placefetch/0.1.0"

// HTTPClient is an http client. The [http.Client] implements this
// interface. We use this interface to reduce the complexity of mocking
// network interactions in tests.
type HTTPClient interface {
	// Do behaves like [http.Client.Do].
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes idle connections, if any.
	CloseIdleConnections()
}

var _ HTTPClient = &http.Client{}
