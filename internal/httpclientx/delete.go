package httpclientx

//
// delete.go - DELETE a resource.
//

import (
	"context"
	"net/http"
)

// Delete sends a DELETE request and discards the response body.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - epnt is the HTTP [*Endpoint] to use;
//
// - config is the config to use.
//
// Deleting an already-deleted resource is not an error as long as the
// server answers with a 2xx status code.
func Delete(ctx context.Context, epnt *Endpoint, config *Config) error {
	// construct the request to use
	req, err := http.NewRequestWithContext(ctx, "DELETE", epnt.URL, nil)
	if err != nil {
		return err
	}

	// run the transaction ignoring the response body
	_, err = do(ctx, req, epnt, config)
	return err
}
