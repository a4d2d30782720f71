package httpclientx

//
// putjson.go - PUT a JSON request and read a JSON response.
//

import "context"

// PutJSON sends a PUT request with a JSON body and reads a JSON response.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - epnt is the HTTP [*Endpoint] to use;
//
// - config is the config to use;
//
// - input is the input structure to JSON serialize as the request body.
//
// This function either returns an error or a valid Output.
func PutJSON[Input, Output any](ctx context.Context, epnt *Endpoint, config *Config, input Input) (Output, error) {
	return sendJSON[Input, Output](ctx, "PUT", epnt, config, input)
}
