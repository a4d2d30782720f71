package httpclientx

//
// postjson.go - POST a JSON request and read a JSON response.
//

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// PostJSON sends a POST request with a JSON body and reads a JSON response.
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
func PostJSON[Input, Output any](ctx context.Context, epnt *Endpoint, config *Config, input Input) (Output, error) {
	return sendJSON[Input, Output](ctx, "POST", epnt, config, input)
}

// sendJSON implements [PostJSON] and [PutJSON].
func sendJSON[Input, Output any](ctx context.Context, method string, epnt *Endpoint, config *Config, input Input) (Output, error) {
	// make sure we're not serializing a nil input
	if _, err := NilSafetyErrorIfNil(input); err != nil {
		return zeroValue[Output](), err
	}

	// serialize the request body
	rawreqbody, err := json.Marshal(input)
	if err != nil {
		return zeroValue[Output](), err
	}

	// log the raw request body
	config.Logger.Debugf("%s %s: raw request body: %s", method, epnt.URL, string(rawreqbody))

	// construct the request to use
	req, err := http.NewRequestWithContext(ctx, method, epnt.URL, bytes.NewReader(rawreqbody))
	if err != nil {
		return zeroValue[Output](), err
	}

	// assign the content type
	req.Header.Set("Content-Type", "application/json")

	// get the raw response body
	rawrespbody, err := do(ctx, req, epnt, config)

	// handle the case of error
	if err != nil {
		return zeroValue[Output](), err
	}

	// parse the response body as JSON
	var output Output
	if err := json.Unmarshal(rawrespbody, &output); err != nil {
		return zeroValue[Output](), err
	}

	return NilSafetyErrorIfNil(output)
}
