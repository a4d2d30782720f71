package httpclientx

//
// mapping.go - GET untyped mappings for strict decoding.
//

import (
	"context"

	"github.com/placefetch/placefetch/internal/mapx"
)

// GetMapping sends a GET request and reads the JSON response as an
// untyped [mapx.Mapping], for callers that validate the mapping
// against a record schema themselves.
func GetMapping(ctx context.Context, epnt *Endpoint, config *Config) (mapx.Mapping, error) {
	return GetJSON[mapx.Mapping](ctx, epnt, config)
}

// GetMappingList is like [GetMapping] but reads a JSON array of objects.
func GetMappingList(ctx context.Context, epnt *Endpoint, config *Config) ([]mapx.Mapping, error) {
	return GetJSON[[]mapx.Mapping](ctx, epnt, config)
}
