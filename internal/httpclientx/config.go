package httpclientx

import "github.com/placefetch/placefetch/internal/model"

// DefaultMaxResponseBodySize is the maximum response body size we are
// willing to read when [Config.MaxResponseBodySize] is zero.
const DefaultMaxResponseBodySize = 1 << 24

// Config contains configuration shared by [GetJSON], [GetRaw],
// [PostJSON], [PutJSON], and [Delete].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Authorization contains the OPTIONAL Authorization header value to use.
	Authorization string

	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// MaxResponseBodySize is the OPTIONAL maximum response body size;
	// we use [DefaultMaxResponseBodySize] when this field is zero.
	MaxResponseBodySize int64

	// UserAgent is the MANDATORY User-Agent header value to use.
	UserAgent string
}

func (c *Config) maxResponseBodySize() int64 {
	if c.MaxResponseBodySize > 0 {
		return c.MaxResponseBodySize
	}
	return DefaultMaxResponseBodySize
}
