// Package must contains functions that panic on error.
package must

import (
	"encoding/json"
	"net/url"

	"github.com/placefetch/placefetch/internal/runtimex"
)

// MarshalJSON is like [json.Marshal] but calls
// [runtimex.PanicOnError] on failure.
func MarshalJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	runtimex.PanicOnError(err, "json.Marshal failed")
	return data
}

// MarshalAndIndentJSON is like [json.MarshalIndent] but calls
// [runtimex.PanicOnError] on failure.
func MarshalAndIndentJSON(v interface{}, prefix string, indent string) []byte {
	data, err := json.MarshalIndent(v, prefix, indent)
	runtimex.PanicOnError(err, "json.MarshalIndent failed")
	return data
}

// UnmarshalJSON is like [json.Unmarshal] but calls
// [runtimex.PanicOnError] on failure.
func UnmarshalJSON(data []byte, v interface{}) {
	err := json.Unmarshal(data, v)
	runtimex.PanicOnError(err, "json.Unmarshal failed")
}

// ParseURL is like [url.Parse] but calls
// [runtimex.PanicOnError] on failure.
func ParseURL(URL string) *url.URL {
	parsed, err := url.Parse(URL)
	runtimex.PanicOnError(err, "url.Parse failed")
	return parsed
}
