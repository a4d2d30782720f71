// Package testingx contains helpers for writing tests.
package testingx

import (
	"net"
	"net/http"
	"net/http/httptest"

	"github.com/placefetch/placefetch/internal/runtimex"
)

// MustNewHTTPServer creates a new [*httptest.Server] using the given
// handler and listening on 127.0.0.1.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	runtimex.PanicOnError(err, "net.Listen failed")
	srvr := httptest.NewUnstartedServer(handler)
	srvr.Listener = listener
	srvr.Start()
	return srvr
}

// HTTPHandlerReset returns a handler that resets the underlying
// connection without sending back any response.
func HTTPHandlerReset() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hijacker, ok := w.(http.Hijacker)
		runtimex.Assert(ok, "response writer is not an http.Hijacker")
		conn, _, err := hijacker.Hijack()
		runtimex.PanicOnError(err, "hijacker.Hijack failed")
		if tcpconn, ok := conn.(*net.TCPConn); ok {
			tcpconn.SetLinger(0)
		}
		conn.Close()
	})
}
