// Package requestid provides HTTP middleware that guarantees every request
// carries a correlation identifier (a request ID), exposes it to application
// code through the request context, and echoes it in the response.
//
// Request IDs let operators trace a single user interaction through load
// balancers, reverse proxies, and application logs. The "X-Request-ID" header
// value may consist of multiple comma-separated IDs, one added per layer,
// following the list convention for HTTP header fields.
//
// The middleware respects pre-existing values set by the client or an
// upstream component. The inbound header value is split into tokens and each
// token is checked for uniqueness. A token is considered unique if it:
//
//  1. parses as a valid UUID version 4, or
//  2. starts with a prefix known to belong to a component that assigns
//     unique IDs, configured through REQUEST_ID_UNIQUE_VALUE_PREFIX.
//
// When at least one token qualifies, the header value is kept byte-for-byte.
// When none does, a fresh UUID v4 is appended; when no header was sent at
// all, the generated UUID becomes the sole value. The resolved value is never
// empty and always contains at least one unique token.
//
// # Overview
//
// The package offers:
//
//   - HTTP middleware (see New and Middleware) that resolves the request ID
//     once per request, stores it in the request context, and writes it to
//     the response header, overwriting any value a handler set there.
//
//   - Resolve, the pure derivation algorithm, usable on its own when the
//     middleware does not fit (custom transports, tests, batch tooling).
//
//   - Context helpers WithContext and FromContext for storing and extracting
//     request IDs from a context.Context.
//
//   - LoggerExtractor that integrates with the slog structured-logging
//     package so the request ID is injected into log records automatically.
//
// # Usage
//
//	import (
//		"net/http"
//
//		"github.com/dmitrymomot/requestid"
//	)
//
//	mux := http.NewServeMux()
//	mux.Handle("/hello", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		w.Write([]byte("hello, your request id is " + id))
//	}))
//
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
// A configured variant accepts functional options:
//
//	handler := requestid.New(
//		requestid.WithUniqueValuePrefix("GATEWAY-"),
//	)(mux)
//
// # Configuration
//
// The unique-value prefix is usually supplied by the hosting application's
// environment. Config carries it with env tags so it can be loaded with the
// pkg/config loader:
//
//	cfg := config.MustLoad[requestid.Config]()
//	handler := requestid.NewFromConfig(cfg)(mux)
//
// # Logger integration
//
//	log := logger.New(
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// # Constants
//
// The package exposes the Header constant holding the canonical request-ID
// header name ("X-Request-ID").
//
// # Error Handling
//
// The package does not return errors. Malformed or empty header values are
// treated as non-unique and extended with a generated token rather than
// rejected, so a garbled correlation header never fails the request. The only
// fatal condition is exhaustion of the process randomness source, which
// panics inside the default generator and is deliberately not caught here.
//
// See the package tests for more usage patterns.
//
//go:generate go test -run=Example
package requestid
