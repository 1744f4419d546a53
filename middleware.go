package requestid

import "net/http"

type options struct {
	uniquePrefix string
	generate     Generator
}

// Option configures the middleware returned by New.
type Option func(*options)

// WithUniqueValuePrefix marks inbound tokens starting with prefix as already
// unique, so IDs assigned by a trusted upstream component are respected
// without appending a generated one.
func WithUniqueValuePrefix(prefix string) Option {
	return func(o *options) { o.uniquePrefix = prefix }
}

// WithGenerator replaces the default UUID v4 generator. Nil generators are
// ignored.
func WithGenerator(g Generator) Option {
	return func(o *options) {
		if g != nil {
			o.generate = g
		}
	}
}

// New returns HTTP middleware that guarantees every request carries a request
// ID. The inbound header is resolved once per request, the result is stored
// in the request context for handlers and log formatters, and the same value
// is echoed in the response header, overwriting anything a handler put there.
func New(opts ...Option) func(http.Handler) http.Handler {
	o := &options{generate: defaultGenerator}
	for _, opt := range opts {
		opt(o)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := Resolve(r.Header.Get(Header), o.uniquePrefix, o.generate)
			// Eager set covers handlers that return without writing.
			w.Header().Set(Header, requestID)
			ww := &headerWriter{ResponseWriter: w, requestID: requestID}
			next.ServeHTTP(ww, r.WithContext(WithContext(r.Context(), requestID)))
		})
	}
}

// Middleware is New with default options, for mounting without configuration:
//
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

// NewFromConfig builds the middleware from the environment-backed Config.
// Additional options take precedence over config values.
func NewFromConfig(cfg Config, opts ...Option) func(http.Handler) http.Handler {
	return New(append([]Option{WithUniqueValuePrefix(cfg.UniqueValuePrefix)}, opts...)...)
}
