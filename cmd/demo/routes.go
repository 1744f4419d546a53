package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/requestid"
	"github.com/dmitrymomot/requestid/pkg/httpserver"
	"github.com/dmitrymomot/requestid/pkg/logger"
)

func newRouter(cfg requestid.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(requestid.NewFromConfig(cfg))
	r.Use(accessLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/hello", helloHandler)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	return r
}

func helloHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message":    "hello",
		"request_id": requestid.FromContext(r.Context()),
	})
}

// accessLog emits one line per request. The request id attribute is added by
// the logger's context extractor rather than here.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
