package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/requestid"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates new request ID when not provided", func(t *testing.T) {
		t.Parallel()
		var seen string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		got := rec.Header().Get(requestid.Header)
		require.NotEmpty(t, got)
		assert.Equal(t, got, seen, "context value and response header must agree")
		id, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
	})

	t.Run("keeps prefixed request ID unchanged", func(t *testing.T) {
		t.Parallel()
		var seen string
		handler := requestid.New(requestid.WithUniqueValuePrefix("FOO-"))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestid.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "FOO-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "FOO-123", rec.Header().Get(requestid.Header))
		assert.Equal(t, "FOO-123", seen)
	})

	t.Run("keeps valid UUID v4 unchanged", func(t *testing.T) {
		t.Parallel()
		existing := uuid.NewString()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, existing)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, existing, rec.Header().Get(requestid.Header))
	})

	t.Run("appends generated token to non-unique ID", func(t *testing.T) {
		t.Parallel()
		var seen, inbound string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
			inbound = r.Header.Get(requestid.Header)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "abc123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		got := rec.Header().Get(requestid.Header)
		require.True(t, strings.HasPrefix(got, "abc123, "), "got %q", got)
		id, err := uuid.Parse(strings.TrimPrefix(got, "abc123, "))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
		assert.Equal(t, got, seen, "context must carry the resolved value")
		assert.Equal(t, "abc123", inbound, "inbound request header stays untouched")
	})

	t.Run("header name is case-insensitive", func(t *testing.T) {
		t.Parallel()
		handler := requestid.New(requestid.WithUniqueValuePrefix("FOO-"))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("x-request-id", "FOO-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "FOO-123", rec.Header().Get(requestid.Header))
	})

	t.Run("sets header when handler never writes", func(t *testing.T) {
		t.Parallel()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("overwrites request ID set by the handler", func(t *testing.T) {
		t.Parallel()
		existing := uuid.NewString()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(requestid.Header, "spoofed-by-handler")
			w.WriteHeader(http.StatusCreated)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, existing)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, existing, rec.Header().Get(requestid.Header))
	})

	t.Run("overwrites on implicit write as well", func(t *testing.T) {
		t.Parallel()
		existing := uuid.NewString()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(requestid.Header, "spoofed-by-handler")
			_, _ = w.Write([]byte("body"))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, existing)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, existing, rec.Header().Get(requestid.Header))
		assert.Equal(t, "body", rec.Body.String())
	})

	t.Run("custom generator is used", func(t *testing.T) {
		t.Parallel()
		handler := requestid.New(requestid.WithGenerator(func() string { return "fixed-id" }))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "fixed-id", rec.Header().Get(requestid.Header))
	})

	t.Run("hijack fails on non-hijackable writers", func(t *testing.T) {
		t.Parallel()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok, "wrapped writer must keep http.Hijacker")
			_, _, err := hj.Hijack()
			assert.Error(t, err, "recorder does not support hijacking")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	})

	t.Run("streaming handlers can flush", func(t *testing.T) {
		t.Parallel()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f, ok := w.(http.Flusher)
			require.True(t, ok, "wrapped writer must keep http.Flusher")
			_, _ = w.Write([]byte("chunk-1"))
			f.Flush()
			_, _ = w.Write([]byte("chunk-2"))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, rec.Flushed)
		assert.Equal(t, "chunk-1chunk-2", rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	handler := requestid.NewFromConfig(
		requestid.Config{UniqueValuePrefix: "SVC-"},
		requestid.WithGenerator(func() string { return "generated-token" }),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("prefix from config qualifies", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "SVC-7")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "SVC-7", rec.Header().Get(requestid.Header))
	})

	t.Run("extra options apply on top", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "generated-token", rec.Header().Get(requestid.Header))
	})
}
