package requestid

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor that exposes the resolved
// request ID to slog under the "request_id" key. It plugs directly into the
// logger package's context extractor slot.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return slog.String("request_id", requestID), true
		}
		return slog.Attr{}, false
	}
}
