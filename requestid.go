package requestid

import (
	"strings"

	"github.com/google/uuid"
)

// Header is the canonical request ID header name.
const Header = "X-Request-ID"

// Generator produces a fresh, statistically unique request ID token. The
// default generator emits canonical lowercase UUID v4 strings and panics only
// if the process randomness source fails, which is treated as fatal rather
// than masked.
type Generator func() string

var defaultGenerator Generator = uuid.NewString

// Resolve computes the request ID header value for a request.
//
// headerValue is the raw inbound header value, possibly carrying several
// comma-separated tokens added by upstream hops. A token counts as already
// unique when it starts with uniquePrefix (empty prefix disables this path)
// or when it parses as a UUID version 4. If any token qualifies, headerValue
// is returned verbatim so an already valid header round-trips byte-for-byte.
// Otherwise a generated token is appended with ", ". An empty headerValue
// yields a single generated token.
//
// Resolve never fails. Malformed tokens are simply treated as non-unique, so
// a garbled correlation header can never break the request.
func Resolve(headerValue, uniquePrefix string, generate Generator) string {
	if generate == nil {
		generate = defaultGenerator
	}
	if headerValue == "" {
		return generate()
	}
	// Use SplitSeq for better efficiency (Go 1.24+)
	for token := range strings.SplitSeq(headerValue, ",") {
		if isUnique(strings.TrimSpace(token), uniquePrefix) {
			return headerValue
		}
	}
	return headerValue + ", " + generate()
}

// isUnique reports whether a single trimmed token already identifies the
// request uniquely.
func isUnique(token, uniquePrefix string) bool {
	if uniquePrefix != "" && strings.HasPrefix(token, uniquePrefix) {
		return true
	}
	id, err := uuid.Parse(token)
	return err == nil && id.Version() == 4 && id.Variant() == uuid.RFC4122
}
