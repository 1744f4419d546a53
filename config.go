package requestid

// Config holds the environment-backed settings for the middleware.
type Config struct {
	UniqueValuePrefix string `env:"REQUEST_ID_UNIQUE_VALUE_PREFIX"` // Tokens starting with this prefix count as already unique. Empty disables prefix matching; UUID v4 tokens always qualify.
}
