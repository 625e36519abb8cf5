package standalone

import "github.com/lambda-feedback/embedweb/internal/server"

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}

// Validate checks the listen address.
func (c Config) Validate() error {
	return c.HttpConfig.Validate()
}
