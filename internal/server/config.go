package server

import (
	"errors"
	"fmt"
)

var ErrInvalidPort = errors.New("invalid port")

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

// Validate checks that the config describes a listenable address.
func (c HttpConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	return nil
}

// Address returns the host:port pair to listen on.
func (c HttpConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
