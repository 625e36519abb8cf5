package handler

// DefaultMaxBodySize caps request bodies and websocket frames at 1 MiB.
const DefaultMaxBodySize int64 = 1 << 20

type Config struct {
	// MaxBodySize is the largest accepted request body or websocket
	// frame in bytes. Non-positive values select DefaultMaxBodySize.
	MaxBodySize int64 `conf:"max_body_size"`
}

func (c Config) maxBodySize() int64 {
	if c.MaxBodySize <= 0 {
		return DefaultMaxBodySize
	}

	return c.MaxBodySize
}
