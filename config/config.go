package config

import (
	"github.com/lambda-feedback/embedweb/app/lambda"
	"github.com/lambda-feedback/embedweb/handler"
	"github.com/lambda-feedback/embedweb/internal/console"
	"github.com/lambda-feedback/embedweb/internal/server"
	"github.com/lambda-feedback/embedweb/util/conf"
)

// EnvPrefix prefixes env vars that are read as config keys, e.g.
// EMBEDWEB_MAX_BODY_SIZE for max_body_size.
const EnvPrefix = "EMBEDWEB_"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Console controls mirroring of responses to stdout
	Console console.Config `conf:",squash"`

	// Handler configures the request handlers
	Handler handler.Config `conf:",squash"`

	// Http configures the standalone http server
	Http server.HttpConfig `conf:",squash"`

	// Lambda configures the AWS Lambda proxy
	Lambda lambda.Config `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":           "info",
	"log_format":          "production",
	"silent":              false,
	"max_body_size":       handler.DefaultMaxBodySize,
	"host":                "",
	"port":                80,
	"h2c":                 false,
	"lambda_proxy_source": lambda.ProxySourceApiGatewayV2.String(),
}
