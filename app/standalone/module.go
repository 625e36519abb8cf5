package standalone

import (
	"context"

	"go.uber.org/fx"

	"github.com/lambda-feedback/embedweb/handler"
	"github.com/lambda-feedback/embedweb/internal/console"
	"github.com/lambda-feedback/embedweb/internal/server"
	"github.com/lambda-feedback/embedweb/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide router and handlers
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
		// announce the port once the server is listening
		fx.Invoke(announcePort(config)),
	)
}

// announcePort depends on the server, so its start hook is appended
// after the one that binds the listener and only runs if that succeeds.
func announcePort(config Config) func(fx.Lifecycle, *console.Console, *server.HttpServer) {
	return func(lc fx.Lifecycle, c *console.Console, _ *server.HttpServer) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				c.Printf("Starting on port %d", config.HttpConfig.Port)
				return nil
			},
		})
	}
}
