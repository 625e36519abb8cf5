package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/embedweb/app"
	"github.com/lambda-feedback/embedweb/app/standalone"
	"github.com/lambda-feedback/embedweb/config"
	"github.com/lambda-feedback/embedweb/util/conf"
	"github.com/lambda-feedback/embedweb/util/logging"
)

var (
	serveCmdDescription = `The serve command starts the http server and waits for
requests. It serves the HTML form, echoes GET and POST
variables, traces posted JSON documents and echoes
websocket frames.

The command blocks until the process is interrupted.

Server flags are set on the root command, e.g.
embedweb --port 8080 serve`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the http server and listen for requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	standaloneConfig := standalone.Config{HttpConfig: cfg.Http}
	if err := standaloneConfig.Validate(); err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	log.Info("starting http server", zap.String("address", cfg.Http.Address()))

	return app.Run(ctx.Context, standalone.Module(standaloneConfig))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
