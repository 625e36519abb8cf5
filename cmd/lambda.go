package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/embedweb/app"
	"github.com/lambda-feedback/embedweb/app/lambda"
	"github.com/lambda-feedback/embedweb/config"
	"github.com/lambda-feedback/embedweb/util/conf"
	"github.com/lambda-feedback/embedweb/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the server as an AWS Lambda
runtime interface client. Lambda events are translated into
http requests and served by the same handlers as the
standalone server. Websocket upgrades are not available.

The command blocks indefinitely, processing incoming AWS
Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler.",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	if err := cfg.Lambda.Validate(); err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler",
		zap.Stringer("proxy_source", cfg.Lambda.ProxySource),
	)

	return app.Run(ctx.Context, lambda.Module(cfg.Lambda))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
