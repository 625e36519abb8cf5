package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/embedweb/util/logging"
)

var (
	runCmdDescription = `The run command detects the execution environment from the
environment variables and starts the server. It is also the
action of the root command.

If the AWS_LAMBDA_RUNTIME_API environment variable is set,
embedweb starts the AWS Lambda handler, matching the
behaviour of the lambda command.

Otherwise, embedweb starts the standalone http server.`
	runCmd = &cli.Command{
		Name:        "run",
		Usage:       "Detect execution environment and start the server.",
		Description: runCmdDescription,
		Action:      runAction,
	}
)

func runAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	if isAWSLambda() {
		log.Info("detected AWS Lambda environment")
		return lambdaAction(ctx)
	}

	log.Info("detected standalone environment")
	return serveAction(ctx)
}

func isAWSLambda() bool {
	env, ok := os.LookupEnv("AWS_LAMBDA_RUNTIME_API")
	return ok && env != ""
}

func init() {
	rootApp.Commands = append(rootApp.Commands, runCmd)
}
