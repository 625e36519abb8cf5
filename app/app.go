package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/embedweb/config"
	"github.com/lambda-feedback/embedweb/internal/console"
	"github.com/lambda-feedback/embedweb/internal/shell"
	"github.com/lambda-feedback/embedweb/util/conf"
	"github.com/lambda-feedback/embedweb/util/logging"
)

// New creates a shell from the logger and config stored in the cli
// context.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	return shell.New(log, SharedModule(config)), nil
}

// SharedModule provides what every server flavour needs.
func SharedModule(config config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide console config
		fx.Supply(config.Console),
		// provide handler config
		fx.Supply(config.Handler),
		// provide console
		fx.Provide(console.NewLifecycleConsole),
	)
}
