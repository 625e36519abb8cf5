package handler

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("handler",
		// provide handlers
		fx.Provide(NewFormHandler),
		fx.Provide(NewGetHandler),
		fx.Provide(NewPostHandler),
		fx.Provide(NewWebSocketHandler),
		fx.Provide(NewDefaultHandler),
		// provide router
		fx.Provide(NewRouter),
		fx.Provide(NewRoute),
	)
}
