package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a handler mounted on a ServeMux pattern.
type HttpHandler struct {
	Name    string
	Handler http.Handler
}

// HttpHandlerResult adds a handler to the "handlers" group consumed by
// the http server and the lambda proxy.
type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	name string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Name:    name,
			Handler: handler,
		},
	}
}

// NewMux mounts every handler on a fresh ServeMux. A lone handler on
// "/" is returned as is, so it sees every request path uncleaned.
func NewMux(handlers []*HttpHandler) http.Handler {
	if len(handlers) == 1 && handlers[0].Name == "/" {
		return handlers[0].Handler
	}

	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Name, handler.Handler)
	}

	return mux
}
