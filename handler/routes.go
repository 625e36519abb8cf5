package handler

import "github.com/lambda-feedback/embedweb/internal/server"

// NewRoute mounts the router on every path.
func NewRoute(router *Router) server.HttpHandlerResult {
	return server.AsHttpHandler("/", router)
}
