package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

const (
	PathPostEcho = "/handle_post_request"
	PathPostForm = "/post_request"
	PathGetEcho  = "/get_request"
)

type RouterParams struct {
	fx.In

	Form      *FormHandler
	Get       *GetHandler
	Post      *PostHandler
	WebSocket *WebSocketHandler
	Default   *DefaultHandler
}

// Router hands each request to exactly one handler. Websocket upgrades
// win regardless of path; otherwise the path is compared verbatim.
type Router struct {
	form      http.Handler
	get       http.Handler
	post      http.Handler
	websocket http.Handler
	fallback  http.Handler
}

func NewRouter(params RouterParams) *Router {
	return &Router{
		form:      params.Form,
		get:       params.Get,
		post:      params.Post,
		websocket: params.WebSocket,
		fallback:  params.Default,
	}
}

// Route returns the handler for r.
func (rt *Router) Route(r *http.Request) http.Handler {
	if websocket.IsWebSocketUpgrade(r) {
		return rt.websocket
	}

	switch r.URL.Path {
	case PathPostEcho:
		return rt.post
	case PathPostForm:
		return rt.form
	case PathGetEcho:
		return rt.get
	default:
		return rt.fallback
	}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.Route(r).ServeHTTP(w, r)
}
