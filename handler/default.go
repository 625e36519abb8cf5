package handler

import (
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/embedweb/internal/console"
)

const usageBanner = "Usage\n" +
	PathPostForm + "\n" +
	PathGetEcho + "?input_1=value&input_2=value\n"

// pathFavicon is answered with an empty 200 since there is no icon.
const pathFavicon = "/favicon.ico"

type DefaultHandlerParams struct {
	fx.In

	Console *console.Console
	Log     *zap.Logger
}

// DefaultHandler answers every path the router does not know.
type DefaultHandler struct {
	console *console.Console
	log     *zap.Logger
}

func NewDefaultHandler(params DefaultHandlerParams) *DefaultHandler {
	return &DefaultHandler{
		console: params.Console,
		log:     params.Log,
	}
}

func (h *DefaultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == pathFavicon {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := io.WriteString(w, usageBanner); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
	}

	h.console.Printf("Received invalid uri: %s", r.URL.Path)
}
