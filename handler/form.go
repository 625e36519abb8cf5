package handler

import (
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/embedweb/internal/console"
)

const formPage = "<html><body>POST example." +
	"<form method=\"POST\" action=\"/handle_post_request\">" +
	"Input 1: <input type=\"text\" name=\"input_1\" /> <br/>" +
	"Input 2: <input type=\"text\" name=\"input_2\" /> <br/>" +
	"<input type=\"submit\" />" +
	"</form></body></html>"

type FormHandlerParams struct {
	fx.In

	Console *console.Console
	Log     *zap.Logger
}

// FormHandler serves the static form that posts to the POST echo.
type FormHandler struct {
	console *console.Console
	log     *zap.Logger
}

func NewFormHandler(params FormHandlerParams) *FormHandler {
	return &FormHandler{
		console: params.Console,
		log:     params.Log,
	}
}

func (h *FormHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := io.WriteString(w, formPage); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
		return
	}

	h.console.Printf("HTML form shown")
}
