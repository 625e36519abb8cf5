package handler

import (
	"fmt"
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/embedweb/internal/console"
	"github.com/lambda-feedback/embedweb/internal/jsontree"
)

type GetHandlerParams struct {
	fx.In

	Console *console.Console
	Log     *zap.Logger
}

// GetHandler echoes the input_1 and input_2 query variables as text,
// followed by the same pair as a single line of JSON.
type GetHandler struct {
	console *console.Console
	log     *zap.Logger
}

func NewGetHandler(params GetHandlerParams) *GetHandler {
	return &GetHandler{
		console: params.Console,
		log:     params.Log,
	}
}

func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	vars := newParams(r, nil)
	input1 := vars.Get("input_1")
	input2 := vars.Get("input_2")

	con := h.console.Writer()
	defer con.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	out := io.MultiWriter(w, con)
	if _, err := fmt.Fprintf(out, "input_1: [%s]\ninput_2: [%s]\n", input1, input2); err != nil {
		log.Debug("failed to write response", zap.Error(err))
		return
	}

	doc := jsontree.NewObject("",
		jsontree.NewString("input_1", input1),
		jsontree.NewString("input_2", input2),
	).Write()

	if _, err := io.WriteString(w, doc); err != nil {
		log.Debug("failed to write response", zap.Error(err))
		return
	}

	fmt.Fprintln(con, doc)
}
