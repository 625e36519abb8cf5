package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/embedweb/internal/console"
	"github.com/lambda-feedback/embedweb/internal/jsontree"
)

// jsonMarker is the input_1 value that makes input_2 a JSON document.
const jsonMarker = "JSON"

type PostHandlerParams struct {
	fx.In

	Config  Config
	Console *console.Console
	Log     *zap.Logger
}

// PostHandler echoes a submitted form. When input_1 is "JSON", input_2
// is parsed and its trace is written instead.
type PostHandler struct {
	config  Config
	console *console.Console
	log     *zap.Logger
}

func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		config:  params.Config,
		console: params.Console,
		log:     params.Log,
	}
}

func (h *PostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.config.maxBodySize()))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Debug("request body too large", zap.Int64("limit", maxErr.Limit))
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}

		log.Debug("failed to read body", zap.Error(err))
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	vars := newParams(r, body)
	input1 := vars.Get("input_1")
	input2 := vars.Get("input_2")

	con := h.console.Writer()
	defer con.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	out := io.MultiWriter(w, con)

	if input1 == jsonMarker {
		err = h.writeTrace(out, input2, log)
	} else {
		_, err = fmt.Fprintf(out,
			"Submitted data: [%s]\n"+
				"Submitted data length: %d bytes\n"+
				"input_1: [%s]\n"+
				"input_2: [%s]\n",
			body, len(body), input1, input2)
	}

	if err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}

func (h *PostHandler) writeTrace(w io.Writer, doc string, log *zap.Logger) error {
	root, err := jsontree.Parse([]byte(doc))
	if err != nil {
		log.Debug("invalid json submitted", zap.Error(err))
		_, err = fmt.Fprintf(w, "Error! Expected Valid JSON [%s]\n", doc)
		return err
	}

	return jsontree.Render(w, root)
}
