package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/embedweb/internal/jsontree"
)

// exitPayload is the frame payload that ends a session after its reply.
var exitPayload = []byte("exit")

const closeGracePeriod = time.Second

type WebSocketHandlerParams struct {
	fx.In

	Config Config
	Log    *zap.Logger
}

// WebSocketHandler answers every inbound frame with a JSON description
// of its payload.
type WebSocketHandler struct {
	config   Config
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewWebSocketHandler(params WebSocketHandlerParams) *WebSocketHandler {
	return &WebSocketHandler{
		config: params.Config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// any page may talk to the echo endpoint
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: params.Log,
	}
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("remote", r.RemoteAddr),
	)

	// Upgrade replies with an http error on failure
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug("failed to upgrade connection", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(h.config.maxBodySize())

	log.Debug("websocket session opened")

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("websocket session failed", zap.Error(err))
			} else {
				log.Debug("websocket session closed by peer")
			}
			return
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(EchoReply(payload))); err != nil {
			log.Debug("failed to write frame", zap.Error(err))
			return
		}

		if bytes.Equal(payload, exitPayload) {
			log.Debug("websocket session ended by client")
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
			return
		}
	}
}

// EchoReply builds the JSON reply for a frame payload. The nested
// object is unnamed and "Lenght" is spelled as existing clients expect.
func EchoReply(payload []byte) string {
	return jsontree.NewObject("",
		jsontree.NewString("Response", ""),
		jsontree.NewObject("",
			jsontree.NewString("Response Data", string(payload)),
			jsontree.NewInt("Response Lenght", len(payload)),
		),
	).Write()
}
