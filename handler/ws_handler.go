package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

// WebSocketHandler streams processing-status events for a run: the client
// sends one run request after connecting and receives "processing" events for
// each pipeline stage, then a "result" or "error" message.
type WebSocketHandler struct {
	docService DocumentRunner
	upgrader   websocket.Upgrader
}

func NewWebSocketHandler(docService DocumentRunner) *WebSocketHandler {
	return &WebSocketHandler{
		docService: docService,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (h *WebSocketHandler) HandleRun(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	var req types.RunRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.send(conn, types.TypeWebsocketError, "Invalid request")
		return
	}
	if req.Documents == "" || len(req.Questions) == 0 {
		h.send(conn, types.TypeWebsocketError, "documents URL and at least one question are required")
		return
	}

	progress := func(stage, message string) {
		h.send(conn, types.TypeWebsocketProcessing, types.ProcessingStatus{
			Stage:   stage,
			Message: message,
		})
	}

	answers, err := h.docService.Run(c.Request.Context(), req.Documents, req.Questions, progress)
	if err != nil {
		h.send(conn, types.TypeWebsocketError, err.Error())
		return
	}

	h.send(conn, types.TypeWebsocketResult, types.RunResponse{Answers: answers})
}

func (h *WebSocketHandler) send(conn *websocket.Conn, msgType string, payload interface{}) {
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := conn.WriteJSON(types.WebSocketResponse{Type: msgType, Payload: payload}); err != nil {
		log.Println("WebSocket write error:", err)
	}
}
