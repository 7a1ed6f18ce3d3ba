package types

const (
	TypeWebsocketProcessing = "processing"
	TypeWebsocketResult     = "result"
	TypeWebsocketError      = "error"
)

// WebSocketResponse is the envelope for every message the server pushes on
// the streaming run endpoint.
type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
