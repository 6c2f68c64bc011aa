package waha

// Event is an incoming WAHA webhook envelope.
type Event struct {
	ID      string  `json:"id"`
	Event   string  `json:"event"`
	Session string  `json:"session"`
	Payload Payload `json:"payload"`
}

// Payload is the message body inside a WAHA event.
type Payload struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	FromMe    bool   `json:"fromMe"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

// SendTextRequest is the payload for the WAHA sendText API.
type SendTextRequest struct {
	ChatID  string `json:"chatId"`
	Text    string `json:"text"`
	Session string `json:"session"`
}

// Message event types the assistant reacts to.
const (
	EventMessage    = "message"
	EventMessageAny = "message.any"
)
