package websocket

import (
	"encoding/json"
	"fmt"
)

const eventAck = "ack"

// Message is the envelope of every frame in both directions. Requests carry
// an ID which the server echoes in the matching "ack" message.
type Message struct {
	Event   string          `json:"event"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func newMessage(event, id string, payload any) (*Message, error) {
	msg := &Message{
		Event: event,
		ID:    id,
	}

	if payload == nil {
		return msg, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}

	msg.Payload = raw

	return msg, nil
}

func (that *Message) IsAck() bool {
	return that.Event == eventAck && that.ID != ""
}
