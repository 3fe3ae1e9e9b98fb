package websocket

import (
	"encoding/json"
	"time"
)

type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateReconnecting State = "reconnecting"
	StateFailed       State = "failed"
)

// PushHandler receives the payload of a server-initiated event.
type PushHandler func(payload json.RawMessage)

type StateCallback func(state State)

type pushEntry struct {
	id      int
	event   string
	handler PushHandler
}

type stateEntry struct {
	id       int
	callback StateCallback
}

type ackResult struct {
	payload json.RawMessage
	err     error
}

const maxBackoff = 30 * time.Second

func backoffDuration(base time.Duration, attempt int) time.Duration {
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}

	return delay
}
