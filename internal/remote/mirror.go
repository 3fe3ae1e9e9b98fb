// Package remote mirrors the state of an online game kept by the server.
// The mirror never changes the board on its own: every change comes from an
// acknowledgment or a push.
package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/sound"
	"github.com/rocketscienceinc/tictaptoe-client/internal/transport/websocket"
)

const maxNotices = 50

type Transport interface {
	Emit(ctx context.Context, event string, payload, ack any) error
	On(event string, handler websocket.PushHandler) int
	Off(id int)
	OnStateChange(callback websocket.StateCallback) int
	RemoveStateCallback(id int)
	Connected() bool
}

// Recorder counts traffic between the mirror and the server.
type Recorder interface {
	IntentSent(event string)
	IntentRejected(event string)
	PushReceived(event string)
}

type cuePlayer interface {
	Play(cue sound.Cue)
}

type Options struct {
	Cues    cuePlayer
	Metrics Recorder
	// OnFinish is called once per finished game, outside the mirror lock.
	OnFinish func(snapshot Snapshot)
}

type deferredPush struct {
	apply   func(payload json.RawMessage)
	payload json.RawMessage
}

type Mirror struct {
	logger    *slog.Logger
	transport Transport
	cues      cuePlayer
	metrics   Recorder
	onFinish  func(snapshot Snapshot)
	now       func() time.Time

	mu            sync.Mutex
	phase         Phase
	selfID        string
	rooms         []entity.RoomSummary
	room          *entity.Room
	symbol        entity.Mark
	board         entity.Board
	currentPlayer string
	opponent      string
	result        entity.Result
	notices       []Notice

	// entering is set while a create or join waits for its acknowledgment;
	// room pushes arriving meanwhile are replayed once the room is known.
	entering bool
	deferred []deferredPush
	effects  []func()

	subM      sync.Mutex
	lobbySubs []int
	roomSubs  []int
	stateSub  int
	opened    bool

	updates chan struct{}
}

func NewMirror(logger *slog.Logger, transport Transport, opts Options) *Mirror {
	mirror := &Mirror{
		logger:    logger.With("component", "mirror"),
		transport: transport,
		cues:      opts.Cues,
		metrics:   opts.Metrics,
		onFinish:  opts.OnFinish,
		now:       time.Now,
		phase:     PhaseDisconnected,
		result:    entity.OngoingResult(),
		updates:   make(chan struct{}, 1),
	}

	if mirror.cues == nil {
		mirror.cues = sound.Mute{}
	}

	if mirror.metrics == nil {
		mirror.metrics = noopRecorder{}
	}

	return mirror
}

// Open subscribes to the lobby events and the transport state.
func (that *Mirror) Open() {
	that.subM.Lock()
	defer that.subM.Unlock()

	if that.opened {
		return
	}
	that.opened = true

	that.stateSub = that.transport.OnStateChange(that.handleState)
	that.lobbySubs = []int{
		that.transport.On(EventConnect, that.push(EventConnect, that.applyConnect)),
		that.transport.On(EventRoomList, that.push(EventRoomList, that.applyRoomList)),
	}

	if that.transport.Connected() {
		that.mutate(func() {
			if that.phase == PhaseDisconnected {
				that.phase = PhaseConnected
			}
		})
	}
}

// Close drops every subscription of the mirror.
func (that *Mirror) Close() {
	that.subM.Lock()
	defer that.subM.Unlock()

	if !that.opened {
		return
	}
	that.opened = false

	that.transport.RemoveStateCallback(that.stateSub)
	for _, id := range that.lobbySubs {
		that.transport.Off(id)
	}
	that.lobbySubs = nil
	that.dropRoomScopeLocked()
}

// Updates signals after every change of the mirror. Signals coalesce.
func (that *Mirror) Updates() <-chan struct{} {
	return that.updates
}

func (that *Mirror) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshotLocked()
}

func (that *Mirror) snapshotLocked() Snapshot {
	line := make([]int, len(that.result.Line))
	copy(line, that.result.Line)

	return Snapshot{
		Phase:         that.phase,
		SelfID:        that.selfID,
		Rooms:         append([]entity.RoomSummary(nil), that.rooms...),
		Room:          copyRoom(that.room),
		Symbol:        that.symbol,
		Board:         that.board,
		CurrentPlayer: that.currentPlayer,
		Opponent:      that.opponent,
		Result:        entity.Result{Outcome: that.result.Outcome, Line: line},
		Notices:       append([]Notice(nil), that.notices...),
	}
}

// mutate runs fn under the lock, then the side effects it queued, then
// signals listeners.
func (that *Mirror) mutate(fn func()) {
	that.mu.Lock()
	fn()
	effects := that.effects
	that.effects = nil
	that.mu.Unlock()

	for _, effect := range effects {
		effect()
	}

	that.notify()
}

func (that *Mirror) notify() {
	select {
	case that.updates <- struct{}{}:
	default:
	}
}

func (that *Mirror) addNoticeLocked(text string) {
	that.notices = append(that.notices, Notice{At: that.now(), Text: text})
	if len(that.notices) > maxNotices {
		that.notices = that.notices[len(that.notices)-maxNotices:]
	}
}

func (that *Mirror) handleState(state websocket.State) {
	log := that.logger.With("method", "handleState")

	switch state {
	case websocket.StateConnected:
		that.mutate(func() {
			if that.phase == PhaseDisconnected {
				that.phase = PhaseConnected
			}
		})
	case websocket.StateDisconnected, websocket.StateReconnecting, websocket.StateFailed:
		that.dropRoomScope()
		that.mutate(func() {
			if that.phase == PhaseDisconnected {
				return
			}

			log.Warn("disconnected from server", "state", state)
			that.clearRoomLocked()
			that.entering = false
			that.deferred = nil
			that.phase = PhaseDisconnected
			that.addNoticeLocked("Disconnected from server")
		})
	}
}

// enterRoomScope subscribes to the in-room pushes before a create or join
// is sent, so pushes that follow the acknowledgment are not lost.
func (that *Mirror) enterRoomScope() {
	that.subM.Lock()
	defer that.subM.Unlock()

	that.dropRoomScopeLocked()
	that.roomSubs = []int{
		that.transport.On(EventGameStarted, that.roomPush(EventGameStarted, that.applyGameStarted)),
		that.transport.On(EventGameMove, that.roomPush(EventGameMove, that.applyGameMove)),
		that.transport.On(EventPlayerJoined, that.roomPush(EventPlayerJoined, that.applyPlayerJoined)),
		that.transport.On(EventPlayerLeft, that.roomPush(EventPlayerLeft, that.applyPlayerGone(EventPlayerLeft))),
		that.transport.On(EventPlayerDisconnected, that.roomPush(EventPlayerDisconnected, that.applyPlayerGone(EventPlayerDisconnected))),
	}
}

func (that *Mirror) dropRoomScope() {
	that.subM.Lock()
	defer that.subM.Unlock()

	that.dropRoomScopeLocked()
}

func (that *Mirror) dropRoomScopeLocked() {
	for _, id := range that.roomSubs {
		that.transport.Off(id)
	}
	that.roomSubs = nil
}

// push wraps a lobby handler.
func (that *Mirror) push(event string, apply func(payload json.RawMessage)) websocket.PushHandler {
	return func(payload json.RawMessage) {
		that.metrics.PushReceived(event)
		that.logger.Debug("push received", "event", event)

		that.mutate(func() {
			apply(payload)
		})
	}
}

// roomPush wraps an in-room handler. Pushes received outside a room are
// dropped, pushes received while entering one are deferred.
func (that *Mirror) roomPush(event string, apply func(payload json.RawMessage)) websocket.PushHandler {
	return func(payload json.RawMessage) {
		that.metrics.PushReceived(event)
		that.logger.Debug("push received", "event", event)

		that.mutate(func() {
			switch {
			case that.entering:
				that.deferred = append(that.deferred, deferredPush{apply: apply, payload: payload})
			case that.room != nil:
				apply(payload)
			}
		})
	}
}

func (that *Mirror) replayDeferredLocked() {
	deferred := that.deferred
	that.deferred = nil

	for _, entry := range deferred {
		entry.apply(entry.payload)
	}
}

type noopRecorder struct{}

func (noopRecorder) IntentSent(string)     {}
func (noopRecorder) IntentRejected(string) {}
func (noopRecorder) PushReceived(string)   {}
