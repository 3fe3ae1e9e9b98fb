package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	nws "nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictaptoe-client/internal/apperror"
)

const (
	dialTimeout = 10 * time.Second
	pingTimeout = 3 * time.Second

	maxPingFailures = 2
	readLimit       = 1 << 20
)

var ErrClientClosed = errors.New("client is closed")

type Options struct {
	ReconnectAttempts int
	ReconnectDelay    time.Duration
	PingInterval      time.Duration
}

// Client keeps one connection to the game server. Pushes are delivered to
// handlers one at a time on the read goroutine, in arrival order.
type Client struct {
	logger *slog.Logger
	url    string
	opts   Options

	conn       *nws.Conn
	connCancel context.CancelFunc
	state      State
	stateM     sync.RWMutex

	pending  map[string]chan ackResult
	pendingM sync.Mutex

	pushes   []pushEntry
	stateCbs []stateEntry
	nextID   int
	cbM      sync.RWMutex

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	rootCtx    context.Context
	rootCancel context.CancelFunc
}

func New(logger *slog.Logger, url string, opts Options) *Client {
	rootCtx, rootCancel := context.WithCancel(context.Background())

	return &Client{
		logger:     logger.With("component", "websocket"),
		url:        url,
		opts:       opts,
		state:      StateDisconnected,
		pending:    make(map[string]chan ackResult),
		stopCh:     make(chan struct{}),
		rootCtx:    rootCtx,
		rootCancel: rootCancel,
	}
}

// Connect dials the server. A failed dial still schedules reconnects when
// they are enabled.
func (that *Client) Connect(ctx context.Context) error {
	if that.isStopping() {
		return ErrClientClosed
	}

	switch that.State() {
	case StateConnected, StateConnecting, StateReconnecting:
		return nil
	}

	that.setState(StateConnecting)

	if err := that.dial(ctx); err != nil {
		that.setState(StateFailed)
		that.scheduleReconnect()
		return fmt.Errorf("failed to connect to %s: %w", that.url, err)
	}

	return nil
}

func (that *Client) dial(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	conn, _, err := nws.Dial(dialCtx, that.url, &nws.DialOptions{
		CompressionMode: nws.CompressionNoContextTakeover,
	})
	if err != nil {
		return err
	}

	conn.SetReadLimit(readLimit)

	connCtx, connCancel := context.WithCancel(that.rootCtx)

	that.stateM.Lock()
	that.conn = conn
	that.connCancel = connCancel
	that.stateM.Unlock()

	that.setState(StateConnected)
	that.logger.Info("connected to server", "url", that.url)

	that.wg.Add(2)
	go that.listen(connCtx, conn)
	go that.pingLoop(connCtx, conn)

	return nil
}

func (that *Client) listen(ctx context.Context, conn *nws.Conn) {
	defer that.wg.Done()

	log := that.logger.With("method", "listen")

	for {
		var msg Message
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if that.isStopping() {
				return
			}

			log.Warn("connection lost", "error", err)
			that.dropConnection(conn)
			return
		}

		if msg.IsAck() {
			that.resolve(msg.ID, ackResult{payload: msg.Payload})
			continue
		}

		that.dispatch(&msg)
	}
}

func (that *Client) pingLoop(ctx context.Context, conn *nws.Conn) {
	defer that.wg.Done()

	if that.opts.PingInterval <= 0 {
		return
	}

	ticker := time.NewTicker(that.opts.PingInterval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := conn.Ping(pingCtx)
			cancel()

			if err == nil {
				failures = 0
				continue
			}

			failures++
			if failures >= maxPingFailures {
				// listen observes the closed connection and drops it
				_ = conn.Close(nws.StatusGoingAway, "ping failure")
				return
			}
		}
	}
}

// dropConnection forgets conn, fails every unacknowledged request and
// starts reconnecting.
func (that *Client) dropConnection(conn *nws.Conn) {
	that.stateM.Lock()
	if that.conn != conn {
		that.stateM.Unlock()
		return
	}

	that.conn = nil
	if that.connCancel != nil {
		that.connCancel()
		that.connCancel = nil
	}
	that.stateM.Unlock()

	_ = conn.Close(nws.StatusGoingAway, "reconnect")

	that.failPending(apperror.ErrTransportLost)
	that.setState(StateDisconnected)
	that.scheduleReconnect()
}

func (that *Client) scheduleReconnect() {
	if that.opts.ReconnectAttempts <= 0 || that.isStopping() {
		return
	}

	that.setState(StateReconnecting)

	that.wg.Add(1)
	go func() {
		defer that.wg.Done()

		for attempt := 1; attempt <= that.opts.ReconnectAttempts; attempt++ {
			select {
			case <-that.stopCh:
				return
			case <-time.After(backoffDuration(that.opts.ReconnectDelay, attempt)):
			}

			if err := that.dial(that.rootCtx); err != nil {
				that.logger.Warn("reconnect failed", "attempt", attempt, "error", err)
				continue
			}

			return
		}

		that.setState(StateFailed)
	}()
}

// Emit sends a request and waits for its acknowledgment, which is decoded
// into ack when ack is not nil.
func (that *Client) Emit(ctx context.Context, event string, payload, ack any) error {
	conn := that.currentConn()
	if conn == nil {
		return apperror.ErrNotConnected
	}

	id := uuid.NewString()

	msg, err := newMessage(event, id, payload)
	if err != nil {
		return err
	}

	resultCh := make(chan ackResult, 1)
	that.pendingM.Lock()
	that.pending[id] = resultCh
	that.pendingM.Unlock()

	if err = wsjson.Write(ctx, conn, msg); err != nil {
		that.forget(id)
		return fmt.Errorf("%w: failed to send %s: %w", apperror.ErrTransportLost, event, err)
	}

	select {
	case <-ctx.Done():
		that.forget(id)
		return fmt.Errorf("no acknowledgment for %s: %w", event, ctx.Err())
	case result := <-resultCh:
		if result.err != nil {
			return fmt.Errorf("%s: %w", event, result.err)
		}

		if ack == nil || len(result.payload) == 0 {
			return nil
		}

		if err = json.Unmarshal(result.payload, ack); err != nil {
			return fmt.Errorf("failed to unmarshal %s acknowledgment: %w", event, err)
		}

		return nil
	}
}

func (that *Client) resolve(id string, result ackResult) {
	that.pendingM.Lock()
	resultCh, ok := that.pending[id]
	delete(that.pending, id)
	that.pendingM.Unlock()

	if !ok {
		that.logger.Debug("acknowledgment without pending request", "id", id)
		return
	}

	resultCh <- result
}

func (that *Client) forget(id string) {
	that.pendingM.Lock()
	delete(that.pending, id)
	that.pendingM.Unlock()
}

func (that *Client) failPending(err error) {
	that.pendingM.Lock()
	pending := that.pending
	that.pending = make(map[string]chan ackResult)
	that.pendingM.Unlock()

	for _, resultCh := range pending {
		resultCh <- ackResult{err: err}
	}

	if len(pending) > 0 {
		that.logger.Warn("failed pending requests", "count", len(pending), "error", err)
	}
}

func (that *Client) dispatch(msg *Message) {
	that.cbM.RLock()
	handlers := make([]PushHandler, 0, len(that.pushes))
	for _, entry := range that.pushes {
		if entry.event == msg.Event {
			handlers = append(handlers, entry.handler)
		}
	}
	that.cbM.RUnlock()

	if len(handlers) == 0 {
		that.logger.Debug("no handler for event", "event", msg.Event)
		return
	}

	for _, handler := range handlers {
		handler(msg.Payload)
	}
}

// On registers a handler for a pushed event and returns its id for Off.
func (that *Client) On(event string, handler PushHandler) int {
	that.cbM.Lock()
	defer that.cbM.Unlock()

	that.nextID++
	that.pushes = append(that.pushes, pushEntry{id: that.nextID, event: event, handler: handler})

	return that.nextID
}

func (that *Client) Off(id int) {
	that.cbM.Lock()
	defer that.cbM.Unlock()

	for i, entry := range that.pushes {
		if entry.id == id {
			that.pushes = append(that.pushes[:i], that.pushes[i+1:]...)
			return
		}
	}
}

func (that *Client) OnStateChange(callback StateCallback) int {
	that.cbM.Lock()
	defer that.cbM.Unlock()

	that.nextID++
	that.stateCbs = append(that.stateCbs, stateEntry{id: that.nextID, callback: callback})

	return that.nextID
}

func (that *Client) RemoveStateCallback(id int) {
	that.cbM.Lock()
	defer that.cbM.Unlock()

	for i, entry := range that.stateCbs {
		if entry.id == id {
			that.stateCbs = append(that.stateCbs[:i], that.stateCbs[i+1:]...)
			return
		}
	}
}

func (that *Client) State() State {
	that.stateM.RLock()
	defer that.stateM.RUnlock()

	return that.state
}

func (that *Client) Connected() bool {
	return that.State() == StateConnected
}

func (that *Client) setState(state State) {
	that.stateM.Lock()
	changed := that.state != state
	that.state = state
	that.stateM.Unlock()

	if !changed {
		return
	}

	that.cbM.RLock()
	callbacks := make([]stateEntry, len(that.stateCbs))
	copy(callbacks, that.stateCbs)
	that.cbM.RUnlock()

	for _, entry := range callbacks {
		entry.callback(state)
	}
}

func (that *Client) currentConn() *nws.Conn {
	that.stateM.RLock()
	defer that.stateM.RUnlock()

	return that.conn
}

// Close stops reconnecting, closes the connection and waits for the
// background goroutines.
func (that *Client) Close(ctx context.Context) error {
	that.stopOnce.Do(func() { close(that.stopCh) })

	that.stateM.Lock()
	conn := that.conn
	that.conn = nil
	that.stateM.Unlock()

	if conn != nil {
		_ = conn.Close(nws.StatusNormalClosure, "close")
	}

	that.failPending(apperror.ErrTransportLost)
	that.rootCancel()

	done := make(chan struct{})
	go func() {
		that.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		that.setState(StateDisconnected)
		return nil
	}
}

func (that *Client) isStopping() bool {
	select {
	case <-that.stopCh:
		return true
	default:
		return false
	}
}
