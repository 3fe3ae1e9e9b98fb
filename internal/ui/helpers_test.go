package ui

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictaptoe-client/internal/game"
	"github.com/rocketscienceinc/tictaptoe-client/internal/remote"
)

type fakeMirror struct {
	mu       sync.Mutex
	snapshot remote.Snapshot
	calls    []string
	err      error
	updates  chan struct{}
}

func newFakeMirror(snapshot remote.Snapshot) *fakeMirror {
	return &fakeMirror{snapshot: snapshot, updates: make(chan struct{}, 1)}
}

func (that *fakeMirror) record(call string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.calls = append(that.calls, call)

	return that.err
}

func (that *fakeMirror) CreateRoom(_ context.Context, name string) error {
	return that.record("CreateRoom:" + name)
}

func (that *fakeMirror) JoinRoom(_ context.Context, roomID string) error {
	return that.record("JoinRoom:" + roomID)
}

func (that *fakeMirror) MakeMove(_ context.Context, index int) error {
	return that.record(fmt.Sprintf("MakeMove:%d", index))
}

func (that *fakeMirror) ResetGame(context.Context) error {
	return that.record("ResetGame")
}

func (that *fakeMirror) LeaveRoom(context.Context) error {
	return that.record("LeaveRoom")
}

func (that *fakeMirror) Snapshot() remote.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot
}

func (that *fakeMirror) Updates() <-chan struct{} {
	return that.updates
}

func (that *fakeMirror) set(snapshot remote.Snapshot) {
	that.mu.Lock()
	that.snapshot = snapshot
	that.mu.Unlock()
}

func (that *fakeMirror) recorded() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]string(nil), that.calls...)
}

func newTestApp(route string, mirror Mirror) App {
	return New(Options{
		StartRoute: route,
		Session:    game.NewSession(nil),
		Mirror:     mirror,
		AckTimeout: time.Second,
	})
}

func key(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

// press feeds keys to the app and returns the command of the last one.
func press(t *testing.T, app App, keys ...string) (App, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, name := range keys {
		app, cmd = update(t, app, key(name))
	}

	return app, cmd
}

func update(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()

	next, cmd := app.Update(msg)
	updated, ok := next.(App)
	require.True(t, ok)

	return updated, cmd
}

var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

// stripped drops terminal styling from a rendered view.
func stripped(view string) string {
	return ansiSequence.ReplaceAllString(view, "")
}
