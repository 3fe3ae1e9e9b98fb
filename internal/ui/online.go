package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictaptoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/remote"
)

const (
	toastDuration  = 3 * time.Second
	visibleNotices = 5
	maxRoomName    = 32
)

// Mirror is the online game state the screen renders and sends intents to.
type Mirror interface {
	CreateRoom(ctx context.Context, name string) error
	JoinRoom(ctx context.Context, roomID string) error
	MakeMove(ctx context.Context, index int) error
	ResetGame(ctx context.Context) error
	LeaveRoom(ctx context.Context) error
	Snapshot() remote.Snapshot
	Updates() <-chan struct{}
}

type (
	mirrorUpdatedMsg struct{}

	intentDoneMsg struct {
		event string
		err   error
	}

	toastExpiredMsg struct {
		seq int
	}
)

type onlineModel struct {
	mirror     Mirror
	ackTimeout time.Duration

	snapshot remote.Snapshot
	cursor   cursor
	selected int

	naming bool
	name   []rune

	toast    string
	toastSeq int
}

func newOnlineModel(mirror Mirror, ackTimeout time.Duration) onlineModel {
	return onlineModel{
		mirror:     mirror,
		ackTimeout: ackTimeout,
		snapshot:   mirror.Snapshot(),
	}
}

// waitForUpdate blocks on the mirror until its state changes.
func (m onlineModel) waitForUpdate() tea.Cmd {
	updates := m.mirror.Updates()

	return func() tea.Msg {
		<-updates
		return mirrorUpdatedMsg{}
	}
}

// intent runs fn off the UI loop with the acknowledgment deadline.
func (m onlineModel) intent(event string, fn func(ctx context.Context) error) tea.Cmd {
	timeout := m.ackTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return intentDoneMsg{event: event, err: fn(ctx)}
	}
}

func (m onlineModel) Update(msg tea.Msg) (onlineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case mirrorUpdatedMsg:
		m.refresh()
		return m, m.waitForUpdate()
	case intentDoneMsg:
		m.refresh()
		// refused before reaching the server: nothing to report
		if msg.err == nil || errors.Is(msg.err, apperror.ErrInvalidMove) {
			return m, nil
		}

		m.toastSeq++
		m.toast = apperror.Reason(msg.err)
		seq := m.toastSeq

		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		})
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *onlineModel) refresh() {
	m.snapshot = m.mirror.Snapshot()
	if m.selected >= len(m.snapshot.Rooms) {
		m.selected = max(len(m.snapshot.Rooms)-1, 0)
	}
}

func (m onlineModel) handleKey(msg tea.KeyMsg) (onlineModel, tea.Cmd) {
	if m.naming {
		return m.handleNaming(msg)
	}

	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.snapshot.Phase.InRoom() {
			return m, m.intent(remote.EventLeaveRoom, m.mirror.LeaveRoom)
		}
		return m, navigate(RouteMenu)
	}

	if !m.snapshot.Connected() {
		return m, nil
	}

	if m.snapshot.Phase.InRoom() {
		return m.handleRoomKey(key)
	}

	return m.handleLobbyKey(key)
}

func (m onlineModel) handleNaming(msg tea.KeyMsg) (onlineModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := string(m.name)
		m.naming, m.name = false, nil

		return m, m.intent(remote.EventCreateRoom, func(ctx context.Context) error {
			return m.mirror.CreateRoom(ctx, name)
		})
	case tea.KeyEsc:
		m.naming, m.name = false, nil
	case tea.KeyBackspace:
		if len(m.name) > 0 {
			m.name = m.name[:len(m.name)-1]
		}
	case tea.KeySpace:
		m.appendName(' ')
	case tea.KeyRunes:
		m.appendName(msg.Runes...)
	}

	return m, nil
}

func (m *onlineModel) appendName(runes ...rune) {
	for _, r := range runes {
		if len(m.name) >= maxRoomName {
			return
		}
		m.name = append(m.name, r)
	}
}

func (m onlineModel) handleLobbyKey(key string) (onlineModel, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.snapshot.Rooms)-1 {
			m.selected++
		}
	case "n":
		m.naming = true
	case "enter":
		if len(m.snapshot.Rooms) == 0 {
			return m, nil
		}

		roomID := m.snapshot.Rooms[m.selected].ID

		return m, m.intent(remote.EventJoinRoom, func(ctx context.Context) error {
			return m.mirror.JoinRoom(ctx, roomID)
		})
	}

	return m, nil
}

func (m onlineModel) handleRoomKey(key string) (onlineModel, tea.Cmd) {
	if m.cursor.move(key) {
		return m, nil
	}

	if cell, ok := cellFromKey(key); ok {
		m.cursor.jump(cell)
		return m, m.move(cell)
	}

	switch key {
	case "enter", " ":
		return m, m.move(m.cursor.index())
	case "r":
		return m, m.intent(remote.EventResetGame, m.mirror.ResetGame)
	}

	return m, nil
}

func (m onlineModel) move(cell int) tea.Cmd {
	return m.intent(remote.EventMakeMove, func(ctx context.Context) error {
		return m.mirror.MakeMove(ctx, cell)
	})
}

func (m onlineModel) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Online game") + "  " + m.badge())
	sb.WriteString("\n\n")

	if m.snapshot.Phase.InRoom() {
		m.viewRoom(&sb)
	} else {
		m.viewLobby(&sb)
	}

	m.viewNotices(&sb)

	if m.toast != "" {
		sb.WriteString("\n" + toastStyle.Render(m.toast) + "\n")
	}

	if !m.snapshot.Connected() {
		sb.WriteString("\n" + errorStyle.Render("Reconnecting... input is disabled") + "\n")
	}

	return sb.String()
}

func (m onlineModel) badge() string {
	if m.snapshot.Connected() {
		return okStyle.Render("● connected")
	}

	return errorStyle.Render("○ disconnected")
}

func (m onlineModel) viewLobby(sb *strings.Builder) {
	sb.WriteString(headerStyle.Render("Rooms") + "\n")

	if len(m.snapshot.Rooms) == 0 {
		sb.WriteString(footerStyle.Render("  No rooms available. Create one!") + "\n")
	}

	for i, room := range m.snapshot.Rooms {
		name := room.Name
		if name == "" {
			name = room.ID
		}

		line := fmt.Sprintf("%-24s %d/%d", name, room.MemberCount, entity.MaxMembers)
		if room.IsFull() {
			line += " Full"
		}

		switch {
		case i == m.selected:
			sb.WriteString(cursorStyle.Render("> "+line) + "\n")
		case room.IsFull():
			sb.WriteString(dimStyle.Render("  "+line) + "\n")
		default:
			sb.WriteString("  " + line + "\n")
		}
	}

	if m.naming {
		sb.WriteString("\nRoom name: " + string(m.name) + "_\n")
		sb.WriteString(footerStyle.Render("enter create • esc cancel") + "\n")
		return
	}

	sb.WriteString(footerStyle.Render("\nn new room • enter join • esc menu • q quit") + "\n")
}

func (m onlineModel) viewRoom(sb *strings.Builder) {
	snapshot := m.snapshot

	roomID := ""
	if snapshot.Room != nil {
		roomID = snapshot.Room.ID
	}

	sb.WriteString(fmt.Sprintf("You are Player: %s   Room ID: %s   Players: %d/%d\n",
		styledMark(snapshot.Symbol), roomID, snapshot.Players(), entity.MaxMembers))
	sb.WriteString(m.status() + "\n\n")
	sb.WriteString(renderBoard(snapshot.Board, snapshot.Result, m.cursor, snapshot.IsMyTurn()))
	sb.WriteString(footerStyle.Render("\n1-9 or enter play • r reset • esc leave • q quit") + "\n")
}

func (m onlineModel) status() string {
	snapshot := m.snapshot

	switch snapshot.Phase {
	case remote.PhaseWaiting:
		return waitStyle.Render("Waiting for an opponent to join...")
	case remote.PhasePlaying:
		if snapshot.IsMyTurn() {
			return winStyle.Render("Game in progress! Your turn!")
		}
		return footerStyle.Render("Game in progress! Opponent's turn.")
	case remote.PhaseFinished:
		text := outcomeText(snapshot.Result)
		switch winner := snapshot.Result.Outcome.Winner(); {
		case winner.IsEmpty():
		case winner == snapshot.Symbol:
			text += " " + winStyle.Render("You won!")
		default:
			text += " " + footerStyle.Render("You lost.")
		}
		return text
	default:
		return ""
	}
}

func (m onlineModel) viewNotices(sb *strings.Builder) {
	notices := m.snapshot.Notices
	if len(notices) > visibleNotices {
		notices = notices[len(notices)-visibleNotices:]
	}

	if len(notices) == 0 {
		return
	}

	sb.WriteString("\n")
	for _, notice := range notices {
		sb.WriteString(footerStyle.Render(notice.At.Format(time.TimeOnly)) + " " + noticeStyle.Render(notice.Text) + "\n")
	}
}
