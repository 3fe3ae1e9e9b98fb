package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictaptoe-client/internal/game"
)

// localModel is two players sharing the keyboard.
type localModel struct {
	session *game.Session
	cursor  cursor
}

func (m localModel) Update(msg tea.KeyMsg) (localModel, tea.Cmd) {
	key := msg.String()

	if m.cursor.move(key) {
		return m, nil
	}

	if cell, ok := cellFromKey(key); ok {
		m.cursor.jump(cell)
		m.session.ApplyMove(cell)
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		return m, navigate(RouteMenu)
	case "r":
		m.session.Reset()
		m.cursor = cursor{}
	case "enter", " ":
		// taken cells and finished games are ignored by the session
		m.session.ApplyMove(m.cursor.index())
	}

	return m, nil
}

func (m localModel) View() string {
	state := m.session.Snapshot()

	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Local game"))
	sb.WriteString("\n\n")
	sb.WriteString(renderBoard(state.Board, state.Result, m.cursor, true))
	sb.WriteString("\n")

	if state.Result.IsDecided() {
		sb.WriteString(outcomeText(state.Result))
	} else {
		sb.WriteString(footerStyle.Render("Turn: ") + styledMark(state.Turn))
	}

	sb.WriteString("\n")
	sb.WriteString(footerStyle.Render("\n1-9 or enter play • r restart • esc menu • q quit\n"))

	return sb.String()
}
