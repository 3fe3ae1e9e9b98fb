package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	route string
}

var menuItems = []menuItem{
	{label: "Play on this device", route: RouteLocal},
	{label: "Play online", route: RouteOnline},
}

type menuModel struct {
	cursor int
}

func (m menuModel) Update(msg tea.KeyMsg) (menuModel, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "1", "2":
		m.cursor = int(msg.String()[0] - '1')
		return m, navigate(menuItems[m.cursor].route)
	case "enter", " ":
		return m, navigate(menuItems[m.cursor].route)
	}

	return m, nil
}

func (m menuModel) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.label
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.label)
		}
		sb.WriteString("\t" + line + "\n")
	}

	sb.WriteString(footerStyle.Render("\nenter select • q quit\n"))

	return sb.String()
}
