// Package ui is the terminal front end. The three screens follow the
// routes "/", "/local" and "/online".
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictaptoe-client/internal/game"
)

const (
	RouteMenu   = "/"
	RouteLocal  = "/local"
	RouteOnline = "/online"
)

type routeMsg string

func navigate(route string) tea.Cmd {
	return func() tea.Msg {
		return routeMsg(route)
	}
}

type Options struct {
	StartRoute string
	Session    *game.Session
	Mirror     Mirror
	AckTimeout time.Duration
}

type App struct {
	route  string
	menu   menuModel
	local  localModel
	online onlineModel
}

func New(opts Options) App {
	return App{
		route:  normalizeRoute(opts.StartRoute),
		local:  localModel{session: opts.Session},
		online: newOnlineModel(opts.Mirror, opts.AckTimeout),
	}
}

func normalizeRoute(route string) string {
	switch route {
	case RouteLocal, RouteOnline:
		return route
	default:
		return RouteMenu
	}
}

func (m App) Route() string {
	return m.route
}

func (m App) Init() tea.Cmd {
	// the mirror is followed from the start so the online screen is current
	return m.online.waitForUpdate()
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case routeMsg:
		route := normalizeRoute(string(msg))
		// every visit to the local screen starts a fresh game
		if route == RouteLocal && m.route != RouteLocal {
			m.local.session.Reset()
			m.local.cursor = cursor{}
		}
		m.route = route
	case mirrorUpdatedMsg, intentDoneMsg, toastExpiredMsg:
		m.online, cmd = m.online.Update(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.route {
		case RouteLocal:
			m.local, cmd = m.local.Update(msg)
		case RouteOnline:
			m.online, cmd = m.online.Update(msg)
		default:
			m.menu, cmd = m.menu.Update(msg)
		}
	}

	return m, cmd
}

func (m App) View() string {
	switch m.route {
	case RouteLocal:
		return m.local.View()
	case RouteOnline:
		return m.online.View()
	default:
		return m.menu.View()
	}
}
