package ui

import lip "github.com/charmbracelet/lipgloss"

// dracula palette
var (
	winStyle    = lip.NewStyle().Foreground(lip.Color("#50FA7B")).Bold(true)
	xStyle      = lip.NewStyle().Foreground(lip.Color("#8BE9FD"))
	oStyle      = lip.NewStyle().Foreground(lip.Color("#FF79C6"))
	dimStyle    = lip.NewStyle().Foreground(lip.Color("#44475A"))
	headerStyle = lip.NewStyle().Foreground(lip.Color("#F1FA8C")).Bold(true)
	footerStyle = lip.NewStyle().Foreground(lip.Color("#6272A4")).Bold(true)
	cellStyle   = lip.NewStyle().Foreground(lip.Color("#BD93F9"))
	cursorStyle = lip.NewStyle().Background(lip.Color("#44475a")).Foreground(lip.Color("#f8f8f2")).Bold(true)
	errorStyle  = lip.NewStyle().Foreground(lip.Color("#FF5555")).Bold(true)
	waitStyle   = lip.NewStyle().Foreground(lip.Color("#FFB86C")).Bold(true)
	okStyle     = lip.NewStyle().Foreground(lip.Color("#50FA7B"))
	noticeStyle = lip.NewStyle().Foreground(lip.Color("#f8f8f2"))
	toastStyle  = lip.NewStyle().Foreground(lip.Color("#f8f8f2")).Background(lip.Color("#FF5555")).Padding(0, 1)
)

const title = `
  _____ _       _____            _____         
 |_   _(_)__ __|_   _|_ _ _ __  |_   _|__  ___ 
   | | | / _|___|| |/ _' | '_ \   | |/ _ \/ -_)
   |_| |_\__|    |_|\__,_| .__/   |_|\___/\___|
                         |_|                   
`
