package ui

import (
	"strings"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
)

const boardSide = 3

type cursor struct {
	x, y int
}

// move handles the arrow and hjkl keys. It reports whether key was one of them.
func (that *cursor) move(key string) bool {
	switch key {
	case "up", "k":
		if that.y > 0 {
			that.y--
		}
	case "down", "j":
		if that.y < boardSide-1 {
			that.y++
		}
	case "left", "h":
		if that.x > 0 {
			that.x--
		}
	case "right", "l":
		if that.x < boardSide-1 {
			that.x++
		}
	default:
		return false
	}

	return true
}

func (that *cursor) index() int {
	return that.y*boardSide + that.x
}

func (that *cursor) jump(index int) {
	that.x, that.y = index%boardSide, index/boardSide
}

// cellFromKey maps the digits 1-9 to cells in reading order.
func cellFromKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}

	return int(key[0] - '1'), true
}

func styledMark(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return xStyle.Render(string(mark))
	case entity.MarkO:
		return oStyle.Render(string(mark))
	default:
		return string(mark)
	}
}

// renderBoard draws the grid. Once the game is decided the winning line is
// highlighted and every other mark is dimmed.
func renderBoard(board entity.Board, result entity.Result, cur cursor, showCursor bool) string {
	var sb strings.Builder

	for y := 0; y < boardSide; y++ {
		sb.WriteString("\t")
		for x := 0; x < boardSide; x++ {
			index := y*boardSide + x
			selected := showCursor && !result.IsDecided() && cur.x == x && cur.y == y
			sb.WriteString(renderCell(board[index], result, index, selected))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderCell(mark entity.Mark, result entity.Result, index int, selected bool) string {
	content := " "
	if mark.IsValid() {
		content = string(mark)
	}
	fullCell := "[" + content + "]"

	switch {
	case result.HasCell(index):
		return winStyle.Render(fullCell)
	case result.IsDecided():
		return dimStyle.Render(fullCell)
	case selected:
		switch mark {
		case entity.MarkX:
			return cursorStyle.Foreground(xStyle.GetForeground()).Render(fullCell)
		case entity.MarkO:
			return cursorStyle.Foreground(oStyle.GetForeground()).Render(fullCell)
		default:
			return cursorStyle.Render(fullCell)
		}
	case mark == entity.MarkX:
		return xStyle.Render(fullCell)
	case mark == entity.MarkO:
		return oStyle.Render(fullCell)
	default:
		return cellStyle.Render(fullCell)
	}
}

// outcomeText is the headline for a decided game.
func outcomeText(result entity.Result) string {
	switch {
	case result.Outcome.IsWin():
		return winStyle.Render(string(result.Outcome.Winner()) + " wins!")
	case result.Outcome == entity.OutcomeDraw:
		return headerStyle.Render("Draw!")
	default:
		return ""
	}
}
