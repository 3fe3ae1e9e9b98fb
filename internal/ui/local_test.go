package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/remote"
)

func newLocalApp() App {
	return newTestApp(RouteLocal, newFakeMirror(remote.Snapshot{Phase: remote.PhaseDisconnected}))
}

func TestLocal_PlayWithDigits(t *testing.T) {
	// Given: a fresh local game
	app := newLocalApp()
	assert.Contains(t, stripped(app.View()), "Turn: X")

	// When: X takes the top row
	app, _ = press(t, app, "1", "4", "2", "5", "3")

	// Then: X wins and the board stops accepting moves
	view := stripped(app.View())
	assert.Contains(t, view, "X wins!")
	assert.NotContains(t, view, "Turn:")

	app, _ = press(t, app, "9")
	state := app.local.session.Snapshot()
	assert.Equal(t, entity.EmptyCell, state.Board[8])
	assert.Equal(t, []int{0, 1, 2}, state.Result.Line)
}

func TestLocal_PlayAtCursor(t *testing.T) {
	// Given: a fresh local game
	app := newLocalApp()

	// When: X plays the center and O tries the same cell
	app, _ = press(t, app, "down", "right", "enter", " ")

	// Then: only X's move counts and it is O's turn
	state := app.local.session.Snapshot()
	assert.Equal(t, entity.MarkX, state.Board[4])
	assert.Equal(t, entity.MarkO, state.Turn)
	assert.Contains(t, stripped(app.View()), "Turn: O")
}

func TestLocal_Draw(t *testing.T) {
	app := newLocalApp()

	app, _ = press(t, app, "1", "5", "9", "3", "7", "4", "6", "8", "2")

	assert.Contains(t, stripped(app.View()), "Draw!")
}

func TestLocal_Restart(t *testing.T) {
	// Given: a finished game
	app := newLocalApp()
	app, _ = press(t, app, "1", "4", "2", "5", "3")

	// When: r is pressed
	app, _ = press(t, app, "r")

	// Then: the board is cleared and X opens
	state := app.local.session.Snapshot()
	assert.Equal(t, entity.Board{}, state.Board)
	assert.Equal(t, entity.MarkX, state.Turn)
	assert.Equal(t, cursor{}, app.local.cursor)
}
