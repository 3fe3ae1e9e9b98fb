package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
)

func TestCursor(t *testing.T) {
	t.Run("Stays on the board", func(t *testing.T) {
		var cur cursor

		assert.True(t, cur.move("up"))
		assert.True(t, cur.move("h"))
		assert.Equal(t, 0, cur.index())

		for range 5 {
			cur.move("right")
			cur.move("j")
		}
		assert.Equal(t, 8, cur.index())
	})

	t.Run("Ignores other keys", func(t *testing.T) {
		var cur cursor

		assert.False(t, cur.move("x"))
	})

	t.Run("Jumps to a cell", func(t *testing.T) {
		var cur cursor

		cur.jump(5)

		assert.Equal(t, cursor{x: 2, y: 1}, cur)
		assert.Equal(t, 5, cur.index())
	})
}

func TestCellFromKey(t *testing.T) {
	cell, ok := cellFromKey("1")
	assert.True(t, ok)
	assert.Equal(t, 0, cell)

	cell, ok = cellFromKey("9")
	assert.True(t, ok)
	assert.Equal(t, 8, cell)

	for _, key := range []string{"0", "a", "10", ""} {
		_, ok = cellFromKey(key)
		assert.False(t, ok, key)
	}
}

func TestRenderBoard(t *testing.T) {
	// Given: a board won by X on the top row
	board := entity.Board{entity.MarkX, entity.MarkX, entity.MarkX, entity.MarkO, entity.MarkO}
	result := entity.Result{Outcome: entity.OutcomeXWins, Line: []int{0, 1, 2}}

	// When: it is rendered
	view := renderBoard(board, result, cursor{}, true)

	// Then: every cell is drawn
	assert.Contains(t, view, "[X]")
	assert.Contains(t, view, "[O]")
	assert.Contains(t, view, "[ ]")
	assert.Equal(t, "X wins!", stripped(outcomeText(result)))
	assert.Equal(t, "Draw!", stripped(outcomeText(entity.Result{Outcome: entity.OutcomeDraw})))
	assert.Empty(t, outcomeText(entity.OngoingResult()))
}
