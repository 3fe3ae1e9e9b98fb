// Package game holds the same-device session where two players alternate
// turns on one board.
package game

import (
	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/sound"
	"github.com/rocketscienceinc/tictaptoe-client/internal/tictactoe"
)

const startingMark = entity.MarkX

type cuePlayer interface {
	Play(cue sound.Cue)
}

// State is a copy of the session for rendering.
type State struct {
	Board  entity.Board
	Turn   entity.Mark
	Result entity.Result
}

type Session struct {
	board  entity.Board
	turn   entity.Mark
	result entity.Result

	cues     cuePlayer
	onFinish func(state State)
}

func NewSession(cues cuePlayer) *Session {
	if cues == nil {
		cues = sound.Mute{}
	}

	session := &Session{cues: cues}
	session.Reset()

	return session
}

// ApplyMove marks cell for the player to move. It reports false and leaves
// the session untouched when the cell is out of range or taken, or when the
// game is already decided.
func (that *Session) ApplyMove(cell int) bool {
	if that.result.IsDecided() {
		return false
	}

	mark, err := that.board.CellAt(cell)
	if err != nil || !mark.IsEmpty() {
		return false
	}

	that.board[cell] = that.turn
	that.cues.Play(sound.CueTap)

	that.result = tictactoe.Evaluate(that.board)

	switch {
	case that.result.Outcome.IsWin():
		that.cues.Play(sound.CueWin)
	case that.result.Outcome == entity.OutcomeDraw:
		that.cues.Play(sound.CueDraw)
	default:
		that.turn = tictactoe.Toggle(that.turn)
		return true
	}

	if that.onFinish != nil {
		that.onFinish(that.Snapshot())
	}

	return true
}

// OnFinish registers hook to run once for every game that ends.
func (that *Session) OnFinish(hook func(state State)) {
	that.onFinish = hook
}

func (that *Session) Reset() {
	that.board = entity.Board{}
	that.turn = startingMark
	that.result = entity.OngoingResult()
}

func (that *Session) Snapshot() State {
	line := make([]int, len(that.result.Line))
	copy(line, that.result.Line)

	return State{
		Board:  that.board,
		Turn:   that.turn,
		Result: entity.Result{Outcome: that.result.Outcome, Line: line},
	}
}
