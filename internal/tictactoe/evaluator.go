package tictactoe

import (
	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
)

// WinCombos lists rows, then columns, then diagonals. The order decides
// which line is reported for boards with more than one aligned triple.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate reports the outcome of a board and, for a win, the first
// satisfied triple.
func Evaluate(board entity.Board) entity.Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a.IsValid() && a == b && b == c {
			return entity.Result{
				Outcome: entity.WinOutcome(a),
				Line:    []int{combo[0], combo[1], combo[2]},
			}
		}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return entity.Result{Outcome: entity.OutcomeDraw, Line: []int{}}
	}

	return entity.OngoingResult()
}

func Toggle(currentMark entity.Mark) entity.Mark {
	if currentMark == entity.MarkX {
		return entity.MarkO
	}
	return entity.MarkX
}
