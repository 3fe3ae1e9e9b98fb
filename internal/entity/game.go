package entity

import (
	"errors"
	"fmt"
)

// Mark is the content of a board cell.
type Mark string

const (
	MarkX     Mark = "X"
	MarkO     Mark = "O"
	EmptyCell Mark = ""
)

const BoardSize = 9

var ErrInvalidCell = errors.New("invalid cell index")

// Board is a 3x3 grid in row-major order.
type Board [BoardSize]Mark

type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeXWins   Outcome = "x_wins"
	OutcomeOWins   Outcome = "o_wins"
	OutcomeDraw    Outcome = "draw"
)

// Result is what the evaluator reports for a board. Line holds the three
// indices of the winning triple and is empty for ongoing and drawn games.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Line    []int   `json:"line"`
}

func OngoingResult() Result {
	return Result{Outcome: OutcomeOngoing, Line: []int{}}
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

func (that *Board) CellAt(index int) (Mark, error) {
	if index < 0 || index >= BoardSize {
		return EmptyCell, fmt.Errorf("%w: cell %d", ErrInvalidCell, index)
	}

	return that[index], nil
}

// WinOutcome maps a winning mark to its outcome.
func WinOutcome(mark Mark) Outcome {
	switch mark {
	case MarkX:
		return OutcomeXWins
	case MarkO:
		return OutcomeOWins
	default:
		return OutcomeOngoing
	}
}

func (that Outcome) IsDecided() bool {
	return that == OutcomeXWins || that == OutcomeOWins || that == OutcomeDraw
}

func (that Outcome) IsWin() bool {
	return that == OutcomeXWins || that == OutcomeOWins
}

// Winner returns the winning mark, or EmptyCell for draws and ongoing games.
func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeXWins:
		return MarkX
	case OutcomeOWins:
		return MarkO
	default:
		return EmptyCell
	}
}

func (that Result) IsDecided() bool {
	return that.Outcome.IsDecided()
}

// HasCell reports whether index is part of the winning line.
func (that Result) HasCell(index int) bool {
	for _, cell := range that.Line {
		if cell == index {
			return true
		}
	}

	return false
}
