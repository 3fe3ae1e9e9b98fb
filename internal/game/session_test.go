package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/sound"
)

type mockCuePlayer struct {
	mock.Mock
}

func (that *mockCuePlayer) Play(cue sound.Cue) {
	that.Called(cue)
}

func newTestSession(t *testing.T) (*Session, *mockCuePlayer) {
	t.Helper()

	cues := &mockCuePlayer{}
	cues.On("Play", sound.CueTap).Maybe()

	return NewSession(cues), cues
}

func play(t *testing.T, session *Session, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.True(t, session.ApplyMove(cell), "move %d rejected", cell)
	}
}

func TestNewSession(t *testing.T) {
	// When: create a new session
	session := NewSession(nil)

	// Then: the session should have the canonical initial state
	expected := State{
		Board:  entity.Board{},
		Turn:   entity.MarkX,
		Result: entity.Result{Outcome: entity.OutcomeOngoing, Line: []int{}},
	}

	require.Equal(t, expected, session.Snapshot())
}

func TestSession_ApplyMove(t *testing.T) {
	t.Run("Marks the cell and passes the turn", func(t *testing.T) {
		// Given: a new session
		session, cues := newTestSession(t)

		// When: player X plays the center
		applied := session.ApplyMove(4)

		// Then: the cell is marked and it is O's turn
		require.True(t, applied)
		state := session.Snapshot()
		assert.Equal(t, entity.MarkX, state.Board[4])
		assert.Equal(t, entity.MarkO, state.Turn)
		assert.Equal(t, entity.OutcomeOngoing, state.Result.Outcome)
		cues.AssertCalled(t, "Play", sound.CueTap)
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		// Given: a session where cell 0 is taken by X
		session, _ := newTestSession(t)
		play(t, session, 0)
		before := session.Snapshot()

		// When: player O tries the same cell
		applied := session.ApplyMove(0)

		// Then: nothing changes
		assert.False(t, applied)
		assert.Equal(t, before, session.Snapshot())
	})

	t.Run("Out of range cells are ignored", func(t *testing.T) {
		// Given: a new session
		session, _ := newTestSession(t)

		// When: invalid indices are played
		// Then: they are rejected without changes
		assert.False(t, session.ApplyMove(-1))
		assert.False(t, session.ApplyMove(9))
		assert.Equal(t, entity.Board{}, session.Snapshot().Board)
	})

	t.Run("X wins on the top row", func(t *testing.T) {
		// Given: a session with a win cue expectation
		session, cues := newTestSession(t)
		cues.On("Play", sound.CueWin).Once()

		// When: moves 0,3,1,4,2 alternate X and O
		play(t, session, 0, 3, 1, 4, 2)

		// Then: X wins with the line 0-1-2
		state := session.Snapshot()
		assert.Equal(t, entity.OutcomeXWins, state.Result.Outcome)
		assert.Equal(t, []int{0, 1, 2}, state.Result.Line)
		assert.Equal(t, entity.MarkX, state.Turn)
		cues.AssertNumberOfCalls(t, "Play", 6)
		cues.AssertExpectations(t)
	})

	t.Run("Board is frozen after a decisive move", func(t *testing.T) {
		// Given: a session X has won
		session, cues := newTestSession(t)
		cues.On("Play", sound.CueWin).Once()
		play(t, session, 0, 3, 1, 4, 2)
		before := session.Snapshot()

		// When: further moves are attempted
		for cell := 5; cell < entity.BoardSize; cell++ {
			assert.False(t, session.ApplyMove(cell))
		}

		// Then: the board and the outcome are unchanged and no cue repeats
		assert.Equal(t, before, session.Snapshot())
		cues.AssertNumberOfCalls(t, "Play", 6)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a session with a draw cue expectation
		session, cues := newTestSession(t)
		cues.On("Play", sound.CueDraw).Once()

		// When: the players block each other until the board is full
		play(t, session, 0, 4, 8, 2, 6, 3, 5, 7, 1)

		// Then: the outcome is a draw with no line
		state := session.Snapshot()
		assert.Equal(t, entity.Board{
			entity.MarkX, entity.MarkX, entity.MarkO,
			entity.MarkO, entity.MarkO, entity.MarkX,
			entity.MarkX, entity.MarkO, entity.MarkX,
		}, state.Board)
		assert.Equal(t, entity.OutcomeDraw, state.Result.Outcome)
		assert.Empty(t, state.Result.Line)
		cues.AssertExpectations(t)
	})
}

func TestSession_Reset(t *testing.T) {
	// Given: a finished session
	session, cues := newTestSession(t)
	cues.On("Play", sound.CueWin).Once()
	play(t, session, 0, 3, 1, 4, 2)

	// When: the session is reset
	session.Reset()

	// Then: the session is back to the initial state and playable again
	assert.Equal(t, NewSession(nil).Snapshot(), session.Snapshot())
	assert.True(t, session.ApplyMove(8))
}

func TestSession_Snapshot(t *testing.T) {
	// Given: a finished session
	session, cues := newTestSession(t)
	cues.On("Play", sound.CueWin).Once()
	play(t, session, 0, 3, 1, 4, 2)

	// When: the caller mutates the snapshot
	state := session.Snapshot()
	state.Board[8] = entity.MarkO
	state.Result.Line[0] = 8

	// Then: the session is not affected
	fresh := session.Snapshot()
	assert.Equal(t, entity.EmptyCell, fresh.Board[8])
	assert.Equal(t, []int{0, 1, 2}, fresh.Result.Line)
}

func TestSession_OnFinish(t *testing.T) {
	// Given: a session with a finish hook
	session, cues := newTestSession(t)
	cues.On("Play", sound.CueWin).Once()

	var finished []State
	session.OnFinish(func(state State) {
		finished = append(finished, state)
	})

	// When: X wins and further moves are attempted
	play(t, session, 0, 3, 1, 4, 2)
	session.ApplyMove(8)

	// Then: the hook ran once with the final state
	require.Len(t, finished, 1)
	assert.Equal(t, entity.OutcomeXWins, finished[0].Result.Outcome)
	assert.Equal(t, entity.MarkX, finished[0].Board[2])
}
