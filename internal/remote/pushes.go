package remote

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/sound"
	"github.com/rocketscienceinc/tictaptoe-client/internal/tictactoe"
)

// The apply functions run under the mirror lock.

func (that *Mirror) applyConnect(payload json.RawMessage) {
	var body connectPush
	if err := json.Unmarshal(payload, &body); err != nil {
		that.logger.Warn("failed to decode connect", "error", err)
		return
	}

	that.selfID = body.ID
	if !that.phase.InRoom() {
		that.phase = PhaseLobby
	}
	that.addNoticeLocked("Connected to server")
}

func (that *Mirror) applyRoomList(payload json.RawMessage) {
	var rooms []entity.RoomSummary
	if err := json.Unmarshal(payload, &rooms); err != nil {
		that.logger.Warn("failed to decode room list", "error", err)
		return
	}

	that.rooms = rooms
}

func (that *Mirror) applyGameStarted(payload json.RawMessage) {
	update, ok := that.decodeUpdate(EventGameStarted, payload)
	if !ok || update.GameState == nil {
		return
	}

	that.applyGameStateLocked(update.GameState)
	if that.phase == PhaseWaiting {
		that.phase = PhasePlaying
	}
	that.addNoticeLocked("Game started! Player X goes first.")
}

func (that *Mirror) applyGameMove(payload json.RawMessage) {
	update, ok := that.decodeUpdate(EventGameMove, payload)
	if !ok || update.GameState == nil {
		return
	}

	that.applyGameStateLocked(update.GameState)
}

func (that *Mirror) applyPlayerJoined(payload json.RawMessage) {
	update, ok := that.decodeUpdate(EventPlayerJoined, payload)
	if !ok {
		return
	}

	that.addNoticeLocked(messageOr(update.Message, "A player joined the room"))

	if update.GameState != nil {
		that.applyGameStateLocked(update.GameState)
	}

	if update.OpponentID != "" && update.OpponentID != that.selfID {
		that.opponent = update.OpponentID
	}
}

// applyPlayerGone handles both a leaving and a disconnected opponent.
func (that *Mirror) applyPlayerGone(event string) func(payload json.RawMessage) {
	return func(payload json.RawMessage) {
		that.playerGone(event, payload)
	}
}

func (that *Mirror) playerGone(event string, payload json.RawMessage) {
	update, ok := that.decodeUpdate(event, payload)
	if !ok {
		return
	}

	that.addNoticeLocked(messageOr(update.Message, "Your opponent left the room"))

	that.symbol = entity.MarkX
	if update.GameState != nil {
		that.room.GameState = update.GameState
		if symbol := update.GameState.SymbolOf(that.selfID); symbol.IsValid() {
			that.symbol = symbol
		}
	}

	that.board = entity.Board{}
	that.result = entity.OngoingResult()
	that.currentPlayer = ""
	that.opponent = ""
	that.phase = PhaseWaiting
}

func (that *Mirror) decodeUpdate(event string, payload json.RawMessage) (gameUpdate, bool) {
	var update gameUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		that.logger.Warn("failed to decode push", "event", event, "error", err)
		return gameUpdate{}, false
	}

	return update, true
}

// applyRoomLocked enters room as symbol.
func (that *Mirror) applyRoomLocked(room *entity.Room, symbol entity.Mark) {
	that.room = room
	that.symbol = symbol
	that.board = entity.Board{}
	that.result = entity.OngoingResult()
	that.currentPlayer = ""
	that.opponent = ""
	that.phase = PhaseWaiting

	if room.GameState != nil {
		// a game that ended before we entered is not announced
		if room.GameState.IsFinished() {
			that.result = finishedResult(room.GameState)
		}
		that.applyGameStateLocked(room.GameState)
	}

	// without an identity the own membership cannot be told apart
	if that.opponent == "" && that.selfID != "" {
		for _, member := range room.Members {
			if member != that.selfID {
				that.opponent = member
				break
			}
		}
	}
}

// applyGameStateLocked mirrors an authoritative game state. The winning line
// is not sent by the server and is recovered from the board.
func (that *Mirror) applyGameStateLocked(state *entity.GameState) {
	wasDecided := that.result.IsDecided()

	that.room.GameState = state
	that.board = state.Board
	that.currentPlayer = state.CurrentPlayer

	if opponent := state.OpponentOf(that.selfID); opponent != "" {
		that.opponent = opponent
	}

	switch {
	case state.IsFinished():
		that.phase = PhaseFinished
		that.result = finishedResult(state)
	case state.IsPlaying():
		that.phase = PhasePlaying
		that.result = entity.OngoingResult()
	default:
		that.phase = PhaseWaiting
		that.result = entity.OngoingResult()
	}

	if !wasDecided && that.result.IsDecided() {
		that.finishLocked()
	}
}

func (that *Mirror) finishLocked() {
	result := that.result
	snapshot := that.snapshotLocked()

	that.logger.Info("game finished", "room", snapshot.Room.ID, "outcome", result.Outcome)

	that.effects = append(that.effects, func() {
		if result.Outcome.IsWin() {
			that.cues.Play(sound.CueWin)
		} else {
			that.cues.Play(sound.CueDraw)
		}

		if that.onFinish != nil {
			that.onFinish(snapshot)
		}
	})
}

func (that *Mirror) clearRoomLocked() {
	that.room = nil
	that.symbol = entity.EmptyCell
	that.board = entity.Board{}
	that.result = entity.OngoingResult()
	that.currentPlayer = ""
	that.opponent = ""
}

func finishedResult(state *entity.GameState) entity.Result {
	result := tictactoe.Evaluate(state.Board)
	if result.IsDecided() {
		return result
	}

	if state.IsDraw() {
		return entity.Result{Outcome: entity.OutcomeDraw, Line: []int{}}
	}

	// finished by the server without a line on the board
	if symbol := state.SymbolOf(state.Winner); symbol.IsValid() {
		return entity.Result{Outcome: entity.WinOutcome(symbol), Line: []int{}}
	}

	return entity.Result{Outcome: entity.OutcomeDraw, Line: []int{}}
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}

	return message
}
