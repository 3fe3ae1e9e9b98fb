package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictaptoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/sound"
)

// CreateRoom asks the server for a new public room and enters it as X.
func (that *Mirror) CreateRoom(ctx context.Context, name string) error {
	log := that.logger.With("method", "CreateRoom")

	if err := that.checkLobby(); err != nil {
		return err
	}

	that.beginEntering()

	var response roomAck
	request := createRoomRequest{Name: strings.TrimSpace(name), IsPrivate: false}
	if err := that.emit(ctx, EventCreateRoom, request, &response, &response.ack); err != nil {
		log.Warn("failed to create room", "error", err)
		that.abortEntering("Failed to create room: " + messageOr(apperror.Reason(err), "unknown error"))
		return err
	}

	if response.RoomData == nil {
		err := &apperror.RejectedError{Event: EventCreateRoom, Message: "missing room data"}
		that.abortEntering("Failed to create room: " + err.Message)
		return err
	}

	symbol := response.PlayerSymbol
	if !symbol.IsValid() {
		symbol = entity.MarkX
	}

	that.mutate(func() {
		that.entering = false
		that.applyRoomLocked(response.RoomData, symbol)
		that.addNoticeLocked(fmt.Sprintf("Room %q created successfully!", response.RoomData.Name))
		that.replayDeferredLocked()
	})

	log.Info("room created", "room", response.RoomData.ID)

	return nil
}

// JoinRoom enters an existing room. Rooms known to be full are refused
// without asking the server.
func (that *Mirror) JoinRoom(ctx context.Context, roomID string) error {
	log := that.logger.With("method", "JoinRoom")

	if err := that.checkLobby(); err != nil {
		return err
	}

	snapshot := that.Snapshot()
	if summary, ok := snapshot.RoomByID(roomID); ok && summary.IsFull() {
		return fmt.Errorf("%w: %s", apperror.ErrRoomFull, roomID)
	}

	that.beginEntering()
	that.mutate(func() {
		that.addNoticeLocked("Joining room...")
	})

	var response roomAck
	if err := that.emit(ctx, EventJoinRoom, roomID, &response, &response.ack); err != nil {
		log.Warn("failed to join room", "room", roomID, "error", err)
		that.abortEntering("Failed to join: " + messageOr(apperror.Reason(err), "unknown error"))
		return err
	}

	if response.RoomData == nil {
		err := &apperror.RejectedError{Event: EventJoinRoom, Message: "missing room data"}
		that.abortEntering("Failed to join: " + err.Message)
		return err
	}

	that.mutate(func() {
		that.entering = false
		that.applyRoomLocked(response.RoomData, response.PlayerSymbol)

		status := "Game ready!"
		if len(response.RoomData.Members) <= 1 {
			status = "Waiting for opponent..."
		}
		that.addNoticeLocked(fmt.Sprintf("Joined as Player %s. %s", response.PlayerSymbol, status))
		that.replayDeferredLocked()
	})

	log.Info("room joined", "room", roomID, "symbol", response.PlayerSymbol)

	return nil
}

// MakeMove sends a move. Moves that cannot be legal are refused locally
// without a notice. The board changes only when the server pushes the move.
func (that *Mirror) MakeMove(ctx context.Context, index int) error {
	request, err := that.checkMove(index)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	that.cues.Play(sound.CueTap)

	var response ack
	if err = that.emit(ctx, EventMakeMove, request, &response, &response); err != nil {
		that.mutate(func() {
			that.addNoticeLocked(messageOr(apperror.Reason(err), "Invalid move"))
		})
		return err
	}

	return nil
}

func (that *Mirror) checkMove(index int) (moveRequest, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch {
	case that.phase == PhaseDisconnected:
		return moveRequest{}, apperror.ErrNotConnected
	case that.room == nil:
		return moveRequest{}, apperror.ErrNotInRoom
	case that.result.IsDecided():
		return moveRequest{}, apperror.ErrGameFinished
	case that.phase != PhasePlaying || that.opponent == "":
		return moveRequest{}, apperror.ErrNoOpponent
	case that.selfID == "" || that.currentPlayer != that.selfID:
		return moveRequest{}, apperror.ErrNotYourTurn
	}

	mark, err := that.board.CellAt(index)
	if err != nil {
		return moveRequest{}, err
	}

	if !mark.IsEmpty() {
		return moveRequest{}, apperror.ErrCellOccupied
	}

	return moveRequest{RoomID: that.room.ID, Position: index, PlayerSymbol: that.symbol}, nil
}

// ResetGame asks the server to clear the board of the current room.
func (that *Mirror) ResetGame(ctx context.Context) error {
	roomID, err := that.checkRoom()
	if err != nil {
		return err
	}

	var response ack
	if err = that.emit(ctx, EventResetGame, roomID, &response, &response); err != nil {
		that.mutate(func() {
			that.addNoticeLocked(messageOr(apperror.Reason(err), "Failed to reset game"))
		})
		return err
	}

	that.mutate(func() {
		if that.room == nil || that.room.ID != roomID {
			return
		}

		that.board = entity.Board{}
		that.result = entity.OngoingResult()
		that.currentPlayer = ""
		that.phase = PhaseWaiting
		status := entity.StatusWaiting

		if that.opponent != "" {
			that.phase = PhasePlaying
			status = entity.StatusPlaying
			// X opens every game
			if that.room.GameState != nil {
				that.currentPlayer = that.room.GameState.PlayerX
			}
		}

		if that.room.GameState != nil {
			that.room.GameState.Board = entity.Board{}
			that.room.GameState.CurrentPlayer = that.currentPlayer
			that.room.GameState.Winner = ""
			that.room.GameState.GameStatus = status
		}

		that.addNoticeLocked("Game reset!")
	})

	return nil
}

// LeaveRoom returns to the lobby. A rejected leave keeps the room.
func (that *Mirror) LeaveRoom(ctx context.Context) error {
	log := that.logger.With("method", "LeaveRoom")

	roomID, err := that.checkRoom()
	if err != nil {
		return err
	}

	var response ack
	if err = that.emit(ctx, EventLeaveRoom, roomID, &response, &response); err != nil {
		log.Warn("failed to leave room", "room", roomID, "error", err)
		that.mutate(func() {
			that.addNoticeLocked(messageOr(apperror.Reason(err), "Failed to leave room"))
		})
		return err
	}

	that.dropRoomScope()
	that.mutate(func() {
		that.clearRoomLocked()
		if that.phase != PhaseDisconnected {
			that.phase = PhaseLobby
		}
		that.addNoticeLocked("Left the game")
	})

	log.Info("room left", "room", roomID)

	return nil
}

func (that *Mirror) checkLobby() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch {
	case that.phase == PhaseDisconnected:
		return apperror.ErrNotConnected
	case that.room != nil || that.entering:
		return fmt.Errorf("%w: already in a room", apperror.ErrInvalidMove)
	}

	return nil
}

func (that *Mirror) checkRoom() (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch {
	case that.phase == PhaseDisconnected:
		return "", apperror.ErrNotConnected
	case that.room == nil:
		return "", apperror.ErrNotInRoom
	}

	return that.room.ID, nil
}

func (that *Mirror) beginEntering() {
	that.enterRoomScope()
	that.mutate(func() {
		that.entering = true
		that.deferred = nil
	})
}

func (that *Mirror) abortEntering(notice string) {
	that.dropRoomScope()
	that.mutate(func() {
		that.entering = false
		that.deferred = nil
		that.addNoticeLocked(notice)
	})
}

// emit sends an intent and turns a negative acknowledgment into a
// RejectedError. status points at the ack part of response.
func (that *Mirror) emit(ctx context.Context, event string, payload, response any, status *ack) error {
	that.metrics.IntentSent(event)

	if err := that.transport.Emit(ctx, event, payload, response); err != nil {
		return err
	}

	if !status.Success {
		that.metrics.IntentRejected(event)
		that.logger.Warn("intent rejected", "event", event, "message", status.Message)

		return &apperror.RejectedError{Event: event, Message: status.Message}
	}

	return nil
}
