package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidMove  = errors.New("move is not allowed")
	ErrNoOpponent   = errors.New("waiting for an opponent")
	ErrNotInRoom    = errors.New("not in a room")
	ErrRoomFull     = errors.New("room is full")

	ErrNotConnected  = errors.New("not connected to server")
	ErrTransportLost = errors.New("connection to server lost")
	ErrRejected      = errors.New("request rejected by server")
)

// RejectedError carries the reason from a negative server acknowledgment.
type RejectedError struct {
	Event   string
	Message string
}

func (that *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", that.Event, that.Message)
}

func (that *RejectedError) Unwrap() error {
	return ErrRejected
}

// Reason returns the human-readable part of err suitable for a notice.
func Reason(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message
	}

	return err.Error()
}
