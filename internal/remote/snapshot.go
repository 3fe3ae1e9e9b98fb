package remote

import (
	"time"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
)

type Phase string

const (
	PhaseDisconnected Phase = "disconnected"
	PhaseConnected    Phase = "connected"
	PhaseLobby        Phase = "lobby"
	PhaseWaiting      Phase = "waiting"
	PhasePlaying      Phase = "playing"
	PhaseFinished     Phase = "finished"
)

func (that Phase) InRoom() bool {
	return that == PhaseWaiting || that == PhasePlaying || that == PhaseFinished
}

type Notice struct {
	At   time.Time
	Text string
}

// Snapshot is a copy of the mirror state for rendering.
type Snapshot struct {
	Phase         Phase
	SelfID        string
	Rooms         []entity.RoomSummary
	Room          *entity.Room
	Symbol        entity.Mark
	Board         entity.Board
	CurrentPlayer string
	Opponent      string
	Result        entity.Result
	Notices       []Notice
}

func (that *Snapshot) Connected() bool {
	return that.Phase != PhaseDisconnected
}

// IsMyTurn compares the mirrored current player with the own identity.
func (that *Snapshot) IsMyTurn() bool {
	return that.Phase == PhasePlaying &&
		that.SelfID != "" &&
		that.CurrentPlayer == that.SelfID
}

// Players counts the occupied seats of the current room.
func (that *Snapshot) Players() int {
	switch {
	case that.Room == nil:
		return 0
	case that.Opponent != "":
		return entity.MaxMembers
	default:
		return 1
	}
}

// RoomByID looks the room up in the lobby listing.
func (that *Snapshot) RoomByID(roomID string) (entity.RoomSummary, bool) {
	for _, room := range that.Rooms {
		if room.ID == roomID {
			return room, true
		}
	}

	return entity.RoomSummary{}, false
}

func copyRoom(room *entity.Room) *entity.Room {
	if room == nil {
		return nil
	}

	clone := *room
	clone.Members = append([]string(nil), room.Members...)

	if room.GameState != nil {
		state := *room.GameState
		clone.GameState = &state
	}

	return &clone
}
