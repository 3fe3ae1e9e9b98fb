package remote

import "github.com/rocketscienceinc/tictaptoe-client/internal/entity"

// Requests.
const (
	EventCreateRoom = "createRoom"
	EventJoinRoom   = "joinRoom"
	EventMakeMove   = "makeMove"
	EventResetGame  = "resetGame"
	EventLeaveRoom  = "leaveRoom"
)

// Pushes.
const (
	EventConnect            = "connect"
	EventRoomList           = "roomList"
	EventGameStarted        = "gameStarted"
	EventGameMove           = "gameMove"
	EventPlayerJoined       = "playerJoined"
	EventPlayerLeft         = "playerLeft"
	EventPlayerDisconnected = "playerDisconnected"
)

type createRoomRequest struct {
	Name      string `json:"name,omitempty"`
	IsPrivate bool   `json:"isPrivate"`
}

type moveRequest struct {
	RoomID       string      `json:"roomId"`
	Position     int         `json:"position"`
	PlayerSymbol entity.Mark `json:"playerSymbol"`
}

type ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type roomAck struct {
	ack

	RoomID       string       `json:"roomId"`
	RoomData     *entity.Room `json:"roomData"`
	PlayerSymbol entity.Mark  `json:"playerSymbol"`
}

type connectPush struct {
	ID string `json:"id"`
}

// gameUpdate is the payload shared by the in-room pushes.
type gameUpdate struct {
	GameState     *entity.GameState `json:"gameState"`
	PlayerX       string            `json:"playerX"`
	PlayerO       string            `json:"playerO"`
	CurrentPlayer string            `json:"currentPlayer"`
	OpponentID    string            `json:"opponentId"`
	Message       string            `json:"message"`
}
