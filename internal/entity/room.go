package entity

const (
	StatusWaiting  = "waiting"
	StatusPlaying  = "playing"
	StatusFinished = "finished"

	WinnerDraw = "draw"

	MaxMembers = 2
)

// GameState is the authoritative game snapshot pushed by the server.
// CurrentPlayer, Winner, PlayerX and PlayerO are participant identities.
type GameState struct {
	Board         Board  `json:"board"`
	CurrentPlayer string `json:"currentPlayer"`
	GameStatus    string `json:"gameStatus"`
	Winner        string `json:"winner"`
	PlayerX       string `json:"playerX"`
	PlayerO       string `json:"playerO"`
}

type Room struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Creator    string     `json:"creator"`
	Members    []string   `json:"members"`
	MaxMembers int        `json:"maxMembers"`
	IsPrivate  bool       `json:"isPrivate"`
	CreatedAt  string     `json:"createdAt"`
	GameState  *GameState `json:"gameState,omitempty"`
}

// RoomSummary is one lobby entry.
type RoomSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
	GameStatus  string `json:"gameStatus"`
}

func (that *GameState) IsWaiting() bool {
	return that.GameStatus == StatusWaiting
}

func (that *GameState) IsPlaying() bool {
	return that.GameStatus == StatusPlaying
}

func (that *GameState) IsFinished() bool {
	return that.GameStatus == StatusFinished
}

func (that *GameState) IsDraw() bool {
	return that.Winner == WinnerDraw
}

// SymbolOf returns the seat of the participant, or EmptyCell when not seated.
func (that *GameState) SymbolOf(participantID string) Mark {
	switch {
	case participantID == "":
		return EmptyCell
	case that.PlayerX == participantID:
		return MarkX
	case that.PlayerO == participantID:
		return MarkO
	default:
		return EmptyCell
	}
}

// OpponentOf returns the identity in the other seat.
func (that *GameState) OpponentOf(participantID string) string {
	if participantID == "" {
		return ""
	}

	switch participantID {
	case that.PlayerX:
		return that.PlayerO
	case that.PlayerO:
		return that.PlayerX
	default:
		return ""
	}
}

func (that *RoomSummary) IsFull() bool {
	return that.MemberCount >= MaxMembers
}
