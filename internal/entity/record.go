package entity

import "time"

const (
	ModeLocal  = "local"
	ModeOnline = "online"
)

// Record is one finished game kept in the history.
type Record struct {
	ID         string    `json:"id"`
	Mode       string    `json:"mode"`
	Outcome    Outcome   `json:"outcome"`
	Board      Board     `json:"board"`
	Line       []int     `json:"line"`
	RoomID     string    `json:"room_id,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

type Scoreboard struct {
	XWins int64 `json:"x_wins"`
	OWins int64 `json:"o_wins"`
	Draws int64 `json:"draws"`
}

func (that *Scoreboard) Total() int64 {
	return that.XWins + that.OWins + that.Draws
}
