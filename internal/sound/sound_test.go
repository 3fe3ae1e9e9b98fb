package sound

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (that *syncBuffer) Write(p []byte) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.Write(p)
}

func (that *syncBuffer) bells() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return strings.Count(that.buf.String(), bell)
}

func TestBell_Play(t *testing.T) {
	tests := []struct {
		name  string
		tap   bool
		cues  []Cue
		rings int
	}{
		{name: "Win rings twice", cues: []Cue{CueWin}, rings: 2},
		{name: "Draw rings once", cues: []Cue{CueDraw}, rings: 1},
		{name: "Tap is silent by default", cues: []Cue{CueTap, CueDraw}, rings: 1},
		{name: "Tap rings when enabled", tap: true, cues: []Cue{CueTap, CueWin}, rings: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a bell writing to a buffer
			out := &syncBuffer{}
			player := NewBell(out, true, tt.tap)

			// When: the cues are played
			for _, cue := range tt.cues {
				player.Play(cue)
			}

			// Then: the bell rings the expected number of times
			assert.Eventually(t, func() bool {
				return out.bells() == tt.rings
			}, time.Second, 5*time.Millisecond)
		})
	}
}

func TestBell_Disabled(t *testing.T) {
	// Given: a disabled bell
	out := &syncBuffer{}
	player := NewBell(out, false, true)

	// When: a win is played
	player.Play(CueWin)

	// Then: nothing is written
	assert.Never(t, func() bool {
		return out.bells() > 0
	}, 50*time.Millisecond, 5*time.Millisecond)
}

func TestBell_Close(t *testing.T) {
	// Given: a bell that has rung once
	out := &syncBuffer{}
	player := NewBell(out, true, false)
	player.Play(CueDraw)
	assert.Eventually(t, func() bool {
		return out.bells() == 1
	}, time.Second, 5*time.Millisecond)

	// When: it is closed and played again
	player.Close()
	player.Close()
	player.Play(CueWin)

	// Then: nothing more is written
	assert.Never(t, func() bool {
		return out.bells() > 1
	}, 50*time.Millisecond, 5*time.Millisecond)
}

func TestMute(t *testing.T) {
	assert.NotPanics(t, func() {
		Mute{}.Play(CueWin)
	})
}
