// Package sound plays short audible cues for game events.
package sound

import (
	"io"
	"strings"
	"sync"
)

type Cue string

const (
	CueTap  Cue = "tap"
	CueWin  Cue = "win"
	CueDraw Cue = "draw"
)

const bell = "\a"

type Player interface {
	Play(cue Cue)
}

// Bell rings the terminal bell. Win rings twice, draw once, and tap only
// when tap cues are enabled. Play never blocks the caller.
type Bell struct {
	out     io.Writer
	enabled bool
	tap     bool

	queue     chan Cue
	done      chan struct{}
	once      sync.Once
	closeOnce sync.Once
}

func NewBell(out io.Writer, enabled, tap bool) *Bell {
	return &Bell{
		out:     out,
		enabled: enabled,
		tap:     tap,
		queue:   make(chan Cue, 8),
		done:    make(chan struct{}),
	}
}

func (that *Bell) Play(cue Cue) {
	if !that.enabled {
		return
	}

	that.once.Do(func() {
		go that.loop()
	})

	if that.closed() {
		return
	}

	// fire-and-forget: a full queue drops the cue
	select {
	case that.queue <- cue:
	default:
	}
}

// Close stops the bell. Later cues are dropped.
func (that *Bell) Close() {
	that.closeOnce.Do(func() { close(that.done) })
}

func (that *Bell) closed() bool {
	select {
	case <-that.done:
		return true
	default:
		return false
	}
}

func (that *Bell) loop() {
	for {
		select {
		case <-that.done:
			return
		case cue := <-that.queue:
			if that.closed() {
				return
			}

			if rings := that.rings(cue); rings > 0 {
				_, _ = io.WriteString(that.out, strings.Repeat(bell, rings))
			}
		}
	}
}

func (that *Bell) rings(cue Cue) int {
	switch cue {
	case CueWin:
		return 2
	case CueDraw:
		return 1
	case CueTap:
		if that.tap {
			return 1
		}
	}

	return 0
}

// Mute discards every cue.
type Mute struct{}

func (Mute) Play(Cue) {}
