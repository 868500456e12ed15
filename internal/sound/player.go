// Package sound provides the optional feedback-sound sink. The
// progress core never depends on it; the session manager calls it when
// one is injected and gets a silent no-op otherwise.
package sound

import (
	"io"
	"os"
)

// Cue names a feedback sound.
type Cue string

const (
	CueCorrect     Cue = "correct"
	CueIncorrect   Cue = "incorrect"
	CueAchievement Cue = "achievement"
	CueCoin        Cue = "coin"
	CueClick       Cue = "click"
)

// Player plays feedback cues. Implementations are created explicitly
// and released with Close; there is no package-level singleton.
type Player interface {
	Play(cue Cue)
	Close() error
}

// Nop is a Player that does nothing. Used when sound is disabled.
type Nop struct{}

func (Nop) Play(Cue)     {}
func (Nop) Close() error { return nil }

// Bell plays every cue as a terminal bell. Crude, but it needs no
// audio stack and works over SSH.
type Bell struct {
	w io.Writer
}

// NewBell creates a Bell writing to w; nil means stdout.
func NewBell(w io.Writer) *Bell {
	if w == nil {
		w = os.Stdout
	}
	return &Bell{w: w}
}

func (b *Bell) Play(cue Cue) {
	// The incorrect cue stays silent: a buzzer on every mistake gets
	// old fast for kids.
	if cue == CueIncorrect {
		return
	}
	_, _ = b.w.Write([]byte("\a"))
}

func (b *Bell) Close() error { return nil }
