package sound

import (
	"strings"
	"testing"
)

func TestBellPlaysOnRewardCues(t *testing.T) {
	var buf strings.Builder
	b := NewBell(&buf)

	b.Play(CueCorrect)
	b.Play(CueAchievement)
	b.Play(CueCoin)
	if got := buf.String(); got != "\a\a\a" {
		t.Errorf("wrote %q", got)
	}
}

func TestBellSilentOnIncorrect(t *testing.T) {
	var buf strings.Builder
	b := NewBell(&buf)

	b.Play(CueIncorrect)
	if buf.Len() != 0 {
		t.Errorf("wrote %q on incorrect", buf.String())
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Play(CueCorrect)
	if err := p.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
