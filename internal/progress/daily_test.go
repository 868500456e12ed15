package progress

import (
	"math/rand/v2"
	"testing"
	"time"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

var noon = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNewDailyChallenge(t *testing.T) {
	dc := NewDailyChallenge(noon, testRand())

	if dc.Date != "2026-03-10" {
		t.Errorf("date = %q", dc.Date)
	}
	if dc.Target != DailyChallengeTarget || dc.Reward != DailyChallengeReward {
		t.Errorf("target/reward = %d/%d", dc.Target, dc.Reward)
	}
	if !dc.Skill.Valid() {
		t.Errorf("invalid skill %q", dc.Skill)
	}
	if dc.Completed || dc.Progress != 0 {
		t.Errorf("fresh challenge already has progress: %+v", dc)
	}
}

func TestActiveDailyChallenge(t *testing.T) {
	stored := DailyChallenge{
		Date:     "2026-03-10",
		Skill:    SkillDivision,
		Progress: 4,
		Target:   DailyChallengeTarget,
		Reward:   DailyChallengeReward,
	}

	s := Defaults()
	s.DailyChallenge = &stored

	got := ActiveDailyChallenge(s, noon, testRand())
	if got != stored {
		t.Errorf("same-day challenge replaced: %+v", got)
	}

	// Next day rolls a fresh one.
	got = ActiveDailyChallenge(s, noon.AddDate(0, 0, 1), testRand())
	if got.Date != "2026-03-11" || got.Progress != 0 {
		t.Errorf("stale challenge kept: %+v", got)
	}
}

func TestAdvanceDailyChallenge(t *testing.T) {
	s := Defaults()
	s.DailyChallenge = &DailyChallenge{
		Date:   "2026-03-10",
		Skill:  SkillAddition,
		Target: DailyChallengeTarget,
		Reward: DailyChallengeReward,
	}

	s = AdvanceDailyChallenge(s, SkillAddition, 4, noon, testRand())
	if s.DailyChallenge.Progress != 4 || s.DailyChallenge.Completed {
		t.Fatalf("after 4: %+v", s.DailyChallenge)
	}
	if s.Coins != 0 {
		t.Fatalf("reward paid early: %d coins", s.Coins)
	}

	// Overshooting caps at the target and pays out once.
	s = AdvanceDailyChallenge(s, SkillAddition, 10, noon, testRand())
	if s.DailyChallenge.Progress != DailyChallengeTarget || !s.DailyChallenge.Completed {
		t.Fatalf("after overshoot: %+v", s.DailyChallenge)
	}
	if s.Coins != DailyChallengeReward || s.Points != DailyChallengeReward {
		t.Fatalf("reward = %d coins %d points", s.Coins, s.Points)
	}

	// A completed challenge is frozen; no double payout.
	s = AdvanceDailyChallenge(s, SkillAddition, 10, noon, testRand())
	if s.Coins != DailyChallengeReward {
		t.Errorf("reward paid twice: %d coins", s.Coins)
	}
}

func TestAdvanceDailyChallengeSkillMismatch(t *testing.T) {
	s := Defaults()
	s.DailyChallenge = &DailyChallenge{
		Date:   "2026-03-10",
		Skill:  SkillSubtraction,
		Target: DailyChallengeTarget,
		Reward: DailyChallengeReward,
	}

	got := AdvanceDailyChallenge(s, SkillMultiplication, 10, noon, testRand())
	if got.DailyChallenge.Progress != 0 {
		t.Errorf("wrong skill advanced the challenge: %+v", got.DailyChallenge)
	}
}

func TestAdvanceDailyChallengeRollsNewDay(t *testing.T) {
	s := Defaults()
	done := DailyChallenge{
		Date:      "2026-03-09",
		Skill:     SkillAddition,
		Progress:  DailyChallengeTarget,
		Target:    DailyChallengeTarget,
		Reward:    DailyChallengeReward,
		Completed: true,
	}
	s.DailyChallenge = &done

	// Yesterday's completed challenge does not block today's.
	rnd := testRand()
	fresh := ActiveDailyChallenge(s, noon, rnd)
	got := AdvanceDailyChallenge(s, fresh.Skill, 2, noon, testRand())
	if got.DailyChallenge.Date != "2026-03-10" || got.DailyChallenge.Progress != 2 {
		t.Errorf("new day challenge = %+v", got.DailyChallenge)
	}
}
