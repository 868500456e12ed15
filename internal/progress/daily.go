package progress

import (
	"math/rand/v2"
	"time"
)

// Daily challenge parameters.
const (
	DailyChallengeTarget = 10
	DailyChallengeReward = 50
)

// NewDailyChallenge generates today's challenge: a uniformly random
// skill, fixed target, fixed reward.
func NewDailyChallenge(now time.Time, rnd *rand.Rand) DailyChallenge {
	skills := AllSkills()
	return DailyChallenge{
		Date:   DateOf(now),
		Skill:  skills[rnd.IntN(len(skills))],
		Target: DailyChallengeTarget,
		Reward: DailyChallengeReward,
	}
}

// ActiveDailyChallenge returns the stored challenge if it is dated
// today, otherwise a freshly generated one. The fresh challenge is not
// folded into the snapshot here; AdvanceDailyChallenge persists it once
// progress is logged against it.
func ActiveDailyChallenge(s Snapshot, now time.Time, rnd *rand.Rand) DailyChallenge {
	if s.DailyChallenge != nil && s.DailyChallenge.Date == DateOf(now) {
		return *s.DailyChallenge
	}
	return NewDailyChallenge(now, rnd)
}

// AdvanceDailyChallenge credits completed questions against today's
// challenge. No-op when the active challenge is already completed or
// targets a different skill. On the transition to completion the reward
// is added to both coins and points exactly once; a completed challenge
// stays frozen until the date rolls over.
func AdvanceDailyChallenge(s Snapshot, skill SkillKey, questionsCompleted int, now time.Time, rnd *rand.Rand) Snapshot {
	challenge := ActiveDailyChallenge(s, now, rnd)

	if challenge.Completed || challenge.Skill != skill {
		return s
	}

	wasComplete := challenge.Progress >= challenge.Target
	challenge.Progress = min(challenge.Progress+questionsCompleted, challenge.Target)
	challenge.Completed = challenge.Progress >= challenge.Target

	next := s.Clone()
	next.DailyChallenge = &challenge
	if challenge.Completed && !wasComplete {
		next.Coins += challenge.Reward
		next.Points += challenge.Reward
	}
	return next
}
