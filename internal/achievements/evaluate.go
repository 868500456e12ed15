package achievements

import "github.com/abhisek/mathquest/internal/progress"

// Context is what the evaluator knows about the update that just
// happened: which skill was touched and, for multiplication, which
// table (0 when none).
type Context struct {
	Skill progress.SkillKey
	Table int
}

// mulMasterTables maps the celebrated tables to their achievement ids.
var mulMasterTables = map[int]string{
	2:  MulMaster2,
	5:  MulMaster5,
	10: MulMaster10,
}

// Evaluate returns the achievement ids newly satisfied by the given
// post-mutation snapshot. Ids already present in the snapshot are
// excluded, so re-running against the same snapshot yields nothing:
// unlocking is a derived fact, not a stored transition. The snapshot is
// not modified; merging the result is the caller's job.
func Evaluate(s progress.Snapshot, ctx Context) []string {
	var unlocked []string
	award := func(id string, ok bool) {
		if ok && !s.HasAchievement(id) {
			unlocked = append(unlocked, id)
		}
	}

	award(FirstCorrect, s.Points > 0)
	award(EarlyBird, s.StreakDays >= 3)
	award(Dedicated, s.StreakDays >= 7)
	award(Combo10, s.StreakDays >= 10)
	award(HundredClub, s.Points >= 100)
	award(RichLearner, s.Coins >= 200)
	award(RoomDecorator, len(s.Room.OwnedItems) >= 3)

	maxLevel := 0
	for _, skill := range progress.AllSkills() {
		if lvl := s.Skills.Get(skill).Level; lvl > maxLevel {
			maxLevel = lvl
		}
	}
	award(Level5, maxLevel >= 5)

	if ctx.Skill == progress.SkillMultiplication {
		if id, ok := mulMasterTables[ctx.Table]; ok {
			tp := s.Skills.Multiplication.Tables[ctx.Table]
			award(id, tp.Correct >= progress.MasteryThreshold)
		}
		award(AllTables, allTablesMastered(s))
	}

	return unlocked
}

// PerfectRound checks the session-level perfect-round condition:
// every answer correct in a round of at least 10 questions. Evaluated
// once per logged session regardless of skill.
func PerfectRound(s progress.Snapshot, correct, total int) []string {
	if correct == total && total >= 10 && !s.HasAchievement(PerfectRoundID) {
		return []string{PerfectRoundID}
	}
	return nil
}

func allTablesMastered(s progress.Snapshot) bool {
	for t := 2; t <= 10; t++ {
		if !s.Skills.Multiplication.Tables[t].Mastered {
			return false
		}
	}
	return true
}
