package progress

import "time"

// Mutators are pure transforms: each takes a snapshot plus parameters
// and returns a new snapshot, leaving the input untouched. Persistence
// is the session manager's job so that every write goes through a
// single serialized commit path.

// AddPoints awards points and the coupled 1:1 coin reward. Amount is a
// reward and is clamped at zero; coin debits go through SpendCoins.
func AddPoints(s Snapshot, amount int) Snapshot {
	if amount < 0 {
		amount = 0
	}
	next := s.Clone()
	next.Points += amount
	next.Coins += amount
	return next
}

// SpendCoins deducts coins, flooring the balance at zero. Points are
// unaffected. Callers should pre-check affordability for UX; the floor
// prevents a negative balance regardless.
func SpendCoins(s Snapshot, amount int) Snapshot {
	next := s.Clone()
	next.Coins -= amount
	if next.Coins < 0 {
		next.Coins = 0
	}
	return next
}

// UpdateSkillProgress increments a skill's answer counters and
// recomputes its level. For multiplication with table > 0 the table's
// counters are upserted and its mastered flag ratchets on once the
// correct count reaches MasteryThreshold.
//
// Negative deltas are clamped to zero: counters are monotonic.
func UpdateSkillProgress(s Snapshot, skill SkillKey, correctDelta, totalDelta, table int) Snapshot {
	if correctDelta < 0 {
		correctDelta = 0
	}
	if totalDelta < 0 {
		totalDelta = 0
	}

	next := s.Clone()

	bump := func(sp *SkillProgress) {
		sp.CorrectAnswers += correctDelta
		sp.TotalAnswers += totalDelta
		sp.Level = levelFor(sp.CorrectAnswers)
	}

	switch skill {
	case SkillAddition:
		bump(&next.Skills.Addition)
	case SkillSubtraction:
		bump(&next.Skills.Subtraction)
	case SkillMultiplication:
		bump(&next.Skills.Multiplication.SkillProgress)
		if table > 0 {
			if next.Skills.Multiplication.Tables == nil {
				next.Skills.Multiplication.Tables = make(map[int]TableProgress)
			}
			tp := next.Skills.Multiplication.Tables[table]
			tp.Correct += correctDelta
			tp.Total += totalDelta
			tp.Mastered = tp.Mastered || tp.Correct >= MasteryThreshold
			next.Skills.Multiplication.Tables[table] = tp
		}
	case SkillDivision:
		bump(&next.Skills.Division)
	}

	return next
}

// LogPracticeSession records a completed round: streak-day arithmetic
// against today's calendar date, then the skill counter update.
//
// Streak rules: same day leaves the streak unchanged; exactly one
// calendar day later increments it; a longer gap, or no prior practice,
// resets it to 1.
func LogPracticeSession(s Snapshot, res SessionResult, now time.Time) Snapshot {
	today := DateOf(now)

	next := s.Clone()
	if next.LastPracticeDate != today {
		switch gap := DaysBetween(next.LastPracticeDate, today); {
		case next.LastPracticeDate == "":
			next.StreakDays = 1
		case gap == 1:
			next.StreakDays++
		case gap > 1:
			next.StreakDays = 1
		}
		next.LastPracticeDate = today
	}

	return UpdateSkillProgress(next, res.Skill, res.Correct, res.Total, res.Table)
}

// UnlockItem adds an item to the owned set. Idempotent: unlocking an
// owned item returns the snapshot unchanged.
func UnlockItem(s Snapshot, itemID string) Snapshot {
	if s.Room.Owns(itemID) {
		return s
	}
	next := s.Clone()
	next.Room.OwnedItems = append(next.Room.OwnedItems, itemID)
	return next
}

// UpdateRoomLayout replaces the placed-item sequence wholesale.
// Referenced ids are not checked against ownership; the UI only offers
// owned items.
func UpdateRoomLayout(s Snapshot, placed []PlacedItem) Snapshot {
	next := s.Clone()
	next.Room.PlacedItems = append([]PlacedItem{}, placed...)
	return next
}

// UpdateRoomBackground replaces the room background id.
func UpdateRoomBackground(s Snapshot, background string) Snapshot {
	next := s.Clone()
	next.Room.Background = background
	return next
}

// UpdateAvatar merges a partial avatar update over the current record.
func UpdateAvatar(s Snapshot, patch AvatarPatch) Snapshot {
	next := s.Clone()
	if patch.SkinColor != nil {
		next.Avatar.SkinColor = *patch.SkinColor
	}
	if patch.HairStyle != nil {
		next.Avatar.HairStyle = *patch.HairStyle
	}
	if patch.HairColor != nil {
		next.Avatar.HairColor = *patch.HairColor
	}
	if patch.Outfit != nil {
		next.Avatar.Outfit = *patch.Outfit
	}
	if patch.Accessory != nil {
		next.Avatar.Accessory = *patch.Accessory
	}
	if patch.Variant != nil {
		next.Avatar.Variant = *patch.Variant
	}
	return next
}

// DateLayout is the ISO calendar-date layout used for persisted dates.
const DateLayout = "2006-01-02"

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DaysBetween returns the whole calendar days from an earlier stored
// date to a later one. Unparseable or empty dates yield 0.
func DaysBetween(from, to string) int {
	a, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0
	}
	b, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}
