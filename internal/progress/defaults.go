package progress

// Default cosmetic values for a brand-new learner.
const (
	DefaultBackground = "default"
	DefaultSkinColor  = "#FFDFC4"
	DefaultHairStyle  = "bob"
	DefaultHairColor  = "#8D5524"
	DefaultOutfit     = "tshirt"
)

// MasteryThreshold is the correct-answer count at which a
// multiplication table becomes permanently mastered.
const MasteryThreshold = 20

// AnswersPerLevel is the number of correct answers per skill level.
const AnswersPerLevel = 20

func defaultSkill() SkillProgress {
	return SkillProgress{Level: 1}
}

// Defaults returns the snapshot for a learner with no stored progress.
func Defaults() Snapshot {
	return Snapshot{
		Skills: Skills{
			Addition:    defaultSkill(),
			Subtraction: defaultSkill(),
			Multiplication: MultiplicationProgress{
				SkillProgress: defaultSkill(),
				Tables:        make(map[int]TableProgress),
			},
			Division: defaultSkill(),
		},
		Room: Room{
			OwnedItems:  []string{},
			PlacedItems: []PlacedItem{},
			Background:  DefaultBackground,
		},
		Avatar: Avatar{
			SkinColor: DefaultSkinColor,
			HairStyle: DefaultHairStyle,
			HairColor: DefaultHairColor,
			Outfit:    DefaultOutfit,
		},
		Achievements: []string{},
	}
}

// levelFor derives the level from a correct-answer count.
func levelFor(correctAnswers int) int {
	level := 1 + correctAnswers/AnswersPerLevel
	if level < 1 {
		return 1
	}
	return level
}
