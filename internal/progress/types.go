package progress

// SkillKey identifies one of the four practice skills.
type SkillKey string

const (
	SkillAddition       SkillKey = "addition"
	SkillSubtraction    SkillKey = "subtraction"
	SkillMultiplication SkillKey = "multiplication"
	SkillDivision       SkillKey = "division"
)

// AllSkills returns the skills in display order.
func AllSkills() []SkillKey {
	return []SkillKey{SkillAddition, SkillSubtraction, SkillMultiplication, SkillDivision}
}

// Valid reports whether k names a known skill.
func (k SkillKey) Valid() bool {
	switch k {
	case SkillAddition, SkillSubtraction, SkillMultiplication, SkillDivision:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the skill.
func (k SkillKey) DisplayName() string {
	switch k {
	case SkillAddition:
		return "Addition"
	case SkillSubtraction:
		return "Subtraction"
	case SkillMultiplication:
		return "Multiplication"
	case SkillDivision:
		return "Division"
	default:
		return string(k)
	}
}

// Symbol returns the operator symbol for the skill.
func (k SkillKey) Symbol() string {
	switch k {
	case SkillAddition:
		return "+"
	case SkillSubtraction:
		return "−"
	case SkillMultiplication:
		return "×"
	case SkillDivision:
		return "÷"
	default:
		return "?"
	}
}

// SkillProgress tracks cumulative answer counts for a single skill.
// Level is derived from CorrectAnswers and recomputed on every update;
// it is never set independently.
type SkillProgress struct {
	Level          int `json:"level"`
	CorrectAnswers int `json:"correctAnswers"`
	TotalAnswers   int `json:"totalAnswers"`
}

// Accuracy returns the correct/total ratio, or 0 with no answers.
func (sp SkillProgress) Accuracy() float64 {
	if sp.TotalAnswers == 0 {
		return 0
	}
	return float64(sp.CorrectAnswers) / float64(sp.TotalAnswers)
}

// TableProgress tracks answers for a single multiplication table.
// Mastered is a ratchet: once true it never reverts.
type TableProgress struct {
	Correct  int  `json:"correct"`
	Total    int  `json:"total"`
	Mastered bool `json:"mastered"`
}

// MultiplicationProgress extends SkillProgress with per-table tracking.
type MultiplicationProgress struct {
	SkillProgress
	Tables map[int]TableProgress `json:"tables"`
}

// Skills holds the per-skill progress records.
type Skills struct {
	Addition       SkillProgress          `json:"addition"`
	Subtraction    SkillProgress          `json:"subtraction"`
	Multiplication MultiplicationProgress `json:"multiplication"`
	Division       SkillProgress          `json:"division"`
}

// Get returns the base progress record for a skill.
func (s *Skills) Get(key SkillKey) SkillProgress {
	switch key {
	case SkillAddition:
		return s.Addition
	case SkillSubtraction:
		return s.Subtraction
	case SkillMultiplication:
		return s.Multiplication.SkillProgress
	case SkillDivision:
		return s.Division
	default:
		return SkillProgress{Level: 1}
	}
}

// PlacedItem is an owned item positioned in the room.
// Coordinates are percentages of the room viewport.
type PlacedItem struct {
	ItemID string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Room holds the cosmetic room state.
type Room struct {
	OwnedItems  []string     `json:"ownedItems"`
	PlacedItems []PlacedItem `json:"placedItems"`
	Background  string       `json:"background"`
}

// Owns reports whether the item has been unlocked.
func (r *Room) Owns(itemID string) bool {
	for _, id := range r.OwnedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// Avatar is the cosmetic avatar record. Values are chosen from owned or
// unlockable sets; the core does not enforce ownership.
type Avatar struct {
	SkinColor string `json:"skinColor"`
	HairStyle string `json:"hairStyle"`
	HairColor string `json:"hairColor"`
	Outfit    string `json:"outfit"`
	Accessory string `json:"accessory,omitempty"`
	Variant   string `json:"variant,omitempty"`
}

// AvatarPatch is a partial avatar update. Nil fields are left unchanged.
type AvatarPatch struct {
	SkinColor *string
	HairStyle *string
	HairColor *string
	Outfit    *string
	Accessory *string
	Variant   *string
}

// DailyChallenge is a per-day practice goal with a coin/point reward.
type DailyChallenge struct {
	Date      string   `json:"date"`
	Completed bool     `json:"completed"`
	Progress  int      `json:"progress"`
	Target    int      `json:"target"`
	Skill     SkillKey `json:"skill"`
	Reward    int      `json:"reward"`
}

// Snapshot is the complete progress state at a point in time. Mutators
// never modify a snapshot in place; they return a new value.
type Snapshot struct {
	Points           int             `json:"points"`
	Coins            int             `json:"coins"`
	StreakDays       int             `json:"streakDays"`
	LastPracticeDate string          `json:"lastPracticeDate,omitempty"`
	Skills           Skills          `json:"skills"`
	Room             Room            `json:"room"`
	Avatar           Avatar          `json:"avatar"`
	Achievements     []string        `json:"achievements"`
	DailyChallenge   *DailyChallenge `json:"dailyChallenge"`
}

// HasAchievement reports whether the achievement id has been unlocked.
func (s *Snapshot) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the snapshot. Mutators clone before
// touching anything so callers can keep references to old values.
func (s Snapshot) Clone() Snapshot {
	next := s

	if s.Skills.Multiplication.Tables != nil {
		tables := make(map[int]TableProgress, len(s.Skills.Multiplication.Tables))
		for t, tp := range s.Skills.Multiplication.Tables {
			tables[t] = tp
		}
		next.Skills.Multiplication.Tables = tables
	}

	next.Room.OwnedItems = append([]string(nil), s.Room.OwnedItems...)
	next.Room.PlacedItems = append([]PlacedItem(nil), s.Room.PlacedItems...)
	next.Achievements = append([]string(nil), s.Achievements...)

	if s.DailyChallenge != nil {
		dc := *s.DailyChallenge
		next.DailyChallenge = &dc
	}

	return next
}

// SessionResult summarizes one completed practice round.
type SessionResult struct {
	Correct int
	Total   int
	Skill   SkillKey

	// Table is the multiplication table drilled, or 0 when the round
	// was not table-specific.
	Table int
}
