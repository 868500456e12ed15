package progress

import (
	"testing"
	"time"
)

func TestAddPoints(t *testing.T) {
	tests := []struct {
		name       string
		start      Snapshot
		amount     int
		wantPoints int
		wantCoins  int
	}{
		{"from zero", Defaults(), 5, 5, 5},
		{"accumulates", Snapshot{Points: 100, Coins: 40}, 10, 110, 50},
		{"negative clamped", Snapshot{Points: 100, Coins: 40}, -25, 100, 40},
		{"zero is a no-op", Snapshot{Points: 7, Coins: 7}, 0, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddPoints(tt.start, tt.amount)
			if got.Points != tt.wantPoints || got.Coins != tt.wantCoins {
				t.Errorf("AddPoints(%d) = points %d coins %d, want %d/%d",
					tt.amount, got.Points, got.Coins, tt.wantPoints, tt.wantCoins)
			}
		})
	}
}

func TestAddPointsDoesNotMutateInput(t *testing.T) {
	start := Snapshot{Points: 10, Coins: 10}
	AddPoints(start, 5)
	if start.Points != 10 || start.Coins != 10 {
		t.Errorf("input snapshot mutated: %+v", start)
	}
}

func TestSpendCoins(t *testing.T) {
	tests := []struct {
		name   string
		coins  int
		amount int
		want   int
	}{
		{"exact balance", 100, 100, 0},
		{"partial", 100, 30, 70},
		{"overdraft floors at zero", 10, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpendCoins(Snapshot{Points: 500, Coins: tt.coins}, tt.amount)
			if got.Coins != tt.want {
				t.Errorf("SpendCoins(%d) coins = %d, want %d", tt.amount, got.Coins, tt.want)
			}
			if got.Points != 500 {
				t.Errorf("SpendCoins touched points: %d", got.Points)
			}
		})
	}
}

func TestUpdateSkillProgressLevels(t *testing.T) {
	tests := []struct {
		correct int
		want    int
	}{
		{0, 1},
		{19, 1},
		{20, 2},
		{39, 2},
		{40, 3},
		{100, 6},
	}

	for _, tt := range tests {
		s := UpdateSkillProgress(Defaults(), SkillAddition, tt.correct, tt.correct, 0)
		if got := s.Skills.Addition.Level; got != tt.want {
			t.Errorf("level after %d correct = %d, want %d", tt.correct, got, tt.want)
		}
	}
}

func TestUpdateSkillProgressClampsNegativeDeltas(t *testing.T) {
	s := UpdateSkillProgress(Defaults(), SkillDivision, 3, 5, 0)
	s = UpdateSkillProgress(s, SkillDivision, -2, -2, 0)
	if s.Skills.Division.CorrectAnswers != 3 || s.Skills.Division.TotalAnswers != 5 {
		t.Errorf("counters regressed: %+v", s.Skills.Division)
	}
}

func TestUpdateSkillProgressTableMastery(t *testing.T) {
	s := Defaults()
	s = UpdateSkillProgress(s, SkillMultiplication, MasteryThreshold-1, MasteryThreshold-1, 7)
	if s.Skills.Multiplication.Tables[7].Mastered {
		t.Fatal("table mastered below threshold")
	}

	s = UpdateSkillProgress(s, SkillMultiplication, 1, 1, 7)
	tp := s.Skills.Multiplication.Tables[7]
	if !tp.Mastered {
		t.Fatalf("table not mastered at threshold: %+v", tp)
	}

	// Mastery never unsets, regardless of later results.
	s = UpdateSkillProgress(s, SkillMultiplication, 0, 10, 7)
	if !s.Skills.Multiplication.Tables[7].Mastered {
		t.Error("mastery flag regressed")
	}
}

func TestUpdateSkillProgressTableZeroIgnoresTables(t *testing.T) {
	s := UpdateSkillProgress(Defaults(), SkillMultiplication, 4, 5, 0)
	if len(s.Skills.Multiplication.Tables) != 0 {
		t.Errorf("tables touched without a table: %v", s.Skills.Multiplication.Tables)
	}
	if s.Skills.Multiplication.CorrectAnswers != 4 {
		t.Errorf("base counters not updated: %+v", s.Skills.Multiplication.SkillProgress)
	}
}

func TestLogPracticeSessionStreaks(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 15, 0, 0, 0, time.UTC)
	}
	res := SessionResult{Correct: 8, Total: 10, Skill: SkillAddition}

	tests := []struct {
		name       string
		lastDate   string
		streak     int
		now        time.Time
		wantStreak int
	}{
		{"first ever practice", "", 0, day(1), 1},
		{"same day unchanged", "2026-03-01", 4, day(1), 4},
		{"next day increments", "2026-03-01", 4, day(2), 5},
		{"two-day gap resets", "2026-03-01", 4, day(3), 1},
		{"long gap resets", "2026-01-10", 9, day(1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			s.LastPracticeDate = tt.lastDate
			s.StreakDays = tt.streak

			got := LogPracticeSession(s, res, tt.now)
			if got.StreakDays != tt.wantStreak {
				t.Errorf("streak = %d, want %d", got.StreakDays, tt.wantStreak)
			}
			if got.LastPracticeDate != DateOf(tt.now) {
				t.Errorf("lastPracticeDate = %q, want %q", got.LastPracticeDate, DateOf(tt.now))
			}
			if got.Skills.Addition.TotalAnswers != 10 {
				t.Errorf("skill counters not updated: %+v", got.Skills.Addition)
			}
		})
	}
}

func TestLogPracticeSessionStreakSurvivesUTCMidnight(t *testing.T) {
	s := Defaults()
	s.LastPracticeDate = "2026-03-01"
	s.StreakDays = 2

	// 23:59 UTC on the 2nd is still the 2nd.
	got := LogPracticeSession(s, SessionResult{Correct: 1, Total: 1, Skill: SkillDivision},
		time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC))
	if got.StreakDays != 3 {
		t.Errorf("streak = %d, want 3", got.StreakDays)
	}
}

func TestUnlockItem(t *testing.T) {
	s := UnlockItem(Defaults(), "bed")
	if !s.Room.Owns("bed") {
		t.Fatal("item not owned after unlock")
	}

	again := UnlockItem(s, "bed")
	if got := len(again.Room.OwnedItems); got != 1 {
		t.Errorf("duplicate unlock grew owned list to %d", got)
	}
}

func TestUpdateRoomLayout(t *testing.T) {
	placed := []PlacedItem{{ItemID: "bed", X: 1, Y: 2}, {ItemID: "plant", X: 3, Y: 4}}
	s := UpdateRoomLayout(Defaults(), placed)
	if len(s.Room.PlacedItems) != 2 || s.Room.PlacedItems[1].ItemID != "plant" {
		t.Errorf("layout = %+v", s.Room.PlacedItems)
	}

	// Replacement, not append.
	s = UpdateRoomLayout(s, []PlacedItem{{ItemID: "sofa"}})
	if len(s.Room.PlacedItems) != 1 {
		t.Errorf("layout not replaced: %+v", s.Room.PlacedItems)
	}
}

func TestUpdateAvatarPatch(t *testing.T) {
	hair := "curly"
	acc := "glasses"

	s := UpdateAvatar(Defaults(), AvatarPatch{HairStyle: &hair, Accessory: &acc})
	if s.Avatar.HairStyle != "curly" || s.Avatar.Accessory != "glasses" {
		t.Errorf("patched fields not applied: %+v", s.Avatar)
	}
	if s.Avatar.SkinColor != DefaultSkinColor || s.Avatar.Outfit != DefaultOutfit {
		t.Errorf("unpatched fields changed: %+v", s.Avatar)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2026-03-01", "2026-03-02", 1},
		{"2026-03-01", "2026-03-01", 0},
		{"2026-02-28", "2026-03-01", 1},
		{"2026-01-01", "2026-12-31", 364},
		{"", "2026-03-01", 0},
		{"garbage", "2026-03-01", 0},
	}

	for _, tt := range tests {
		if got := DaysBetween(tt.from, tt.to); got != tt.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}
