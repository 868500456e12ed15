package achievements

import (
	"sort"
	"testing"

	"github.com/abhisek/mathquest/internal/progress"
)

func hasID(ids []string, id string) bool {
	for _, got := range ids {
		if got == id {
			return true
		}
	}
	return false
}

func TestEvaluateFreshSnapshotAwardsNothing(t *testing.T) {
	if got := Evaluate(progress.Defaults(), Context{}); len(got) != 0 {
		t.Errorf("fresh snapshot unlocked %v", got)
	}
}

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name  string
		build func() progress.Snapshot
		want  string
	}{
		{"first point", func() progress.Snapshot {
			return progress.AddPoints(progress.Defaults(), 5)
		}, FirstCorrect},
		{"3-day streak", func() progress.Snapshot {
			s := progress.Defaults()
			s.StreakDays = 3
			return s
		}, EarlyBird},
		{"7-day streak", func() progress.Snapshot {
			s := progress.Defaults()
			s.StreakDays = 7
			return s
		}, Dedicated},
		{"10-day streak", func() progress.Snapshot {
			s := progress.Defaults()
			s.StreakDays = 10
			return s
		}, Combo10},
		{"100 points", func() progress.Snapshot {
			s := progress.Defaults()
			s.Points = 100
			return s
		}, HundredClub},
		{"200 coins", func() progress.Snapshot {
			s := progress.Defaults()
			s.Coins = 200
			return s
		}, RichLearner},
		{"3 owned items", func() progress.Snapshot {
			s := progress.Defaults()
			s = progress.UnlockItem(s, "bed")
			s = progress.UnlockItem(s, "lamp")
			return progress.UnlockItem(s, "plant")
		}, RoomDecorator},
		{"level 5 in one skill", func() progress.Snapshot {
			return progress.UpdateSkillProgress(progress.Defaults(), progress.SkillDivision, 80, 90, 0)
		}, Level5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.build(), Context{})
			if !hasID(got, tt.want) {
				t.Errorf("unlocked %v, want %s included", got, tt.want)
			}
		})
	}
}

func TestEvaluateBelowThresholds(t *testing.T) {
	s := progress.Defaults()
	s.StreakDays = 2
	s.Points = 99
	s.Coins = 199
	s = progress.UnlockItem(s, "bed")

	got := Evaluate(s, Context{})
	for _, id := range []string{EarlyBird, HundredClub, RichLearner, RoomDecorator} {
		if hasID(got, id) {
			t.Errorf("%s unlocked below threshold", id)
		}
	}
}

func TestEvaluateExcludesAlreadyHeld(t *testing.T) {
	s := progress.AddPoints(progress.Defaults(), 150)

	first := Evaluate(s, Context{})
	sort.Strings(first)
	if !hasID(first, FirstCorrect) || !hasID(first, HundredClub) {
		t.Fatalf("first pass unlocked %v", first)
	}

	s.Achievements = append(s.Achievements, first...)
	if again := Evaluate(s, Context{}); len(again) != 0 {
		t.Errorf("second pass re-unlocked %v", again)
	}
}

func TestEvaluateTableMasters(t *testing.T) {
	s := progress.UpdateSkillProgress(progress.Defaults(), progress.SkillMultiplication,
		progress.MasteryThreshold, progress.MasteryThreshold, 5)

	got := Evaluate(s, Context{Skill: progress.SkillMultiplication, Table: 5})
	if !hasID(got, MulMaster5) {
		t.Errorf("unlocked %v, want %s", got, MulMaster5)
	}

	// Table 3 is mastered but not celebrated.
	s3 := progress.UpdateSkillProgress(progress.Defaults(), progress.SkillMultiplication,
		progress.MasteryThreshold, progress.MasteryThreshold, 3)
	got = Evaluate(s3, Context{Skill: progress.SkillMultiplication, Table: 3})
	for _, id := range got {
		if id == MulMaster2 || id == MulMaster5 || id == MulMaster10 {
			t.Errorf("table 3 unlocked %s", id)
		}
	}
}

func TestEvaluateTableMasterNeedsMultiplicationContext(t *testing.T) {
	s := progress.UpdateSkillProgress(progress.Defaults(), progress.SkillMultiplication,
		progress.MasteryThreshold, progress.MasteryThreshold, 2)

	// An addition round afterwards must not trigger table medals.
	got := Evaluate(s, Context{Skill: progress.SkillAddition})
	if hasID(got, MulMaster2) {
		t.Errorf("table medal awarded outside multiplication: %v", got)
	}
}

func TestEvaluateAllTables(t *testing.T) {
	s := progress.Defaults()
	for table := 2; table <= 9; table++ {
		s = progress.UpdateSkillProgress(s, progress.SkillMultiplication,
			progress.MasteryThreshold, progress.MasteryThreshold, table)
	}

	got := Evaluate(s, Context{Skill: progress.SkillMultiplication, Table: 9})
	if hasID(got, AllTables) {
		t.Fatalf("all-tables with table 10 missing: %v", got)
	}

	s = progress.UpdateSkillProgress(s, progress.SkillMultiplication,
		progress.MasteryThreshold, progress.MasteryThreshold, 10)
	got = Evaluate(s, Context{Skill: progress.SkillMultiplication, Table: 10})
	if !hasID(got, AllTables) {
		t.Errorf("all tables mastered but unlocked only %v", got)
	}
}

func TestPerfectRound(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    bool
	}{
		{"10 of 10", 10, 10, true},
		{"12 of 12", 12, 12, true},
		{"9 of 10", 9, 10, false},
		{"short perfect round", 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerfectRound(progress.Defaults(), tt.correct, tt.total)
			if (len(got) == 1) != tt.want {
				t.Errorf("PerfectRound(%d, %d) = %v, want awarded=%v", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestPerfectRoundNotRepeated(t *testing.T) {
	s := progress.Defaults()
	s.Achievements = []string{PerfectRoundID}
	if got := PerfectRound(s, 10, 10); len(got) != 0 {
		t.Errorf("perfect round re-awarded: %v", got)
	}
}

func TestCatalogLookup(t *testing.T) {
	ids := map[string]bool{}
	for _, a := range Catalog() {
		if a.ID == "" || a.Title == "" || a.Description == "" {
			t.Errorf("incomplete catalog entry: %+v", a)
		}
		if ids[a.ID] {
			t.Errorf("duplicate id %s", a.ID)
		}
		ids[a.ID] = true
	}

	if a, ok := ByID(Combo10); !ok || a.Title != "Combo Wizard" {
		t.Errorf("ByID(%s) = %+v, %v", Combo10, a, ok)
	}
	if _, ok := ByID("nope"); ok {
		t.Error("ByID accepted an unknown id")
	}
}
