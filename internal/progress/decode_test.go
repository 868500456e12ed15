package progress

import (
	"testing"
)

func TestDecodeEmpty(t *testing.T) {
	snap, err := Decode(nil)
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if snap.Points != 0 || snap.Room.Background != DefaultBackground {
		t.Errorf("empty input did not yield defaults: %+v", snap)
	}
}

func TestDecodeMalformedFallsBackToDefaults(t *testing.T) {
	snap, err := Decode([]byte(`{"points": 50,`))
	if err == nil {
		t.Fatal("expected an advisory error for malformed JSON")
	}
	if snap.Points != 0 {
		t.Errorf("malformed input leaked data: %+v", snap)
	}
}

func TestDecodeSchemaViolationFallsBackToDefaults(t *testing.T) {
	// points must be an integer.
	snap, err := Decode([]byte(`{"points": "lots"}`))
	if err == nil {
		t.Fatal("expected an advisory error for schema violation")
	}
	if snap.Points != 0 {
		t.Errorf("invalid input leaked data: %+v", snap)
	}
}

func TestDecodePartialDocumentMergesOverDefaults(t *testing.T) {
	raw := []byte(`{"points": 120, "skills": {"addition": {"level": 1, "correctAnswers": 45, "totalAnswers": 60}}}`)

	snap, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode partial: %v", err)
	}

	if snap.Points != 120 {
		t.Errorf("points = %d", snap.Points)
	}
	if snap.Skills.Addition.CorrectAnswers != 45 {
		t.Errorf("addition = %+v", snap.Skills.Addition)
	}
	// Absent fields keep their defaults.
	if snap.Avatar.SkinColor != DefaultSkinColor {
		t.Errorf("avatar default lost: %+v", snap.Avatar)
	}
	if snap.Room.Background != DefaultBackground {
		t.Errorf("room default lost: %+v", snap.Room)
	}
	if snap.Skills.Division.Level != 1 {
		t.Errorf("division default lost: %+v", snap.Skills.Division)
	}
}

func TestDecodeRecomputesLevels(t *testing.T) {
	// Stored level is stale; correctAnswers say level 3.
	raw := []byte(`{"skills": {"subtraction": {"level": 1, "correctAnswers": 40, "totalAnswers": 50}}}`)

	snap, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Skills.Subtraction.Level != 3 {
		t.Errorf("level = %d, want 3", snap.Skills.Subtraction.Level)
	}
}

func TestDecodeReassertsTableMastery(t *testing.T) {
	raw := []byte(`{"skills": {"multiplication": {"level": 1, "correctAnswers": 25, "totalAnswers": 30,
		"tables": {"6": {"correct": 25, "total": 30, "mastered": false}}}}}`)

	snap, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !snap.Skills.Multiplication.Tables[6].Mastered {
		t.Errorf("mastery not re-asserted: %+v", snap.Skills.Multiplication.Tables[6])
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := Defaults()
	s = AddPoints(s, 75)
	s = UpdateSkillProgress(s, SkillMultiplication, 22, 25, 9)
	s = UnlockItem(s, "lamp")
	s.Achievements = append(s.Achievements, "first-correct")
	s.StreakDays = 3
	s.LastPracticeDate = "2026-03-10"

	raw, err := Encode(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Points != 75 || got.Coins != 75 {
		t.Errorf("points/coins = %d/%d", got.Points, got.Coins)
	}
	if got.StreakDays != 3 || got.LastPracticeDate != "2026-03-10" {
		t.Errorf("streak fields = %d %q", got.StreakDays, got.LastPracticeDate)
	}
	if !got.Room.Owns("lamp") {
		t.Error("owned item lost")
	}
	if !got.HasAchievement("first-correct") {
		t.Error("achievement lost")
	}
	tp := got.Skills.Multiplication.Tables[9]
	if tp.Correct != 22 || !tp.Mastered {
		t.Errorf("table 9 = %+v", tp)
	}
}
