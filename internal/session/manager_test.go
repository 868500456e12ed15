package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/mathquest/internal/achievements"
	"github.com/abhisek/mathquest/internal/progress"
	"github.com/abhisek/mathquest/internal/shop"
	"github.com/abhisek/mathquest/internal/store"
)

// fakeProgressRepo keeps the stored document in memory.
type fakeProgressRepo struct {
	raw     json.RawMessage
	saves   int
	loadErr error
	saveErr error
}

func (f *fakeProgressRepo) Load(ctx context.Context) (json.RawMessage, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.raw, nil
}

func (f *fakeProgressRepo) Save(ctx context.Context, raw json.RawMessage) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.raw = append(json.RawMessage(nil), raw...)
	f.saves++
	return nil
}

func (f *fakeProgressRepo) Clear(ctx context.Context) error {
	f.raw = nil
	return nil
}

// fakeEventRepo records appended events.
type fakeEventRepo struct {
	events    []store.PracticeEventData
	appendErr error
}

func (f *fakeEventRepo) AppendPractice(ctx context.Context, data store.PracticeEventData) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) Totals(ctx context.Context) ([]store.SkillTotals, error) {
	return nil, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testDay = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestNewManagerLoadsStoredSnapshot(t *testing.T) {
	seed := progress.AddPoints(progress.Defaults(), 40)
	raw, err := progress.Encode(seed)
	if err != nil {
		t.Fatal(err)
	}

	m := NewManager(context.Background(), &fakeProgressRepo{raw: raw})
	if got := m.Progress().Points; got != 40 {
		t.Errorf("points = %d, want 40", got)
	}
}

func TestNewManagerDegradesOnLoadError(t *testing.T) {
	repo := &fakeProgressRepo{loadErr: errors.New("disk on fire")}
	m := NewManager(context.Background(), repo)
	if got := m.Progress(); got.Points != 0 || got.Room.Background != progress.DefaultBackground {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestNewManagerDegradesOnCorruptData(t *testing.T) {
	repo := &fakeProgressRepo{raw: json.RawMessage(`{"points":`)}
	m := NewManager(context.Background(), repo)
	if got := m.Progress().Points; got != 0 {
		t.Errorf("points = %d, want 0", got)
	}
}

func TestAddPointsPersistsAndUnlocks(t *testing.T) {
	repo := &fakeProgressRepo{}
	m := NewManager(context.Background(), repo)

	unlocked, err := m.AddPoints(context.Background(), 10)
	if err != nil {
		t.Fatalf("add points: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0] != achievements.FirstCorrect {
		t.Errorf("unlocked %v", unlocked)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1", repo.saves)
	}

	// The stored document includes the merged achievement.
	stored, err := progress.Decode(repo.raw)
	if err != nil {
		t.Fatalf("decode stored: %v", err)
	}
	if !stored.HasAchievement(achievements.FirstCorrect) {
		t.Error("achievement not persisted")
	}
}

func TestAddPointsNoRepeatUnlock(t *testing.T) {
	m := NewManager(context.Background(), &fakeProgressRepo{})

	if _, err := m.AddPoints(context.Background(), 10); err != nil {
		t.Fatal(err)
	}
	unlocked, err := m.AddPoints(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 0 {
		t.Errorf("second award re-unlocked %v", unlocked)
	}
}

func TestCommitKeepsMemoryOnSaveFailure(t *testing.T) {
	repo := &fakeProgressRepo{saveErr: errors.New("readonly fs")}
	m := NewManager(context.Background(), repo)

	_, err := m.AddPoints(context.Background(), 10)
	if err == nil {
		t.Fatal("expected save error surfaced")
	}
	// The running session still sees the new points.
	if got := m.Progress().Points; got != 10 {
		t.Errorf("points = %d, want 10", got)
	}
}

func TestLogSession(t *testing.T) {
	repo := &fakeProgressRepo{}
	events := &fakeEventRepo{}
	m := NewManager(context.Background(), repo,
		WithEventRepo(events),
		WithClock(fixedClock(testDay)),
	)

	outcome, err := m.LogSession(context.Background(),
		progress.SessionResult{Correct: 10, Total: 10, Skill: progress.SkillAddition},
		95*time.Second)
	if err != nil {
		t.Fatalf("log session: %v", err)
	}

	if outcome.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", outcome.StreakDays)
	}
	if outcome.SessionID == "" {
		t.Error("missing session id")
	}
	if !hasID(outcome.Unlocked, achievements.PerfectRoundID) {
		t.Errorf("perfect round missing from %v", outcome.Unlocked)
	}

	if len(events.events) != 1 {
		t.Fatalf("events = %d, want 1", len(events.events))
	}
	ev := events.events[0]
	if ev.SessionID != outcome.SessionID || ev.Skill != "addition" || ev.Correct != 10 || ev.DurationSecs != 95 {
		t.Errorf("event = %+v", ev)
	}
}

func TestLogSessionEventFailureIsNonFatal(t *testing.T) {
	m := NewManager(context.Background(), &fakeProgressRepo{},
		WithEventRepo(&fakeEventRepo{appendErr: errors.New("table locked")}),
		WithClock(fixedClock(testDay)),
	)

	outcome, err := m.LogSession(context.Background(),
		progress.SessionResult{Correct: 5, Total: 10, Skill: progress.SkillDivision},
		time.Minute)
	if err != nil {
		t.Fatalf("event failure escalated: %v", err)
	}
	if outcome == nil {
		t.Fatal("nil outcome")
	}
}

func TestPurchase(t *testing.T) {
	m := NewManager(context.Background(), &fakeProgressRepo{})
	ctx := context.Background()

	// Fund the balance.
	if _, err := m.AddPoints(ctx, 100); err != nil {
		t.Fatal(err)
	}

	item := shop.Item{ID: "lamp", Name: "Lamp", Cost: 50, Category: shop.Furniture}
	if _, err := m.Purchase(ctx, item); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	snap := m.Progress()
	if snap.Coins != 50 {
		t.Errorf("coins = %d, want 50", snap.Coins)
	}
	if !snap.Room.Owns("lamp") {
		t.Error("item not owned after purchase")
	}
	if snap.Points != 100 {
		t.Errorf("purchase touched points: %d", snap.Points)
	}

	// Already owned.
	if _, err := m.Purchase(ctx, item); err == nil {
		t.Error("re-purchase accepted")
	}

	// Unaffordable.
	pricey := shop.Item{ID: "bed", Name: "Bed", Cost: 300}
	_, err := m.Purchase(ctx, pricey)
	if !errors.Is(err, ErrCannotAfford) {
		t.Errorf("err = %v, want ErrCannotAfford", err)
	}
	if m.Progress().Coins != 50 {
		t.Error("failed purchase changed balance")
	}
}

func TestUpdateDailyChallengeRewardsOnce(t *testing.T) {
	m := NewManager(context.Background(), &fakeProgressRepo{},
		WithClock(fixedClock(testDay)),
	)
	ctx := context.Background()

	dc := m.DailyChallenge()
	if dc.Completed {
		t.Fatalf("fresh challenge completed: %+v", dc)
	}

	if _, err := m.UpdateDailyChallenge(ctx, dc.Skill, dc.Target); err != nil {
		t.Fatal(err)
	}
	after := m.Progress()
	if after.Coins != progress.DailyChallengeReward {
		t.Errorf("coins = %d, want %d", after.Coins, progress.DailyChallengeReward)
	}

	if _, err := m.UpdateDailyChallenge(ctx, dc.Skill, dc.Target); err != nil {
		t.Fatal(err)
	}
	if got := m.Progress().Coins; got != progress.DailyChallengeReward {
		t.Errorf("reward paid twice: %d coins", got)
	}
}

func TestSetAvatarAndRoom(t *testing.T) {
	m := NewManager(context.Background(), &fakeProgressRepo{})
	ctx := context.Background()

	hair := "spiky"
	if err := m.SetAvatar(ctx, progress.AvatarPatch{HairStyle: &hair}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetRoomBackground(ctx, "bg_space"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetRoomLayout(ctx, []progress.PlacedItem{{ItemID: "lamp", X: 2, Y: 3}}); err != nil {
		t.Fatal(err)
	}

	snap := m.Progress()
	if snap.Avatar.HairStyle != "spiky" {
		t.Errorf("avatar = %+v", snap.Avatar)
	}
	if snap.Room.Background != "bg_space" || len(snap.Room.PlacedItems) != 1 {
		t.Errorf("room = %+v", snap.Room)
	}
}

func TestReset(t *testing.T) {
	repo := &fakeProgressRepo{}
	m := NewManager(context.Background(), repo)
	ctx := context.Background()

	if _, err := m.AddPoints(ctx, 500); err != nil {
		t.Fatal(err)
	}
	if err := m.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	snap := m.Progress()
	if snap.Points != 0 || snap.Coins != 0 || len(snap.Achievements) != 0 {
		t.Errorf("reset left state behind: %+v", snap)
	}

	stored, err := progress.Decode(repo.raw)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Points != 0 {
		t.Errorf("stored points = %d after reset", stored.Points)
	}
}

func hasID(ids []string, id string) bool {
	for _, got := range ids {
		if got == id {
			return true
		}
	}
	return false
}
