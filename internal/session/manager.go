// Package session holds the authoritative in-memory progress snapshot
// and runs every mutation through one serialized commit path: pure
// mutator, achievement evaluation, persist, commit. Deriving each
// mutation from the latest committed snapshot (never a caller-captured
// one) is what rules out the stale-snapshot interleaving hazard.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/achievements"
	"github.com/abhisek/mathquest/internal/progress"
	"github.com/abhisek/mathquest/internal/shop"
	"github.com/abhisek/mathquest/internal/sound"
	"github.com/abhisek/mathquest/internal/store"
)

// ErrCannotAfford is returned by Purchase when the coin balance is
// below the item cost.
var ErrCannotAfford = errors.New("not enough coins")

// Manager is the progress session controller. All exported operations
// are safe for concurrent use; the mutex serializes them into a
// linearized history.
type Manager struct {
	mu   sync.Mutex
	snap progress.Snapshot

	repo   store.ProgressRepo
	events store.EventRepo
	sounds sound.Player
	rnd    *rand.Rand
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithEventRepo enables practice-event logging.
func WithEventRepo(events store.EventRepo) Option {
	return func(m *Manager) { m.events = events }
}

// WithSound injects the feedback-sound sink.
func WithSound(p sound.Player) Option {
	return func(m *Manager) { m.sounds = p }
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithRand overrides the random source (tests).
func WithRand(rnd *rand.Rand) Option {
	return func(m *Manager) { m.rnd = rnd }
}

// NewManager loads the stored snapshot and returns a ready controller.
// Storage that is missing, corrupt, or schema-invalid degrades to the
// default snapshot with a stderr warning; it never fails construction.
func NewManager(ctx context.Context, repo store.ProgressRepo, opts ...Option) *Manager {
	m := &Manager{
		repo:   repo,
		sounds: sound.Nop{},
		rnd:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 17)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	raw, err := repo.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to load progress, starting fresh:", err)
		m.snap = progress.Defaults()
		return m
	}

	snap, err := progress.Decode(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	m.snap = snap
	return m
}

// Progress returns a copy of the current snapshot.
func (m *Manager) Progress() progress.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.Clone()
}

// AddPoints awards points (and the coupled coin reward).
// Returns any newly unlocked achievement ids.
func (m *Manager) AddPoints(ctx context.Context, amount int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := progress.AddPoints(m.snap, amount)
	unlocked, err := m.commit(ctx, next, achievements.Context{}, nil)
	if amount > 0 {
		m.sounds.Play(sound.CueCoin)
	}
	return unlocked, err
}

// SpendCoins deducts coins, floored at zero.
func (m *Manager) SpendCoins(ctx context.Context, amount int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := progress.SpendCoins(m.snap, amount)
	return m.commit(ctx, next, achievements.Context{}, nil)
}

// UpdateSkill credits answers against a skill (and optionally a
// multiplication table; 0 means none).
func (m *Manager) UpdateSkill(ctx context.Context, skill progress.SkillKey, correct, total, table int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := progress.UpdateSkillProgress(m.snap, skill, correct, total, table)
	return m.commit(ctx, next, achievements.Context{Skill: skill, Table: table}, nil)
}

// SessionOutcome summarizes a logged practice round.
type SessionOutcome struct {
	SessionID  string
	StreakDays int
	Unlocked   []string
}

// LogSession records a completed round: streak update, skill counters,
// the perfect-round check, and an event-log append.
func (m *Manager) LogSession(ctx context.Context, res progress.SessionResult, duration time.Duration) (*SessionOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := progress.LogPracticeSession(m.snap, res, m.now())
	extra := achievements.PerfectRound(next, res.Correct, res.Total)

	unlocked, err := m.commit(ctx, next, achievements.Context{Skill: res.Skill, Table: res.Table}, extra)
	if err != nil {
		return nil, err
	}

	outcome := &SessionOutcome{
		SessionID:  uuid.New().String(),
		StreakDays: m.snap.StreakDays,
		Unlocked:   unlocked,
	}

	if m.events != nil {
		evErr := m.events.AppendPractice(ctx, store.PracticeEventData{
			SessionID:    outcome.SessionID,
			Skill:        string(res.Skill),
			Table:        res.Table,
			Correct:      res.Correct,
			Total:        res.Total,
			DurationSecs: int(duration.Seconds()),
		})
		if evErr != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to record practice event:", evErr)
		}
	}

	return outcome, nil
}

// UnlockItem adds an item to the owned set (idempotent).
func (m *Manager) UnlockItem(ctx context.Context, itemID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := progress.UnlockItem(m.snap, itemID)
	return m.commit(ctx, next, achievements.Context{}, nil)
}

// Purchase spends the item's cost and unlocks it in one commit.
// Fails with ErrCannotAfford before touching the snapshot; buying an
// already-owned item is also rejected.
func (m *Manager) Purchase(ctx context.Context, item shop.Item) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap.Room.Owns(item.ID) {
		return nil, fmt.Errorf("item %q already owned", item.ID)
	}
	if m.snap.Coins < item.Cost {
		return nil, fmt.Errorf("%w: %s costs %d, balance %d", ErrCannotAfford, item.ID, item.Cost, m.snap.Coins)
	}

	next := progress.UnlockItem(progress.SpendCoins(m.snap, item.Cost), item.ID)
	unlocked, err := m.commit(ctx, next, achievements.Context{}, nil)
	m.sounds.Play(sound.CueCoin)
	return unlocked, err
}

// SetRoomLayout replaces the placed-item arrangement.
func (m *Manager) SetRoomLayout(ctx context.Context, placed []progress.PlacedItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.commit(ctx, progress.UpdateRoomLayout(m.snap, placed), achievements.Context{}, nil)
	return err
}

// SetRoomBackground replaces the room background.
func (m *Manager) SetRoomBackground(ctx context.Context, background string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.commit(ctx, progress.UpdateRoomBackground(m.snap, background), achievements.Context{}, nil)
	return err
}

// SetAvatar applies a partial avatar update.
func (m *Manager) SetAvatar(ctx context.Context, patch progress.AvatarPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.commit(ctx, progress.UpdateAvatar(m.snap, patch), achievements.Context{}, nil)
	return err
}

// DailyChallenge returns today's challenge, generating a fresh one
// when the stored challenge is stale. The fresh challenge is only
// persisted once progress is logged against it.
func (m *Manager) DailyChallenge() progress.DailyChallenge {
	m.mu.Lock()
	defer m.mu.Unlock()
	return progress.ActiveDailyChallenge(m.snap, m.now(), m.rnd)
}

// UpdateDailyChallenge credits completed questions against today's
// challenge for the given skill.
func (m *Manager) UpdateDailyChallenge(ctx context.Context, skill progress.SkillKey, questionsCompleted int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := progress.AdvanceDailyChallenge(m.snap, skill, questionsCompleted, m.now(), m.rnd)
	return m.commit(ctx, next, achievements.Context{Skill: skill}, nil)
}

// Reset replaces the snapshot with defaults, bypassing achievement
// evaluation.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := progress.Defaults()
	if err := m.persist(ctx, next); err != nil {
		return err
	}
	m.snap = next
	return nil
}

// Close releases the sound sink.
func (m *Manager) Close() error {
	return m.sounds.Close()
}

// commit runs phase two of every mutation: evaluate achievements
// against the already-mutated snapshot, merge newly qualified ids,
// persist the whole document, then publish the snapshot as current.
// The in-memory commit happens even when the write fails, so the
// running session stays consistent; the error is reported upward.
//
// Callers must hold m.mu.
func (m *Manager) commit(ctx context.Context, next progress.Snapshot, evalCtx achievements.Context, extra []string) ([]string, error) {
	unlocked := achievements.Evaluate(next, evalCtx)
	for _, id := range extra {
		if !next.HasAchievement(id) && !contains(unlocked, id) {
			unlocked = append(unlocked, id)
		}
	}
	if len(unlocked) > 0 {
		next.Achievements = append(next.Achievements, unlocked...)
		m.sounds.Play(sound.CueAchievement)
	}

	err := m.persist(ctx, next)
	m.snap = next
	return unlocked, err
}

func (m *Manager) persist(ctx context.Context, snap progress.Snapshot) error {
	raw, err := progress.Encode(snap)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := m.repo.Save(ctx, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
