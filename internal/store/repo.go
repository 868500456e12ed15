package store

import (
	"context"
	"encoding/json"
)

// ProgressKey is the fixed storage key for the progress document.
const ProgressKey = "mathQuestProgress"

// ProgressRepo persists the progress snapshot as one keyed JSON
// document, written as a complete replacement on every save.
type ProgressRepo interface {
	// Load returns the stored document, or nil when none exists.
	Load(ctx context.Context) (json.RawMessage, error)

	// Save replaces the stored document wholesale.
	Save(ctx context.Context, raw json.RawMessage) error

	// Clear deletes the stored document.
	Clear(ctx context.Context) error
}

// PracticeEventData captures one completed practice round for the
// append-only event log.
type PracticeEventData struct {
	SessionID    string
	Skill        string
	Table        int
	Correct      int
	Total        int
	DurationSecs int
}

// SkillTotals aggregates the event log per skill.
type SkillTotals struct {
	Skill   string
	Rounds  int
	Correct int
	Total   int
}

// EventRepo provides append and aggregate access to practice events.
type EventRepo interface {
	// AppendPractice records a finished round.
	AppendPractice(ctx context.Context, data PracticeEventData) error

	// Totals returns per-skill aggregates over all recorded rounds.
	Totals(ctx context.Context) ([]SkillTotals, error)
}
