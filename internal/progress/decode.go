package progress

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(SnapshotSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal snapshot schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse snapshot schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://progress-snapshot.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Decode reconstructs a snapshot from its stored JSON form. Stored
// fields are merged over defaults field by field, so documents written
// by older versions load without loss and never crash on a missing
// field. Empty input yields the defaults with a nil error.
//
// On malformed or schema-invalid input, Decode returns the defaults
// together with the reason; callers log the reason and carry on. The
// error is advisory, never fatal.
func Decode(raw []byte) (Snapshot, error) {
	if len(raw) == 0 {
		return Defaults(), nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Defaults(), fmt.Errorf("parse stored progress: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return Defaults(), err
	}
	if err := schema.Validate(parsed); err != nil {
		return Defaults(), fmt.Errorf("stored progress failed validation: %w", err)
	}

	// Unmarshalling into a pre-filled value merges stored fields over
	// defaults at every struct level; absent fields keep their default.
	snap := Defaults()
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Defaults(), fmt.Errorf("decode stored progress: %w", err)
	}

	snap.normalize()
	return snap, nil
}

// Encode serializes a snapshot for storage.
func Encode(s Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

// normalize heals a freshly decoded snapshot: nil collections from
// partially-shaped stored data are replaced, derived fields are
// recomputed, and monotonic invariants are re-asserted.
func (s *Snapshot) normalize() {
	if s.Points < 0 {
		s.Points = 0
	}
	if s.Coins < 0 {
		s.Coins = 0
	}
	if s.StreakDays < 0 {
		s.StreakDays = 0
	}

	if s.Skills.Multiplication.Tables == nil {
		s.Skills.Multiplication.Tables = make(map[int]TableProgress)
	}
	if s.Room.OwnedItems == nil {
		s.Room.OwnedItems = []string{}
	}
	if s.Room.PlacedItems == nil {
		s.Room.PlacedItems = []PlacedItem{}
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}

	// Levels are derived; recompute rather than trusting stored values.
	s.Skills.Addition.Level = levelFor(s.Skills.Addition.CorrectAnswers)
	s.Skills.Subtraction.Level = levelFor(s.Skills.Subtraction.CorrectAnswers)
	s.Skills.Multiplication.Level = levelFor(s.Skills.Multiplication.CorrectAnswers)
	s.Skills.Division.Level = levelFor(s.Skills.Division.CorrectAnswers)

	// The mastery ratchet only moves forward.
	for t, tp := range s.Skills.Multiplication.Tables {
		if tp.Correct >= MasteryThreshold && !tp.Mastered {
			tp.Mastered = true
			s.Skills.Multiplication.Tables[t] = tp
		}
	}
}
