// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathquest/ent/practiceevent"
	"github.com/abhisek/mathquest/ent/progressrecord"
	"github.com/abhisek/mathquest/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescSessionID is the schema descriptor for session_id field.
	practiceeventDescSessionID := practiceeventFields[0].Descriptor()
	// practiceevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practiceevent.SessionIDValidator = practiceeventDescSessionID.Validators[0].(func(string) error)
	// practiceeventDescSkill is the schema descriptor for skill field.
	practiceeventDescSkill := practiceeventFields[1].Descriptor()
	// practiceevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	practiceevent.SkillValidator = practiceeventDescSkill.Validators[0].(func(string) error)
	// practiceeventDescTableNumber is the schema descriptor for table_number field.
	practiceeventDescTableNumber := practiceeventFields[2].Descriptor()
	// practiceevent.DefaultTableNumber holds the default value on creation for the table_number field.
	practiceevent.DefaultTableNumber = practiceeventDescTableNumber.Default.(int)
	// practiceeventDescCorrect is the schema descriptor for correct field.
	practiceeventDescCorrect := practiceeventFields[3].Descriptor()
	// practiceevent.DefaultCorrect holds the default value on creation for the correct field.
	practiceevent.DefaultCorrect = practiceeventDescCorrect.Default.(int)
	// practiceeventDescTotal is the schema descriptor for total field.
	practiceeventDescTotal := practiceeventFields[4].Descriptor()
	// practiceevent.DefaultTotal holds the default value on creation for the total field.
	practiceevent.DefaultTotal = practiceeventDescTotal.Default.(int)
	// practiceeventDescDurationSecs is the schema descriptor for duration_secs field.
	practiceeventDescDurationSecs := practiceeventFields[5].Descriptor()
	// practiceevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	practiceevent.DefaultDurationSecs = practiceeventDescDurationSecs.Default.(int)
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventFields[6].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescKey is the schema descriptor for key field.
	progressrecordDescKey := progressrecordFields[0].Descriptor()
	// progressrecord.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	progressrecord.KeyValidator = progressrecordDescKey.Validators[0].(func(string) error)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
