package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathquest/ent"
	"github.com/abhisek/mathquest/ent/progressrecord"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context) (json.RawMessage, error) {
	rec, err := r.client.ProgressRecord.Query().
		Where(progressrecord.Key(ProgressKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress record: %w", err)
	}

	raw, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	return raw, nil
}

func (r *progressRepo) Save(ctx context.Context, raw json.RawMessage) error {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal snapshot for storage: %w", err)
	}

	existing, err := r.client.ProgressRecord.Query().
		Where(progressrecord.Key(ProgressKey)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress record: %w", err)
		}
		_, err = r.client.ProgressRecord.Create().
			SetKey(ProgressKey).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress record: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("replace progress record: %w", err)
	}
	return nil
}

func (r *progressRepo) Clear(ctx context.Context) error {
	_, err := r.client.ProgressRecord.Delete().
		Where(progressrecord.Key(ProgressKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear progress record: %w", err)
	}
	return nil
}
