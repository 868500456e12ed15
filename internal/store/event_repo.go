package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/mathquest/ent"
)

// eventRepo implements EventRepo. Appends go through ent; aggregates
// use raw SQL because ent's group-by API does not cover multi-column
// sums cleanly.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *eventRepo) AppendPractice(ctx context.Context, data PracticeEventData) error {
	_, err := r.client.PracticeEvent.Create().
		SetSessionID(data.SessionID).
		SetSkill(data.Skill).
		SetTableNumber(data.Table).
		SetCorrect(data.Correct).
		SetTotal(data.Total).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append practice event: %w", err)
	}
	return nil
}

func (r *eventRepo) Totals(ctx context.Context) ([]SkillTotals, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT skill,
		       COUNT(*),
		       COALESCE(SUM(correct), 0),
		       COALESCE(SUM(total), 0)
		FROM practice_events
		GROUP BY skill
		ORDER BY skill`)
	if err != nil {
		return nil, fmt.Errorf("query skill totals: %w", err)
	}
	defer rows.Close()

	var out []SkillTotals
	for rows.Next() {
		var st SkillTotals
		if err := rows.Scan(&st.Skill, &st.Rounds, &st.Correct, &st.Total); err != nil {
			return nil, fmt.Errorf("scan skill totals: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skill totals: %w", err)
	}
	return out, nil
}
