package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const sessionEventsTable = "session_events"

var sessionEventColumns = []string{
	"id", "sequence", "timestamp", "session_id", "action", "profile_id",
	"topic", "mode", "difficulty", "questions_total", "correct_answers",
	"score", "points", "best_combo", "duration_secs",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.SessionID == "" || data.Action == "" {
		return fmt.Errorf("session event requires session id and action")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionEventsTable).
		Columns(sessionEventColumns[1:]...).
		Values(
			seqNum, r.clock().UnixMilli(), data.SessionID, data.Action, data.ProfileID,
			data.Topic, data.Mode, data.Difficulty, data.QuestionsTotal, data.CorrectAnswers,
			data.Score, data.Points, data.BestCombo, data.DurationSecs,
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, profileID string, opts QueryOpts) ([]SessionEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(sessionEventColumns...).
		From(entsql.Table(sessionEventsTable)).
		OrderBy(entsql.Desc("sequence"))
	if profileID != "" {
		sel.Where(entsql.EQ("profile_id", profileID))
	}
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var (
			e  SessionEvent
			ts int64
		)
		if err := rows.Scan(
			&e.ID, &e.Sequence, &ts, &e.SessionID, &e.Action, &e.ProfileID,
			&e.Topic, &e.Mode, &e.Difficulty, &e.QuestionsTotal, &e.CorrectAnswers,
			&e.Score, &e.Points, &e.BestCombo, &e.DurationSecs,
		); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	return events, nil
}
