package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const recordsTable = "records"

// recordRepo implements RecordRepo as a key/value table.
type recordRepo struct {
	drv *entsql.Driver
}

func (r *recordRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("payload").
		From(entsql.Table(recordsTable)).
		Where(entsql.EQ("record_key", key)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, false, fmt.Errorf("get record %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("get record %q: %w", key, err)
		}
		return nil, false, nil
	}
	var payload string
	if err := rows.Scan(&payload); err != nil {
		return nil, false, fmt.Errorf("scan record %q: %w", key, err)
	}
	return []byte(payload), true, nil
}

func (r *recordRepo) Put(ctx context.Context, key string, payload []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(recordsTable).
		Columns("record_key", "payload", "updated_at").
		Values(key, string(payload), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("record_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("put record %q: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(recordsTable).
		Where(entsql.EQ("record_key", key)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
