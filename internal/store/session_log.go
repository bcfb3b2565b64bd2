package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// SessionRecord is the history entry written when a play session ends.
type SessionRecord struct {
	Sequence   int64
	SessionID  string
	Mode       string
	Category   string
	Difficulty string
	Rounds     int
	Score      int
	Stars      int
	Completed  bool // false when the player quit early
	StartedAt  time.Time
	EndedAt    time.Time
}

// SessionRepo records finished sessions.
type SessionRepo interface {
	// Append stores a finished session.
	Append(ctx context.Context, rec SessionRecord) error

	// Recent returns the newest records first. A limit of 0 returns all.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)

	// Clear removes all history.
	Clear(ctx context.Context) error
}

const sessionTable = "session_records"

var sessionColumns = []string{
	"sequence", "session_id", "mode", "category", "difficulty",
	"rounds", "score", "stars", "completed", "started_at", "ended_at",
}

type sessionRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *sessionRepo) Append(ctx context.Context, rec SessionRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionTable).
		Columns(sessionColumns...).
		Values(
			seqNum, rec.SessionID, rec.Mode, rec.Category, rec.Difficulty,
			rec.Rounds, rec.Score, rec.Stars, rec.Completed,
			rec.StartedAt.UnixMilli(), rec.EndedAt.UnixMilli(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *sessionRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(sessionColumns...).
		From(entsql.Table(sessionTable)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query session records: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec            SessionRecord
			started, ended int64
		)
		if err := rows.Scan(
			&rec.Sequence, &rec.SessionID, &rec.Mode, &rec.Category, &rec.Difficulty,
			&rec.Rounds, &rec.Score, &rec.Stars, &rec.Completed, &started, &ended,
		); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		rec.StartedAt = time.UnixMilli(started)
		rec.EndedAt = time.UnixMilli(ended)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session records: %w", err)
	}
	return out, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(sessionTable).Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear session records: %w", err)
	}
	return nil
}
