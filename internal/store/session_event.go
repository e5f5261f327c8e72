package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Events appends and queries the event tables.
type Events struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

var _ EventRepo = (*Events)(nil)

// EventRepo returns the event repository backed by this store.
func (s *Store) EventRepo() *Events {
	return &Events{db: s.db, seq: s.seq, now: time.Now}
}

// AppendSessionEvent records a finished mini-game session.
func (r *Events) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(sessionEventsTable).
		Columns("sequence", "timestamp", "session_id", "user_id", "module", "level", "score",
			"points_added", "correct", "answered", "total", "timed_out", "duration_ms").
		Values(seqNum, r.now().UTC(), data.SessionID, data.UserID, data.Module, data.Level, data.Score,
			data.PointsAdded, data.Correct, data.Answered, data.Total, data.TimedOut, data.DurationMs).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// QuerySessionEvents returns session events newest first.
func (r *Events) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error) {
	sel := builder().Select("id", "sequence", "timestamp", "session_id", "user_id", "module", "level",
		"score", "points_added", "correct", "answered", "total", "timed_out", "duration_ms").
		From(builder().Table(sessionEventsTable)).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)
	if opts.UserID != "" {
		sel.Where(entsql.EQ("user_id", opts.UserID))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEventRecord
	for rows.Next() {
		var e SessionEventRecord
		err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID, &e.UserID, &e.Module, &e.Level,
			&e.Score, &e.PointsAdded, &e.Correct, &e.Answered, &e.Total, &e.TimedOut, &e.DurationMs)
		if err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SessionStatsByModule aggregates session events per module.
func (r *Events) SessionStatsByModule(ctx context.Context) ([]ModuleStats, error) {
	query, args := builder().Select(
		"module",
		entsql.As(entsql.Count("*"), "sessions"),
		entsql.As(entsql.Avg("score"), "avg_score"),
		entsql.As(entsql.Sum("timed_out"), "timed_out"),
		entsql.As(entsql.Sum("correct"), "correct"),
		entsql.As(entsql.Sum("total"), "total"),
	).
		From(builder().Table(sessionEventsTable)).
		GroupBy("module").
		OrderBy("module").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query module stats: %w", err)
	}
	defer rows.Close()

	var out []ModuleStats
	for rows.Next() {
		var st ModuleStats
		if err := rows.Scan(&st.Module, &st.Sessions, &st.AvgScore, &st.TimedOut, &st.TotalCorrect, &st.TotalItems); err != nil {
			return nil, fmt.Errorf("scan module stats: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
}
