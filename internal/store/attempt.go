package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/limbcalc/internal/calc"
)

const attemptsTable = "attempts"

var attemptColumns = []string{
	"id", "sequence", "timestamp", "session_id", "input",
	"operand1", "operand2", "total", "counted", "status", "message",
}

type attemptRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *attemptRepo) Append(ctx context.Context, a Attempt) (Attempt, error) {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return Attempt{}, err
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	a.Sequence = seq

	query, args := builder().Insert(attemptsTable).
		Columns(attemptColumns[1:]...).
		Values(
			a.Sequence, a.Timestamp.UnixMilli(), a.SessionID, a.Input,
			a.Operand1, a.Operand2, a.Total, a.Count, string(a.Status), a.Message,
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return Attempt{}, fmt.Errorf("append attempt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Attempt{}, fmt.Errorf("append attempt: %w", err)
	}
	a.ID = int(id)
	return a, nil
}

func (r *attemptRepo) Query(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	sel := builder().Select(attemptColumns...).From(entsql.Table(attemptsTable))

	var preds []*entsql.Predicate
	if opts.Status != "" {
		preds = append(preds, entsql.EQ("status", string(opts.Status)))
	}
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a      Attempt
			millis int64
			status string
		)
		if err := rows.Scan(
			&a.ID, &a.Sequence, &millis, &a.SessionID, &a.Input,
			&a.Operand1, &a.Operand2, &a.Total, &a.Count, &status, &a.Message,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Timestamp = time.UnixMilli(millis)
		a.Status = calc.Status(status)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) Stats(ctx context.Context) (Stats, error) {
	st := Stats{ByStatus: make(map[calc.Status]int)}

	query, args := builder().
		Select("status", entsql.As(entsql.Count("*"), "n")).
		From(entsql.Table(attemptsTable)).
		GroupBy("status").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return st, fmt.Errorf("attempt stats: %w", err)
	}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			return st, fmt.Errorf("scan stats: %w", err)
		}
		st.ByStatus[calc.Status(status)] = n
		st.Total += n
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return st, fmt.Errorf("attempt stats: %w", err)
	}
	rows.Close()

	query, args = builder().
		Select(entsql.As("COALESCE(MAX(total), 0)", "largest")).
		From(entsql.Table(attemptsTable)).
		Where(entsql.EQ("status", string(calc.StatusCompleted))).
		Query()

	var maxRows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &maxRows); err != nil {
		return st, fmt.Errorf("attempt stats: %w", err)
	}
	defer maxRows.Close()
	if maxRows.Next() {
		if err := maxRows.Scan(&st.LargestSum); err != nil {
			return st, fmt.Errorf("scan stats: %w", err)
		}
	}
	return st, maxRows.Err()
}

func (r *attemptRepo) Clear(ctx context.Context) (int64, error) {
	query, args := builder().Delete(attemptsTable).Query()
	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("clear attempts: %w", err)
	}
	return res.RowsAffected()
}
