package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jask/pantrypal/internal/metrics"
)

// Row is one result row keyed by column name.
type Row map[string]any

func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func (r Row) Int(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

func (r Row) Bool(col string) bool {
	if b, ok := r[col].(bool); ok {
		return b
	}
	return r.Int(col) != 0
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Store runs parameterized SQL for the repositories. Queries are written with
// ? placeholders and rebound for the dialect. Every call is bounded by the
// store timeout.
type Store struct {
	db      *sql.DB
	q       querier
	dialect Dialect
	timeout time.Duration
	metrics *metrics.Metrics
}

func NewStore(db *sql.DB, dialect Dialect, timeout time.Duration, m *metrics.Metrics) *Store {
	return &Store{db: db, q: db, dialect: dialect, timeout: timeout, metrics: m}
}

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Rebind rewrites ? placeholders as $n for postgres.
func (s *Store) Rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Query runs query and returns every row in order.
func (s *Store) Query(ctx context.Context, op, query string, args ...any) ([]Row, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	out, err := s.query(ctx, query, args...)
	s.metrics.Query(op, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.q.QueryContext(ctx, s.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Exec runs an insert, update or delete and returns the affected row count.
func (s *Store) Exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	res, err := s.q.ExecContext(ctx, s.Rebind(query), args...)
	var n int64
	if err == nil {
		n, err = res.RowsAffected()
	}
	s.metrics.Query(op, err)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// InsertID runs an insert ending in "RETURNING id" and returns the generated id.
func (s *Store) InsertID(ctx context.Context, op, query string, args ...any) (int64, error) {
	rows, err := s.Query(ctx, op, query, args...)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("%s: no id returned", op)
	}
	return rows[0].Int("id"), nil
}

// WithTx runs fn against a store bound to one transaction.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	if s.db == nil {
		return fn(s)
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(&Store{q: tx, dialect: s.dialect, timeout: s.timeout, metrics: s.metrics})
	})
}
