package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	t.Parallel()
	pg := NewStore(nil, Postgres, 0, nil)
	require.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = $2", pg.Rebind("SELECT * FROM t WHERE a = ? AND b = ?"))
	lite := NewStore(nil, SQLite, 0, nil)
	require.Equal(t, "a = ?", lite.Rebind("a = ?"))
}

func TestRowAccessors(t *testing.T) {
	t.Parallel()
	r := Row{"s": []byte("x"), "n": int64(7), "b": int64(1), "pb": true, "nil": nil, "ns": "12"}
	require.Equal(t, "x", r.String("s"))
	require.Equal(t, "", r.String("nil"))
	require.Equal(t, int64(7), r.Int("n"))
	require.Equal(t, int64(12), r.Int("ns"))
	require.True(t, r.Bool("b"))
	require.True(t, r.Bool("pb"))
	require.False(t, r.Bool("missing"))
}

func TestStoreAgainstSQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrationsWithDB(db, SQLite))
	require.NoError(t, RunMigrationsWithDB(db, SQLite))

	v, dirty, err := MigrationVersion(db, SQLite)
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), v)

	s := NewStore(db, SQLite, time.Second, nil)
	_, err = s.Exec(ctx, "user.create", `INSERT INTO users (name) VALUES (?)`, "ola")
	require.NoError(t, err)
	id, err := s.InsertID(ctx, "shelf.create", `INSERT INTO pantry_shelf (name, user_name) VALUES (?, ?) RETURNING id`, "Fridge", "ola")
	require.NoError(t, err)
	require.Positive(t, id)

	rows, err := s.Query(ctx, "shelf.list", `SELECT id, name FROM pantry_shelf WHERE user_name = ?`, "ola")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, id, rows[0].Int("id"))
	require.Equal(t, "Fridge", rows[0].String("name"))

	boom := errors.New("boom")
	err = s.WithTx(ctx, func(tx *Store) error {
		if _, err := tx.Exec(ctx, "shelf.rename", `UPDATE pantry_shelf SET name = ? WHERE id = ?`, "Cooler", id); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	rows, err = s.Query(ctx, "shelf.list", `SELECT name FROM pantry_shelf WHERE id = ?`, id)
	require.NoError(t, err)
	require.Equal(t, "Fridge", rows[0].String("name"))

	_, err = s.Exec(ctx, "bad", `INSERT INTO nope VALUES (1)`)
	require.ErrorContains(t, err, "bad:")
}

func TestMigrationsEmbedEveryDialect(t *testing.T) {
	t.Parallel()
	for _, d := range []Dialect{SQLite, Postgres} {
		entries, err := fs.ReadDir(migrations, migrationsDir(d))
		require.NoError(t, err, d)
		require.NotEmpty(t, entries, d)
	}
}

func TestRunMigrationsOnFreshSQLite(t *testing.T) {
	t.Parallel()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	v, _, err := MigrationVersion(db, SQLite)
	require.NoError(t, err)
	require.Zero(t, v)
	require.NoError(t, RunMigrationsWithDB(db, SQLite))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	require.Zero(t, n)
}

func TestWithTxHonorsContext(t *testing.T) {
	t.Parallel()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err = WithTx(ctx, db, func(*sql.Tx) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}
