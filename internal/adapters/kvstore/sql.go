package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var _ domain.KeyValueStore = (*SQLStore)(nil)

const DefaultTable = "kv_store"

// SQLStore keeps every key in one row of a two column table. The same
// queries run on SQLite and PostgreSQL; sqlx rebinds the placeholders.
type SQLStore struct {
	db    *sqlx.DB
	table string
}

// OpenSQLite opens (and creates if needed) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	store := &SQLStore{db: db, table: DefaultTable}
	if err := store.migrate(ctx, "BLOB"); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// OpenPostgres connects with the pgx driver and makes sure table exists.
func OpenPostgres(ctx context.Context, dsn, table string) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return NewPostgresWithDB(ctx, db, table)
}

func NewPostgresWithDB(ctx context.Context, db *sqlx.DB, table string) (*SQLStore, error) {
	if table == "" {
		table = DefaultTable
	}
	store := &SQLStore{db: db, table: table}
	if err := store.migrate(ctx, "BYTEA"); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLStore) migrate(ctx context.Context, blobType string) error {
	query := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            store_key  TEXT PRIMARY KEY,
            payload    %s NOT NULL,
            updated_at TIMESTAMP NOT NULL
        )`, pq.QuoteIdentifier(s.table), blobType)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := s.db.Rebind(fmt.Sprintf(
		`SELECT payload FROM %s WHERE store_key = ?`, pq.QuoteIdentifier(s.table)))

	var payload []byte
	if err := s.db.GetContext(ctx, &payload, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return payload, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	query := s.db.Rebind(fmt.Sprintf(`
        INSERT INTO %s (store_key, payload, updated_at) VALUES (?, ?, ?)
        ON CONFLICT (store_key) DO UPDATE
        SET payload = excluded.payload, updated_at = excluded.updated_at`,
		pq.QuoteIdentifier(s.table)))

	if value == nil {
		value = []byte{}
	}
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	query := s.db.Rebind(fmt.Sprintf(
		`DELETE FROM %s WHERE store_key = ?`, pq.QuoteIdentifier(s.table)))

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
