package cache

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists payloads in a single-table sqlite database so the
// catalog survives process restarts on the pharmacy's box.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS cache_entries (
		key  TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		ts   INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Read(ctx context.Context, key string) (Payload, bool) {
	var data []byte
	var ts int64
	err := s.db.QueryRowContext(ctx,
		`SELECT data, ts FROM cache_entries WHERE key = ?`, key).Scan(&data, &ts)
	if err != nil {
		return Payload{}, false
	}
	if !json.Valid(data) {
		// corrupt row: treat as miss
		return Payload{}, false
	}
	return Payload{Data: data, Timestamp: ts}, true
}

func (s *SQLiteStore) Write(ctx context.Context, key string, p Payload) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cache_entries (key, data, ts) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, ts = excluded.ts`,
		key, []byte(p.Data), p.Timestamp)
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
