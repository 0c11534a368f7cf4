// Package storage persists the combined catalog and history as a single JSON
// blob in a local sqlite key-value table.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	_ "modernc.org/sqlite"

	"github.com/hungryops/lunchpick/pkg/catalog"
	"github.com/hungryops/lunchpick/pkg/history"
)

// ErrNotFound is returned by Load when no blob has been written yet, or when
// the stored blob does not decode. The caller is expected to seed defaults.
var ErrNotFound = errors.New("no persisted state")

// stateKey is the fixed namespace key the blob lives under.
const stateKey = "lunchpick/state"

// State is the persisted shape: the whole catalog plus the pick history, as
// one last-writer-wins unit. There is no version field; any blob that decodes
// is accepted as-is.
type State struct {
	Items   []catalog.Item  `json:"items"`
	History []history.Entry `json:"history"`
}

type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS blobs (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// Save overwrites the state blob unconditionally. The upsert is a single
// statement, so readers never observe a half-written blob.
func (d *DB) Save(ctx context.Context, st State) error {
	if st.Items == nil {
		st.Items = []catalog.Item{}
	}
	if st.History == nil {
		st.History = []history.Entry{}
	}
	blob, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO blobs(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		stateKey, blob)
	return err
}

// Load reads the state blob back. A missing key and an unparsable blob both
// come back as ErrNotFound: either way the caller starts from defaults.
func (d *DB) Load(ctx context.Context) (State, error) {
	var blob []byte
	err := d.sql.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, stateKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, err
	}
	var st State
	if err := json.Unmarshal(blob, &st); err != nil {
		return State{}, ErrNotFound
	}
	return st, nil
}
