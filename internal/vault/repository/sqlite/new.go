// Package sqlite persists vault items and conversation groups in a
// local SQLite database, one row per item unit.
package sqlite

import (
	"database/sql"
	"fmt"

	// Import the SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/awesomefanda/adjnt/internal/vault"
	"github.com/awesomefanda/adjnt/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS groups (
	id TEXT PRIMARY KEY,
	platform TEXT NOT NULL DEFAULT '',
	admin_id TEXT NOT NULL DEFAULT '',
	is_active INTEGER NOT NULL DEFAULT 1
);
CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	store TEXT NOT NULL,
	conversation_id TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_items_conversation ON items(conversation_id, name, store);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Ensure implRepository implements vault.Repository interface
var _ vault.Repository = (*implRepository)(nil)

// New opens (creating if needed) the vault database at dsn and prepares
// the schema. The modernc driver wants each pragma prefixed with
// `_pragma=`; WAL journal mode plus a single connection avoids locking
// issues under concurrent units of work.
func New(dsn string, l log.Logger) (vault.Repository, *sql.DB, error) {
	if dsn == "" {
		return nil, nil, fmt.Errorf("vault sqlite: dsn required")
	}

	db, err := sql.Open("sqlite", dsn+"?_pragma=foreign_keys(0)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, nil, fmt.Errorf("vault sqlite: failed to open %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("vault sqlite: failed to prepare schema: %w", err)
	}

	return &implRepository{db: db, l: l}, db, nil
}
