package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/billdue/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const sqliteFileName = "people.db"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS people (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    card_last_four  TEXT NOT NULL,
    billing_date    INTEGER NOT NULL,
    amount          REAL NOT NULL,
    is_paid         INTEGER NOT NULL DEFAULT 0,
    position        INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_people_position ON people(position);
`

// SQLiteSlot persists the list in a local SQLite database. The position
// column preserves insertion order across round-trips.
type SQLiteSlot struct {
	db *sql.DB
}

// OpenSQLiteSlot opens or creates the database under dataDir.
func OpenSQLiteSlot(dataDir string) (*SQLiteSlot, error) {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, sqliteFileName)
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteSlot{db: db}, nil
}

// Load reads all people ordered by insertion position.
func (s *SQLiteSlot) Load() ([]model.Person, error) {
	rows, err := s.db.Query(`SELECT id, name, card_last_four, billing_date, amount, is_paid
		FROM people ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var people []model.Person
	for rows.Next() {
		var p model.Person
		var isPaid int
		if err := rows.Scan(&p.ID, &p.Name, &p.CardLastFour, &p.BillingDate, &p.Amount, &isPaid); err != nil {
			return nil, err
		}
		p.IsPaid = isPaid != 0
		people = append(people, p)
	}
	return people, rows.Err()
}

// Save replaces the table contents with the given list in order.
func (s *SQLiteSlot) Save(people []model.Person) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM people"); err != nil {
		return err
	}

	for i, p := range people {
		isPaid := 0
		if p.IsPaid {
			isPaid = 1
		}
		_, err := tx.Exec(`INSERT INTO people
			(id, name, card_last_four, billing_date, amount, is_paid, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.CardLastFour, p.BillingDate, p.Amount, isPaid, i,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close closes the database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
