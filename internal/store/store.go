// Package store persists the savings state in a SQLite key-value table.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hucha/internal/ledger"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Slot keys. Amounts are stored as decimal strings, entries as a JSON
// array. The shapes are a compatibility contract with earlier releases.
const (
	keyTarget   = "savings.target"
	keyProgress = "savings.progress"
	keyEntries  = "savings.entries"
)

// Store reads and writes the savings slots.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

var _ ledger.Persister = (*Store)(nil)

// Open opens or creates the database at the given path.
func Open(dbPath string, log zerolog.Logger) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadState reads the saved state, repairing whatever it can. Missing
// slots take the defaults for a fresh book; a slot that is present but
// unreadable degrades (amounts to 0, entries to empty) with a warning
// rather than failing the load.
func (s *Store) LoadState() (ledger.State, error) {
	slots, err := s.readSlots()
	if err != nil {
		return ledger.State{}, fmt.Errorf("reading slots: %w", err)
	}

	state := ledger.DefaultState()
	if raw, ok := slots[keyTarget]; ok {
		state.Target = s.parseAmount(keyTarget, raw)
	}
	if raw, ok := slots[keyProgress]; ok {
		state.Progress = s.parseAmount(keyProgress, raw)
	}
	if raw, ok := slots[keyEntries]; ok {
		entries, err := ledger.DecodeEntries(raw)
		if err != nil {
			s.log.Warn().Err(err).Str("key", keyEntries).Msg("unreadable entries, starting empty")
			entries = nil
		}
		state.Entries = entries
	}
	return state, nil
}

// SaveState writes all three slots in a single transaction.
func (s *Store) SaveState(state ledger.State) error {
	encoded, err := ledger.EncodeEntries(state.Entries)
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	slots := []struct {
		key   string
		value string
	}{
		{keyTarget, strconv.FormatInt(state.Target, 10)},
		{keyProgress, strconv.FormatInt(state.Progress, 10)},
		{keyEntries, encoded},
	}
	for _, slot := range slots {
		_, err = tx.Exec(`INSERT OR REPLACE INTO slots (key, value, updated_at)
			VALUES (?, ?, ?)`, slot.key, slot.value, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Slot returns the raw stored value for a key, reporting whether it exists.
func (s *Store) Slot(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) readSlots() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM slots")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		result[key] = value
	}
	return result, rows.Err()
}

func (s *Store) parseAmount(key, raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		s.log.Warn().Str("key", key).Str("value", raw).Msg("non-numeric value, using 0")
		return 0
	}
	return v
}
