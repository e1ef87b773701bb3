package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"hucha/internal/ledger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "hucha.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func putSlot(t *testing.T, s *Store, key, value string) {
	t.Helper()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)`, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("putSlot(%s) error = %v", key, err)
	}
}

func TestLoadStateFreshDB(t *testing.T) {
	s := openTestStore(t)

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if state.Target != ledger.DefaultTarget {
		t.Errorf("target = %d, want %d", state.Target, ledger.DefaultTarget)
	}
	if state.Progress != ledger.DefaultProgress {
		t.Errorf("progress = %d, want %d", state.Progress, ledger.DefaultProgress)
	}
	if len(state.Entries) != 0 {
		t.Errorf("entries = %+v, want empty", state.Entries)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "hucha.db")
	s, err := Open(dbPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	saved := ledger.State{
		Target:   120000,
		Progress: 27500,
		Entries: []ledger.Entry{
			{Amount: 2500, Label: "bonus", At: at},
			{Amount: -1000, At: at.Add(-time.Hour)},
		},
	}
	if err := s.SaveState(saved); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = Open(dbPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer func() { _ = s.Close() }()

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if state.Target != saved.Target || state.Progress != saved.Progress {
		t.Errorf("state = %d/%d, want %d/%d", state.Target, state.Progress, saved.Target, saved.Progress)
	}
	if len(state.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(state.Entries))
	}
	if state.Entries[0].Label != "bonus" || state.Entries[0].Amount != 2500 {
		t.Errorf("first entry = %+v, want bonus/2500", state.Entries[0])
	}
	if state.Entries[1].Label != "" || state.Entries[1].Amount != -1000 {
		t.Errorf("second entry = %+v, want unlabeled/-1000", state.Entries[1])
	}
}

func TestSaveStateWireFormat(t *testing.T) {
	s := openTestStore(t)

	err := s.SaveState(ledger.State{
		Target:   100000,
		Progress: 26000,
		Entries:  []ledger.Entry{{Amount: 1000, At: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)}},
	})
	if err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	for key, want := range map[string]string{
		"savings.target":   "100000",
		"savings.progress": "26000",
	} {
		got, ok, err := s.Slot(key)
		if err != nil || !ok {
			t.Fatalf("Slot(%s) = %q, %v, %v", key, got, ok, err)
		}
		if got != want {
			t.Errorf("Slot(%s) = %q, want %q", key, got, want)
		}
	}

	raw, ok, err := s.Slot("savings.entries")
	if err != nil || !ok {
		t.Fatalf("Slot(savings.entries) missing: %v, %v", ok, err)
	}
	var wire []map[string]any
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		t.Fatalf("entries slot is not a JSON array: %v", err)
	}
	if len(wire) != 1 {
		t.Fatalf("wire entries = %d, want 1", len(wire))
	}
	for _, field := range []string{"amount", "partName", "date"} {
		if _, present := wire[0][field]; !present {
			t.Errorf("wire entry missing %q field: %s", field, raw)
		}
	}
	if wire[0]["partName"] != nil {
		t.Errorf("partName = %v, want null for unlabeled entry", wire[0]["partName"])
	}
	if wire[0]["date"] != "2025-03-14T09:30:00Z" {
		t.Errorf("date = %v, want RFC 3339 UTC", wire[0]["date"])
	}
}

func TestLoadStateNonNumericAmount(t *testing.T) {
	s := openTestStore(t)
	putSlot(t, s, "savings.target", "abc")

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if state.Target != 0 {
		t.Errorf("target = %d, want 0 for non-numeric slot", state.Target)
	}
	if state.Progress != ledger.DefaultProgress {
		t.Errorf("progress = %d, want default %d", state.Progress, ledger.DefaultProgress)
	}
}

func TestLoadStateCorruptEntries(t *testing.T) {
	s := openTestStore(t)
	putSlot(t, s, "savings.progress", "31000")
	putSlot(t, s, "savings.entries", "{not json")

	state, err := s.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if len(state.Entries) != 0 {
		t.Errorf("entries = %+v, want empty for corrupt slot", state.Entries)
	}
	if state.Progress != 31000 {
		t.Errorf("progress = %d, want 31000 kept from its own slot", state.Progress)
	}
}

func TestOpenCreatesDataDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "hucha.db")

	s, err := Open(dbPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.SaveState(ledger.DefaultState()); err != nil {
		t.Errorf("SaveState() error = %v", err)
	}
}

func TestSlotMissing(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Slot("savings.target")
	if err != nil {
		t.Fatalf("Slot() error = %v", err)
	}
	if ok {
		t.Error("Slot() ok = true, want false on fresh db")
	}
}
