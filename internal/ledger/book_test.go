package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type memStore struct {
	saves []State
	err   error
}

func (m *memStore) SaveState(s State) error {
	if m.err != nil {
		return m.err
	}
	m.saves = append(m.saves, s)
	return nil
}

func newTestBook(t *testing.T, state State) (*Book, *memStore) {
	t.Helper()
	store := &memStore{}
	return NewBook(state, store, zerolog.Nop()), store
}

func TestAddMovesProgress(t *testing.T) {
	b, store := newTestBook(t, DefaultState())

	entry, err := b.Add(2000, "wheel fund")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if entry.Amount != 2000 || entry.Label != "wheel fund" {
		t.Errorf("entry = %+v, want amount 2000 label %q", entry, "wheel fund")
	}
	if entry.At.IsZero() {
		t.Error("entry timestamp not set")
	}
	if got := b.Progress(); got != 27000 {
		t.Errorf("progress = %d, want 27000", got)
	}
	if got := b.Entries(); len(got) != 1 || got[0].Amount != 2000 {
		t.Errorf("entries = %+v, want the new entry first", got)
	}
	if len(store.saves) != 1 {
		t.Fatalf("saves = %d, want 1", len(store.saves))
	}
}

func TestAddPrependsNewest(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())

	if _, err := b.Add(1000, "first"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := b.Add(500, "second"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	entries := b.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Label != "second" || entries[1].Label != "first" {
		t.Errorf("order = [%s %s], want newest first", entries[0].Label, entries[1].Label)
	}
}

func TestAddZeroAmountRejected(t *testing.T) {
	b, store := newTestBook(t, DefaultState())

	if _, err := b.Add(0, "nothing"); !errors.Is(err, ErrZeroAmount) {
		t.Fatalf("Add(0) error = %v, want ErrZeroAmount", err)
	}
	if got := b.Progress(); got != DefaultProgress {
		t.Errorf("progress = %d, want %d", got, DefaultProgress)
	}
	if len(store.saves) != 0 {
		t.Errorf("saves = %d, want 0", len(store.saves))
	}
}

func TestAddWithdrawal(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())

	if _, err := b.Add(-2000, "repair"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := b.Progress(); got != 23000 {
		t.Errorf("progress = %d, want 23000", got)
	}
}

func TestEditMovesProgressByDelta(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())
	if _, err := b.Add(2000, "typo"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := b.Edit(0, 500, "fixed"); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if got := b.Progress(); got != 25500 {
		t.Errorf("progress = %d, want 25500", got)
	}
	entries := b.Entries()
	if entries[0].Amount != 500 || entries[0].Label != "fixed" {
		t.Errorf("entry = %+v, want amount 500 label fixed", entries[0])
	}
}

func TestEditKeepsTimestamp(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	b, _ := newTestBook(t, State{
		Target:   100000,
		Progress: 27000,
		Entries:  []Entry{{Amount: 2000, Label: "old", At: at}},
	})

	if err := b.Edit(0, 3000, "new"); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if got := b.Entries()[0].At; !got.Equal(at) {
		t.Errorf("at = %v, want original %v", got, at)
	}
}

func TestEditAllowsZeroAmount(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())
	if _, err := b.Add(2000, ""); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := b.Edit(0, 0, "void"); err != nil {
		t.Fatalf("Edit(0 amount) error = %v", err)
	}
	if got := b.Progress(); got != DefaultProgress {
		t.Errorf("progress = %d, want %d", got, DefaultProgress)
	}
}

func TestEditIndexOutOfRange(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())

	for _, index := range []int{-1, 0, 5} {
		if err := b.Edit(index, 100, ""); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Edit(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
	}
}

func TestDeleteRollsProgressBack(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())
	if _, err := b.Add(2000, "oops"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := b.Delete(0); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := b.Progress(); got != DefaultProgress {
		t.Errorf("progress = %d, want %d", got, DefaultProgress)
	}
	if got := b.Entries(); len(got) != 0 {
		t.Errorf("entries = %+v, want empty", got)
	}
}

func TestDeleteIndexOutOfRange(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())

	if err := b.Delete(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Delete(0) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestClearResetsProgress(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())
	if _, err := b.Add(2000, ""); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := b.Add(-500, ""); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := b.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := b.Progress(); got != 0 {
		t.Errorf("progress = %d, want 0", got)
	}
	if got := b.Entries(); len(got) != 0 {
		t.Errorf("entries = %+v, want empty", got)
	}
	if got := b.Target(); got != DefaultTarget {
		t.Errorf("target = %d, want %d untouched", got, DefaultTarget)
	}
}

func TestSetTargetClampsNegative(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())

	if err := b.SetTarget(-500); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}
	if got := b.Target(); got != 0 {
		t.Errorf("target = %d, want 0", got)
	}
}

func TestPersistFailureKeepsState(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	b := NewBook(DefaultState(), store, zerolog.Nop())

	if _, err := b.Add(2000, ""); err == nil {
		t.Fatal("Add() expected error from failing store")
	}
	if got := b.Progress(); got != DefaultProgress {
		t.Errorf("progress = %d, want %d after failed save", got, DefaultProgress)
	}
	if got := b.Entries(); len(got) != 0 {
		t.Errorf("entries = %+v, want empty after failed save", got)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())
	if _, err := b.Add(1000, "keep"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	entries := b.Entries()
	entries[0].Label = "mutated"

	if got := b.Entries()[0].Label; got != "keep" {
		t.Errorf("label = %q, want %q", got, "keep")
	}
}

func TestRemaining(t *testing.T) {
	b, _ := newTestBook(t, DefaultState())
	if got := b.Remaining(); got != 75000 {
		t.Errorf("remaining = %d, want 75000", got)
	}

	if err := b.SetTarget(20000); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}
	if got := b.Remaining(); got != 0 {
		t.Errorf("remaining = %d, want 0 on overshoot", got)
	}
}

func TestBalanceHistoryReplaysOldestFirst(t *testing.T) {
	state := State{
		Target:   100000,
		Progress: 3500,
		Entries: []Entry{
			{Amount: 500, Label: "newest"},
			{Amount: 2000},
			{Amount: 1000, Label: "oldest"},
		},
	}

	got := state.BalanceHistory(10)
	want := []float64{1000, 3000, 3500}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBalanceHistoryStartsFromUnaccountedProgress(t *testing.T) {
	state := State{
		Progress: 5000,
		Entries:  []Entry{{Amount: 500}, {Amount: 2000}},
	}

	got := state.BalanceHistory(10)
	want := []float64{4500, 5000}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("history = %v, want %v", got, want)
	}
}

func TestBalanceHistoryTrimsToNewest(t *testing.T) {
	state := State{
		Progress: 3500,
		Entries:  []Entry{{Amount: 500}, {Amount: 2000}, {Amount: 1000}},
	}

	got := state.BalanceHistory(2)
	want := []float64{3000, 3500}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("history = %v, want %v", got, want)
	}

	if got := state.BalanceHistory(0); got != nil {
		t.Errorf("BalanceHistory(0) = %v, want nil", got)
	}
	if got := (State{}).BalanceHistory(5); got != nil {
		t.Errorf("empty ledger history = %v, want nil", got)
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name     string
		progress int64
		target   int64
		want     float64
	}{
		{"quarter", 25000, 100000, 0.25},
		{"complete", 100000, 100000, 1},
		{"overshoot caps", 150000, 100000, 1},
		{"zero target zero progress", 0, 0, 0},
		{"zero target with progress", 500, 0, 1},
		{"negative progress floors", -500, 100000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentOf(tt.progress, tt.target); got != tt.want {
				t.Errorf("PercentOf(%d, %d) = %v, want %v", tt.progress, tt.target, got, tt.want)
			}
		})
	}
}
