package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults used when the store has no saved state yet.
const (
	DefaultTarget   int64 = 100000
	DefaultProgress int64 = 25000
)

var (
	// ErrZeroAmount rejects new entries with amount 0. Edits may set 0.
	ErrZeroAmount = errors.New("entry amount must be non-zero")

	// ErrIndexOutOfRange reports an entry index outside the ledger.
	ErrIndexOutOfRange = errors.New("entry index out of range")
)

// State is a full snapshot of the book. Entries are newest first.
type State struct {
	Target   int64
	Progress int64
	Entries  []Entry
}

// DefaultState is the state of a book that has never been saved.
func DefaultState() State {
	return State{Target: DefaultTarget, Progress: DefaultProgress}
}

func (s State) clone() State {
	out := s
	out.Entries = make([]Entry, len(s.Entries))
	copy(out.Entries, s.Entries)
	return out
}

// Persister stores a complete snapshot. SaveState must write target,
// progress and entries together or not at all.
type Persister interface {
	SaveState(State) error
}

// Book applies mutations to the savings state. Every mutation is
// persisted before it becomes visible; on a persist failure the book
// keeps its previous state and returns the error.
type Book struct {
	state State
	store Persister
	log   zerolog.Logger
}

// NewBook wraps an already-loaded state.
func NewBook(state State, store Persister, log zerolog.Logger) *Book {
	return &Book{state: state.clone(), store: store, log: log}
}

// Add prepends a new entry and moves progress by its amount.
func (b *Book) Add(amount int64, label string) (Entry, error) {
	if amount == 0 {
		return Entry{}, ErrZeroAmount
	}

	e := Entry{Amount: amount, Label: strings.TrimSpace(label), At: time.Now()}
	next := b.state.clone()
	next.Entries = append([]Entry{e}, next.Entries...)
	next.Progress += amount

	if err := b.persist(next); err != nil {
		return Entry{}, err
	}
	b.log.Debug().Int64("amount", amount).Str("label", e.Label).Msg("entry added")
	return e, nil
}

// Edit replaces the entry at index, keeping its original timestamp.
// Progress moves by the difference between the new and old amounts.
// Unlike Add, an edit may set the amount to 0.
func (b *Book) Edit(index int, amount int64, label string) error {
	if index < 0 || index >= len(b.state.Entries) {
		return ErrIndexOutOfRange
	}

	next := b.state.clone()
	old := next.Entries[index]
	next.Entries[index] = Entry{Amount: amount, Label: strings.TrimSpace(label), At: old.At}
	next.Progress += amount - old.Amount

	if err := b.persist(next); err != nil {
		return err
	}
	b.log.Debug().Int("index", index).Int64("amount", amount).Msg("entry edited")
	return nil
}

// Delete removes the entry at index and rolls its amount out of progress.
func (b *Book) Delete(index int) error {
	if index < 0 || index >= len(b.state.Entries) {
		return ErrIndexOutOfRange
	}

	next := b.state.clone()
	removed := next.Entries[index]
	next.Entries = append(next.Entries[:index], next.Entries[index+1:]...)
	next.Progress -= removed.Amount

	if err := b.persist(next); err != nil {
		return err
	}
	b.log.Debug().Int("index", index).Int64("amount", removed.Amount).Msg("entry deleted")
	return nil
}

// Clear removes every entry and resets progress to zero.
func (b *Book) Clear() error {
	next := b.state.clone()
	next.Entries = nil
	next.Progress = 0

	if err := b.persist(next); err != nil {
		return err
	}
	b.log.Debug().Msg("ledger cleared")
	return nil
}

// SetTarget updates the goal. Negative values are raised to zero.
func (b *Book) SetTarget(target int64) error {
	if target < 0 {
		target = 0
	}

	next := b.state.clone()
	next.Target = target

	if err := b.persist(next); err != nil {
		return err
	}
	b.log.Debug().Int64("target", target).Msg("target updated")
	return nil
}

func (b *Book) persist(next State) error {
	if err := b.store.SaveState(next); err != nil {
		b.log.Error().Err(err).Msg("save failed, keeping previous state")
		return fmt.Errorf("saving state: %w", err)
	}
	b.state = next
	return nil
}

// Target returns the current goal amount.
func (b *Book) Target() int64 { return b.state.Target }

// Progress returns the current saved amount.
func (b *Book) Progress() int64 { return b.state.Progress }

// Entries returns a copy of the ledger, newest first.
func (b *Book) Entries() []Entry {
	out := make([]Entry, len(b.state.Entries))
	copy(out, b.state.Entries)
	return out
}

// State returns a snapshot of the whole book.
func (b *Book) State() State { return b.state.clone() }

// Remaining is how far progress sits below the target, never negative.
func (b *Book) Remaining() int64 {
	if r := b.state.Target - b.state.Progress; r > 0 {
		return r
	}
	return 0
}

// Percent is progress over target in [0, 1]. Overshoot caps at 1 and
// a zero target counts as complete only when progress is positive.
func (b *Book) Percent() float64 {
	return PercentOf(b.state.Progress, b.state.Target)
}

// BalanceHistory replays the ledger oldest to newest and returns the
// running balance after each entry, trimmed to the last max points.
// The starting balance is whatever part of progress the entries do not
// account for, so histories survive a cleared or hand-edited ledger.
func (s State) BalanceHistory(max int) []float64 {
	if len(s.Entries) == 0 || max <= 0 {
		return nil
	}

	var sum int64
	for _, e := range s.Entries {
		sum += e.Amount
	}
	running := s.Progress - sum

	values := make([]float64, 0, len(s.Entries))
	for i := len(s.Entries) - 1; i >= 0; i-- {
		running += s.Entries[i].Amount
		values = append(values, float64(running))
	}

	if len(values) > max {
		values = values[len(values)-max:]
	}
	return values
}

// PercentOf computes the completion ratio for arbitrary values.
func PercentOf(progress, target int64) float64 {
	if target <= 0 {
		if progress > 0 {
			return 1
		}
		return 0
	}
	p := float64(progress) / float64(target)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
