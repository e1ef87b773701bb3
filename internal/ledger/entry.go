// Package ledger owns the savings book: the target, the running progress,
// and the ordered list of entries, kept consistent at every step.
package ledger

import (
	"encoding/json"
	"time"
)

// Entry is a single recorded contribution. A negative amount is a
// withdrawal. Entries are replaced wholly on edit, never patched.
type Entry struct {
	Amount int64
	Label  string
	At     time.Time
}

// wireEntry is the persisted JSON shape. The label travels as
// "partName" and is null when empty; dates are RFC 3339 strings.
type wireEntry struct {
	Amount   int64   `json:"amount"`
	PartName *string `json:"partName"`
	Date     string  `json:"date"`
}

// EncodeEntries serializes entries (newest first) to the stored JSON form.
func EncodeEntries(entries []Entry) (string, error) {
	wire := make([]wireEntry, len(entries))
	for i, e := range entries {
		w := wireEntry{
			Amount: e.Amount,
			Date:   e.At.UTC().Format(time.RFC3339),
		}
		if e.Label != "" {
			label := e.Label
			w.PartName = &label
		}
		wire[i] = w
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeEntries parses the stored JSON form. A JSON-level failure is
// returned to the caller, which degrades to an empty ledger; an entry
// with an unreadable date keeps a zero timestamp rather than poisoning
// the rest of the ledger.
func DecodeEntries(value string) ([]Entry, error) {
	var wire []wireEntry
	if err := json.Unmarshal([]byte(value), &wire); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(wire))
	for i, w := range wire {
		e := Entry{Amount: w.Amount}
		if w.PartName != nil {
			e.Label = *w.PartName
		}
		if t, err := time.Parse(time.RFC3339, w.Date); err == nil {
			e.At = t
		}
		entries[i] = e
	}
	return entries, nil
}
