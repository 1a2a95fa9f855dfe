package darija

import (
	"fmt"
	"sort"
)

// Entry maps one chat-alphabet token to its Arabic-script replacement.
type Entry struct {
	Token       string
	Replacement string
}

// Table is an immutable, ordered token mapping. Construct one with NewTable;
// the zero value is not usable. A Table never changes after construction and
// is safe for concurrent use.
type Table struct {
	entries []Entry // construction order, for Entries()
	multi   []Entry // length > 1 tokens, longest first
	single  []Entry // length == 1 tokens
}

// defaultEntries is the supported Moroccan Darija chat-alphabet dataset.
// Digraphs pair a base consonant with a digit (d7, z7, s5, s9, d9) or a
// second letter (sh, dh); single digits stand for Arabic consonants that
// have no Latin letter. Several tokens share a replacement: z7 and d7 are
// both used for ظ in the wild, s5 and s9 for ص.
var defaultEntries = []Entry{
	{"sh", "ش"},
	{"dh", "ذ"},
	{"d7", "ظ"},
	{"z7", "ظ"},
	{"s5", "ص"},
	{"s9", "ص"},
	{"d9", "ض"},
	{"2", "ء"},
	{"3", "ع"},
	{"5", "خ"},
	{"7", "ح"},
	{"9", "ق"},
}

var defaultTable = mustTable(defaultEntries)

// Default returns the built-in Darija mapping table.
func Default() *Table {
	return defaultTable
}

// NewTable builds a Table from entries. Tokens must be non-empty, unique,
// and consist only of lowercase ASCII letters and digits; replacements must
// be non-empty. The input slice is copied, so later mutation of entries does
// not affect the returned Table.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{entries: make([]Entry, len(entries))}
	copy(t.entries, entries)

	seen := make(map[string]bool, len(entries))
	for _, e := range t.entries {
		if e.Token == "" {
			return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
		}
		if e.Replacement == "" {
			return nil, fmt.Errorf("%w: token %q has empty replacement", ErrInvalidToken, e.Token)
		}
		for i := 0; i < len(e.Token); i++ {
			c := e.Token[i]
			if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
				return nil, fmt.Errorf("%w: token %q contains %q", ErrInvalidToken, e.Token, c)
			}
		}
		if seen[e.Token] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateToken, e.Token)
		}
		seen[e.Token] = true

		if len(e.Token) > 1 {
			t.multi = append(t.multi, e)
		} else {
			t.single = append(t.single, e)
		}
	}

	// Longest token first so that a longer token is never corrupted by the
	// replacement of one of its substrings. Equal lengths are ordered
	// lexicographically to keep the pass deterministic regardless of the
	// order entries were supplied in.
	sort.Slice(t.multi, func(i, j int) bool {
		a, b := t.multi[i].Token, t.multi[j].Token
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return t, nil
}

func mustTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Entries returns a copy of the table's entries in construction order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
