package darija

import (
	"errors"
	"testing"
)

func TestNewTable(t *testing.T) {
	table, err := NewTable([]Entry{
		{"sh", "ش"},
		{"7", "ح"},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", table.Len())
	}
}

func TestNewTable_DuplicateToken(t *testing.T) {
	_, err := NewTable([]Entry{
		{"sh", "ش"},
		{"sh", "س"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate token")
	}
	if !errors.Is(err, ErrDuplicateToken) {
		t.Errorf("expected ErrDuplicateToken, got: %v", err)
	}
}

func TestNewTable_InvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{"empty token", Entry{"", "ش"}},
		{"empty replacement", Entry{"sh", ""}},
		{"uppercase token", Entry{"Sh", "ش"}},
		{"token with space", Entry{"s h", "ش"}},
		{"non-ascii token", Entry{"ş", "ش"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable([]Entry{tc.entry})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got: %v", err)
			}
		})
	}
}

func TestNewTable_ManyToOne(t *testing.T) {
	// Distinct tokens may share a replacement.
	table, err := NewTable([]Entry{
		{"s5", "ص"},
		{"s9", "ص"},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if got := table.Normalize("s5 s9"); got != "ص ص" {
		t.Errorf("Normalize(%q) = %q, want %q", "s5 s9", got, "ص ص")
	}
}

func TestNewTable_LongestTokenFirst(t *testing.T) {
	// A shorter token that is a prefix of a longer one must not shadow it,
	// regardless of the order entries were supplied in.
	orders := [][]Entry{
		{{"ab", "Y"}, {"abc", "X"}},
		{{"abc", "X"}, {"ab", "Y"}},
	}

	for _, entries := range orders {
		table, err := NewTable(entries)
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		if got := table.Normalize("abc"); got != "X" {
			t.Errorf("Normalize(%q) = %q, want %q", "abc", got, "X")
		}
	}
}

func TestNewTable_EqualLengthTieBreak(t *testing.T) {
	// Equal-length overlapping tokens apply in lexicographic order, so the
	// result does not depend on construction order.
	orders := [][]Entry{
		{{"ab", "1"}, {"ba", "2"}},
		{{"ba", "2"}, {"ab", "1"}},
	}

	for _, entries := range orders {
		table, err := NewTable(entries)
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		if got := table.Normalize("aba"); got != "1a" {
			t.Errorf("Normalize(%q) = %q, want %q", "aba", got, "1a")
		}
	}
}

func TestTable_EntriesCopy(t *testing.T) {
	table := Default()
	entries := table.Entries()
	if len(entries) == 0 {
		t.Fatal("expected non-empty default table")
	}

	// Mutating the returned slice must not affect the table.
	entries[0] = Entry{"zz", "!"}
	if got := table.Normalize("zz"); got != "zz" {
		t.Errorf("table was mutated through Entries: Normalize(%q) = %q", "zz", got)
	}
}

func TestDefault_Dataset(t *testing.T) {
	table := Default()
	if table.Len() != 12 {
		t.Errorf("expected 12 entries in default table, got %d", table.Len())
	}

	var multi, single int
	for _, e := range table.Entries() {
		if len(e.Token) > 1 {
			multi++
		} else {
			single++
		}
	}
	if multi != 7 || single != 5 {
		t.Errorf("expected 7 digraphs and 5 digits, got %d and %d", multi, single)
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	entries := []Entry{{"sh", "ش"}}
	table, err := NewTable(entries)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	entries[0] = Entry{"sh", "!"}
	if got := table.Normalize("sh"); got != "ش" {
		t.Errorf("table observed caller mutation: Normalize(%q) = %q", "sh", got)
	}
}
