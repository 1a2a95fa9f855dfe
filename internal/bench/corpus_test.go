package bench

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFile = `# Source: test
# Dialect: Moroccan Darija
# Title: greetings

3afak	عafak
d7	ظ
`

func TestParseHeader(t *testing.T) {
	header, body, err := ParseHeader(sampleFile)
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}

	if header.Source != "test" {
		t.Errorf("Source = %q, want %q", header.Source, "test")
	}
	if header.Dialect != "Moroccan Darija" {
		t.Errorf("Dialect = %q, want %q", header.Dialect, "Moroccan Darija")
	}
	if header.Title != "greetings" {
		t.Errorf("Title = %q, want %q", header.Title, "greetings")
	}
	if body == "" {
		t.Error("expected non-empty body")
	}
}

func TestParseHeader_MissingSource(t *testing.T) {
	_, _, err := ParseHeader("# Title: x\n\nraw\twant\n")
	if err == nil {
		t.Error("expected error for missing Source")
	}
}

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs("3afak\tعafak\n\nd7\tظ\n")
	if err != nil {
		t.Fatalf("ParsePairs failed: %v", err)
	}

	want := []Pair{
		{Raw: "3afak", Want: "عafak"},
		{Raw: "d7", Want: "ظ"},
	}
	if len(pairs) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(pairs))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, pairs[i], want[i])
		}
	}
}

func TestParsePairs_MissingTab(t *testing.T) {
	_, err := ParsePairs("no tab here\n")
	if err == nil {
		t.Error("expected error for line without tab")
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "greetings.tsv"), []byte(sampleFile), 0o600); err != nil {
		t.Fatalf("writing corpus file: %v", err)
	}

	sets, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus failed: %v", err)
	}

	if len(sets) != 1 {
		t.Fatalf("expected 1 set, got %d", len(sets))
	}
	if sets[0].ID != "greetings" {
		t.Errorf("ID = %q, want %q", sets[0].ID, "greetings")
	}
	if len(sets[0].Pairs) != 2 {
		t.Errorf("expected 2 pairs, got %d", len(sets[0].Pairs))
	}
}

func TestLoadCorpus_EmptyDir(t *testing.T) {
	if _, err := LoadCorpus(t.TempDir()); err == nil {
		t.Error("expected error for directory without corpus files")
	}
}
