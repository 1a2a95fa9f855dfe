// Package bench provides evaluation utilities for chat-alphabet
// normalization against parallel corpora.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header contains metadata parsed from a corpus file header.
type Header struct {
	Source  string
	Dialect string
	Title   string
}

// Pair is one corpus line: raw chat-alphabet text and its expected
// normalized form.
type Pair struct {
	Raw  string
	Want string
}

// Set is a parsed corpus file.
type Set struct {
	ID     string
	Header Header
	Pairs  []Pair
}

// ParseHeader extracts metadata from corpus header comments. Header lines
// start with '#'; the first non-comment line begins the body. Returns the
// header, the remaining text, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Dialect:"); ok {
			h.Dialect = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	body := strings.TrimSpace(text[bodyStart:])
	return h, body, nil
}

// ParsePairs parses tab-separated raw/expected lines. Blank lines are
// skipped; a line without a tab is an error.
func ParsePairs(body string) ([]Pair, error) {
	var pairs []Pair
	scanner := bufio.NewScanner(strings.NewReader(body))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		raw, want, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: missing tab separator", lineNo)
		}
		pairs = append(pairs, Pair{
			Raw:  strings.TrimSpace(raw),
			Want: strings.TrimSpace(want),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan pairs: %w", err)
	}
	return pairs, nil
}

// LoadCorpus loads all .tsv corpus files from a directory.
func LoadCorpus(dir string) ([]*Set, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.tsv"))
	if err != nil {
		return nil, fmt.Errorf("listing corpus files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no corpus files in %s", dir)
	}

	var sets []*Set
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		header, body, err := ParseHeader(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		pairs, err := ParsePairs(body)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		sets = append(sets, &Set{ID: id, Header: header, Pairs: pairs})
	}

	return sets, nil
}
