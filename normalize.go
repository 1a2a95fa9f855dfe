package darija

import (
	"strings"
	"unicode"
)

// Normalize rewrites chat-alphabet text using the table.
//
// The input is lowercased once, then every multi-character token is replaced
// (longest first), then every single-character token. Replacement is plain
// substring substitution: no word-boundary anchoring, no pattern syntax.
// Digit tokens must run after the digraph pass, otherwise "d7" would decay
// into "dح" before it could be recognized as ظ.
//
// Runs of whitespace in the result are collapsed to a single ASCII space and
// leading/trailing whitespace is trimmed. Characters outside the table
// (Latin letters without a mapping, punctuation, Arabic script) pass through
// unchanged. Normalize never fails; empty input yields "".
func (t *Table) Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)
	for _, e := range t.multi {
		s = strings.ReplaceAll(s, e.Token, e.Replacement)
	}
	for _, e := range t.single {
		s = strings.ReplaceAll(s, e.Token, e.Replacement)
	}

	return collapseSpace(s)
}

// Normalize rewrites text using the default Darija table. See Table.Normalize.
func Normalize(text string) string {
	return defaultTable.Normalize(text)
}

// NormalizeAny is the fail-soft surface for callers handing over untyped
// pipeline data: string values are normalized, everything else (nil,
// numbers, structs) yields "". It never panics.
func NormalizeAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Normalize(s)
}

// collapseSpace rewrites each run of whitespace as a single ASCII space and
// drops leading and trailing whitespace.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if b.Len() > 0 {
				pending = true
			}
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
