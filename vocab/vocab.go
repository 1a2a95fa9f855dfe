// Package vocab provides the word-level vocabulary used to encode text for
// the standardization model and decode its output.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Special token strings required (or recognized) in a vocabulary file.
const (
	bosToken = "<s>"
	eosToken = "</s>"
	unkToken = "<unk>"
	padToken = "<pad>"
)

// Vocab maps between token strings and model IDs. It is immutable after
// Load and safe for concurrent use.
type Vocab struct {
	tokenToID map[string]int32
	idToToken map[int32]string

	bosID int32
	eosID int32
	unkID int32
	padID int32 // -1 if the vocabulary has no <pad>
}

// Load reads a vocabulary from a JSON file mapping token strings to integer
// IDs. The vocabulary must define <s>, </s> and <unk>; <pad> is optional.
// Duplicate IDs are rejected since decoding requires a unique reverse
// mapping.
func Load(path string) (*Vocab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}

	var raw map[string]int32
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}

	v := &Vocab{
		tokenToID: raw,
		idToToken: make(map[int32]string, len(raw)),
		padID:     -1,
	}
	for tok, id := range raw {
		if prev, ok := v.idToToken[id]; ok {
			return nil, fmt.Errorf("duplicate ID %d for %q and %q", id, prev, tok)
		}
		v.idToToken[id] = tok
	}

	for _, req := range []string{bosToken, eosToken, unkToken} {
		if _, ok := raw[req]; !ok {
			return nil, fmt.Errorf("vocabulary missing %s", req)
		}
	}
	v.bosID = raw[bosToken]
	v.eosID = raw[eosToken]
	v.unkID = raw[unkToken]
	if id, ok := raw[padToken]; ok {
		v.padID = id
	}

	return v, nil
}

// Encode converts text to model IDs: lowercase, split on whitespace, look
// each word up (unknown words map to <unk>), then append </s>.
func (v *Vocab) Encode(text string) []int32 {
	words := strings.Fields(strings.ToLower(text))
	ids := make([]int32, 0, len(words)+1)
	for _, w := range words {
		if id, ok := v.tokenToID[w]; ok {
			ids = append(ids, id)
		} else {
			ids = append(ids, v.unkID)
		}
	}
	return append(ids, v.eosID)
}

// Decode converts model output IDs back to text. Special tokens are
// skipped, decoding stops at the first </s>, words are joined with single
// spaces, and the first letter is uppercased.
func (v *Vocab) Decode(ids []int32) string {
	var words []string
	for _, id := range ids {
		if id == v.eosID {
			break
		}
		if id == v.bosID || id == v.unkID || (v.padID >= 0 && id == v.padID) {
			continue
		}
		if tok, ok := v.idToToken[id]; ok {
			words = append(words, tok)
		}
	}
	return capitalize(strings.Join(words, " "))
}

// Size returns the number of tokens in the vocabulary.
func (v *Vocab) Size() int {
	return len(v.tokenToID)
}

// BOSID returns the beginning-of-sentence token ID.
func (v *Vocab) BOSID() int32 { return v.bosID }

// EOSID returns the end-of-sequence token ID.
func (v *Vocab) EOSID() int32 { return v.eosID }

// UnkID returns the unknown token ID.
func (v *Vocab) UnkID() int32 { return v.unkID }

// PadID returns the padding token ID, or -1 if the vocabulary has none.
func (v *Vocab) PadID() int32 { return v.padID }

// capitalize uppercases the first letter of s and lowercases the rest.
// Scripts without case, such as Arabic, are unaffected.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
