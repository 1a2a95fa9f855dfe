// Package darija normalizes informally romanized Moroccan Darija ("Arabizi"
// or chat alphabet) into Arabic script, as a preprocessing stage for
// translation and language models.
//
// # Quick Start
//
// Substitution only (no model files needed):
//
//	out := darija.Normalize("3andi 7ob l dar")
//	fmt.Println(out) // عandi حob l dar
//
// Full standardization through a seq2seq ONNX model:
//
//	p, err := darija.New("model.onnx", "vocab.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	out, err := p.Standardize(ctx, "shkun ghadi ydir 2chghal d9i9a?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// # Substitution Rules
//
// The mapping table holds two classes of token: digraphs such as "sh" and
// "d7" that denote a single Arabic consonant, and bare digits such as "7"
// that stand in for consonants with no Latin letter. Digraphs are always
// replaced first, longest token first, because several of them contain a
// digit token as their second character. Matching is literal substring
// replacement with no word-boundary anchoring; unmapped characters pass
// through unchanged.
//
// # Thread Safety
//
// The mapping table is immutable and Normalize is a pure function, so all
// functions are safe for concurrent use. Pipeline manages an internal pool
// of ONNX sessions, configurable via WithPoolSize.
package darija
