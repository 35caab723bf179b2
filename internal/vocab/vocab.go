// Package vocab builds the ordered token vocabulary for a corpus.
package vocab

import "textvec/internal/tokenizer"

// Vocabulary is an ordered bijection between tokens and dense integer ids.
// Ids are assigned in first-seen order during Build and never reused;
// removal is not supported.
type Vocabulary struct {
	words []string
	index map[string]int
}

// Build scans the corpus in order and assigns sequential ids 0..n-1 to
// distinct tokens in order of first occurrence. Deterministic for a given
// corpus. An empty or all-empty-after-tokenization corpus yields an empty
// vocabulary.
func Build(corpus []string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, text := range corpus {
		for _, tok := range tokenizer.Tokenize(text) {
			if _, ok := v.index[tok]; ok {
				continue
			}
			v.index[tok] = len(v.words)
			v.words = append(v.words, tok)
		}
	}
	return v
}

// FromWords reconstructs a vocabulary from an ordered word list, assigning
// ids by position. Used when importing a serialized model.
func FromWords(words []string) *Vocabulary {
	v := &Vocabulary{
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	copy(v.words, words)
	for i, w := range v.words {
		v.index[w] = i
	}
	return v
}

// Size returns the number of distinct tokens.
func (v *Vocabulary) Size() int { return len(v.words) }

// ID returns the id for a token and whether the token is known.
func (v *Vocabulary) ID(token string) (int, bool) {
	id, ok := v.index[token]
	return id, ok
}

// Word returns the token for an id. Ids outside [0, Size) return "".
func (v *Vocabulary) Word(id int) string {
	if id < 0 || id >= len(v.words) {
		return ""
	}
	return v.words[id]
}

// Words returns a copy of the ordered token list.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}
