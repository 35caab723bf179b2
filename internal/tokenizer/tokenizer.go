// Package tokenizer splits raw text into normalized word tokens.
package tokenizer

import (
	"regexp"
	"strings"
)

// Runs of anything that is not a word character, whitespace, or in the
// Arabic block are treated as separators.
var nonTokenRe = regexp.MustCompile(`[^\w\s\x{0600}-\x{06FF}]+`)

// Tokenize lowercases the input, replaces non-token characters with spaces
// and splits on whitespace runs. Token order follows the original text and
// duplicates are kept, so repeated words carry averaging weight downstream.
func Tokenize(text string) []string {
	cleaned := nonTokenRe.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}
