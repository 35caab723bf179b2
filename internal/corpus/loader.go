// Package corpus loads .txt files and splits them into sentence-level
// documents for the demo binary.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// Loader reads text files and groups consecutive sentences into documents.
type Loader struct {
	sentencesPerDocument int
}

// NewLoader creates a loader grouping the given number of sentences per
// document. Values <= 0 fall back to 3.
func NewLoader(sentencesPerDocument int) *Loader {
	if sentencesPerDocument <= 0 {
		sentencesPerDocument = 3
	}
	return &Loader{sentencesPerDocument: sentencesPerDocument}
}

// Load expands the given paths (globs allowed), reads every .txt file and
// returns the combined document list.
func (l *Loader) Load(paths []string) ([]string, error) {
	var documents []string
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			documents = append(documents, l.Split(string(data))...)
		}
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no .txt documents found")
	}
	return documents, nil
}

// Split breaks text into documents of up to sentencesPerDocument
// sentences. Text without sentence punctuation becomes one document.
func (l *Loader) Split(text string) []string {
	sentences := sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		sentences = []string{trimmed}
	}
	for i := range sentences {
		sentences[i] = strings.TrimSpace(sentences[i])
	}
	var documents []string
	for i := 0; i < len(sentences); i += l.sentencesPerDocument {
		end := i + l.sentencesPerDocument
		if end > len(sentences) {
			end = len(sentences)
		}
		documents = append(documents, strings.Join(sentences[i:end], " "))
	}
	return documents
}
