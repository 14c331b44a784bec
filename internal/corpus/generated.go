package corpus

import (
	"strings"

	"github.com/verte-zerg/typist/internal/generator"
)

// Generated builds passages from a word list.
type Generated struct {
	gen   *generator.Generator
	words []string
	count int
	rules generator.Rules
}

// NewGenerated returns a corpus producing passages of count words drawn from words.
func NewGenerated(gen *generator.Generator, words []string, count int, rules generator.Rules) (*Generated, error) {
	if len(words) == 0 || count <= 0 {
		return nil, ErrNoPassages
	}
	if gen == nil {
		gen = generator.New()
	}
	return &Generated{gen: gen, words: words, count: count, rules: rules}, nil
}

// Passage returns a freshly generated passage.
func (g *Generated) Passage() (string, error) {
	passage := strings.TrimSpace(strings.Join(g.gen.Generate(g.words, g.count, g.rules), " "))
	if passage == "" {
		return "", ErrEmptyPassage
	}
	return passage, nil
}
