// Package corpus supplies target passages for typing sessions.
package corpus

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

var (
	// ErrNoPassages is returned when a corpus has nothing to draw from.
	ErrNoPassages = errors.New("corpus has no passages")
	// ErrEmptyPassage is returned when a source produced a blank passage.
	ErrEmptyPassage = errors.New("passage is empty")
)

// Builtin is the default passage set.
var Builtin = []string{
	"The quick brown fox jumps over the lazy dog and runs through the forest with great speed and agility.",
	"Programming is not about what you know it is about what you can figure out when you need to solve problems.",
	"In the world of technology innovation happens at lightning speed and adaptation is the key to survival.",
	"The art of writing code is like composing music where every line has rhythm and every function has purpose.",
	"Success in life comes from persistence dedication and the willingness to learn from your mistakes every day.",
	"The beauty of nature lies in its complexity from the smallest atom to the largest galaxy in space.",
	"Communication is the bridge between confusion and clarity helping people understand each other better.",
	"Time is the most valuable resource we have and how we use it determines the quality of our lives.",
}

// Fixed picks passages uniformly at random from a fixed list.
type Fixed struct {
	passages []string
	rnd      *rand.Rand
}

// NewFixed returns a Fixed corpus. Blank passages are dropped and the rest are
// trimmed. A nil rnd is seeded from the current time.
func NewFixed(passages []string, rnd *rand.Rand) (*Fixed, error) {
	kept := make([]string, 0, len(passages))
	for _, p := range passages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, ErrNoPassages
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Fixed{passages: kept, rnd: rnd}, nil
}

// Passage returns one passage.
func (f *Fixed) Passage() (string, error) {
	return f.passages[f.rnd.Intn(len(f.passages))], nil
}

// Passages returns a copy of the candidate passages.
func (f *Fixed) Passages() []string {
	return append([]string(nil), f.passages...)
}
