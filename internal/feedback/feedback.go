// Package feedback provides keystroke feedback backends.
package feedback

import (
	"io"
	"strings"

	"golang.org/x/term"
)

const (
	// BackendBell rings the terminal bell.
	BackendBell = "bell"
	// BackendOff produces no feedback.
	BackendOff = "off"
)

const bel = "\a"

// Sink receives keystroke events from the host.
type Sink interface {
	Keystroke(correct bool)
	Complete()
}

// Silent ignores every event.
type Silent struct{}

// Keystroke implements Sink.
func (Silent) Keystroke(bool) {}

// Complete implements Sink.
func (Silent) Complete() {}

// Bell writes a BEL on incorrect keystrokes and on completion.
type Bell struct {
	w io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Keystroke implements Sink.
func (b *Bell) Keystroke(correct bool) {
	if !correct {
		b.ring()
	}
}

// Complete implements Sink.
func (b *Bell) Complete() {
	b.ring()
}

func (b *Bell) ring() {
	if _, err := io.WriteString(b.w, bel); err != nil {
		// Feedback is best-effort.
		_ = err
	}
}

type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is backed by a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Resolve returns the first usable backend from candidates, in order, along
// with its name. Unknown or unavailable candidates are skipped; the result
// falls back to Silent.
func Resolve(candidates []string, w io.Writer) (Sink, string) {
	for _, c := range candidates {
		switch strings.ToLower(strings.TrimSpace(c)) {
		case BackendBell:
			if w != nil && IsTerminal(w) {
				return NewBell(w), BackendBell
			}
		case BackendOff:
			return Silent{}, BackendOff
		}
	}
	return Silent{}, BackendOff
}

// ParseCandidates splits a comma-separated backend list.
func ParseCandidates(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
