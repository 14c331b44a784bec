package engine

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Provider supplies passages for new sessions.
type Provider interface {
	Passage() (string, error)
}

// Clock returns the current time.
type Clock func() time.Time

type options struct {
	clock  Clock
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*options) error

// WithClock overrides the wall clock used for timing.
func WithClock(c Clock) Option {
	return func(o *options) error {
		if c == nil {
			return errors.New("clock is nil")
		}
		o.clock = c
		return nil
	}
}

// WithLogger sets the logger for session lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l != nil {
			o.logger = l
		}
		return nil
	}
}

// Engine owns the current session. It is not safe for concurrent use; a single
// host loop drives it.
type Engine struct {
	provider Provider
	now      Clock
	log      *slog.Logger

	session Session
}

// New returns an Engine with a fresh session drawn from p.
func New(p Provider, opts ...Option) (*Engine, error) {
	if p == nil {
		return nil, errors.New("passage provider is nil")
	}
	o := options{
		clock:  time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	e := &Engine{provider: p, now: o.clock, log: o.logger}
	if _, err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset abandons the current session and starts a new one. On provider error
// the current session is left untouched.
func (e *Engine) Reset() (Session, error) {
	passage, err := e.provider.Passage()
	if err != nil {
		return e.Snapshot(), err
	}
	e.session = Session{
		ID:     uuid.NewString(),
		Target: []rune(passage),
	}
	// An empty target is complete before any input.
	if len(e.session.Target) == 0 {
		e.session.Completed = true
	}
	e.log.Debug("session reset", "session", e.session.ID, "passage_len", len(e.session.Target))
	return e.Snapshot(), nil
}

// RecordCharacter records one keystroke against the expected character.
func (e *Engine) RecordCharacter(r rune) KeystrokeResult {
	s := &e.session
	if s.Completed || s.Cursor >= len(s.Target) {
		return KeystrokeResult{Rejected: true, Completed: s.Completed}
	}
	if !s.Started() {
		s.StartedAt = e.now()
		e.log.Debug("session started", "session", s.ID)
	}
	correct := s.Target[s.Cursor] == r
	s.Typed = append(s.Typed, r)
	if !correct {
		s.ErrorCount++
	}
	s.Cursor++
	if s.Cursor == len(s.Target) {
		s.FinishedAt = e.now()
		s.Completed = true
		st := computeStats(*s, s.FinishedAt)
		e.log.Info("session completed",
			"session", s.ID,
			"wpm", st.WPM,
			"accuracy", st.Accuracy,
			"errors", s.ErrorCount,
			"elapsed", st.Elapsed,
		)
	}
	return KeystrokeResult{Correct: correct, Completed: s.Completed}
}

// RecordDeletion removes the last typed character. Errors already counted stay
// counted.
func (e *Engine) RecordDeletion() {
	s := &e.session
	if s.Completed || s.Cursor == 0 {
		return
	}
	s.Cursor--
	s.Typed = s.Typed[:len(s.Typed)-1]
}

// IsComplete reports whether the current session is completed.
func (e *Engine) IsComplete() bool {
	return e.session.Completed
}

// State returns the lifecycle state of the current session.
func (e *Engine) State() State {
	return e.session.State()
}

// Stats returns the metrics of the current session as of now.
func (e *Engine) Stats() Stats {
	return computeStats(e.session, e.now())
}

// Snapshot returns a copy of the current session with Stats filled in.
func (e *Engine) Snapshot() Session {
	out := e.session.clone()
	out.Stats = computeStats(e.session, e.now())
	return out
}
