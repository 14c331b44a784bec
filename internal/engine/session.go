// Package engine implements the typing-test state machine.
package engine

import (
	"math"
	"time"
)

// charsPerWord is the conventional average word length used for WPM.
const charsPerWord = 5

// State is the lifecycle position of a session.
type State int

const (
	// NotStarted means no character has been recorded yet.
	NotStarted State = iota
	// InProgress means the clock is running.
	InProgress
	// Completed means the cursor reached the end of the target.
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is one test attempt: target passage, transcript, timing and errors.
type Session struct {
	ID         string
	Target     []rune
	Typed      []rune
	Cursor     int
	ErrorCount int
	StartedAt  time.Time
	FinishedAt time.Time
	Completed  bool

	// Stats is populated by Engine.Snapshot.
	Stats Stats
}

// Stats holds the metrics derived from a session at a point in time.
type Stats struct {
	Elapsed      time.Duration
	WPM          int
	Accuracy     int
	Progress     float64
	CorrectChars int
	TotalChars   int
}

// KeystrokeResult reports the outcome of RecordCharacter.
type KeystrokeResult struct {
	Correct   bool
	Completed bool
	// Rejected is set when the session was already completed.
	Rejected bool
}

// Started reports whether the clock has started.
func (s Session) Started() bool {
	return !s.StartedAt.IsZero()
}

// State returns the lifecycle state of the session.
func (s Session) State() State {
	switch {
	case s.Completed:
		return Completed
	case s.Started():
		return InProgress
	default:
		return NotStarted
	}
}

// IsCorrectAt reports whether the transcript matches the target at index i.
func (s Session) IsCorrectAt(i int) bool {
	return i >= 0 && i < len(s.Typed) && i < len(s.Target) && s.Typed[i] == s.Target[i]
}

func (s Session) clone() Session {
	out := s
	out.Target = append([]rune(nil), s.Target...)
	out.Typed = append([]rune(nil), s.Typed...)
	return out
}

// computeStats derives metrics from the session as observed at now.
func computeStats(s Session, now time.Time) Stats {
	total := len(s.Typed)
	st := Stats{
		Elapsed:      elapsed(s, now),
		Accuracy:     100,
		TotalChars:   total,
		CorrectChars: total - s.ErrorCount,
	}
	if st.CorrectChars < 0 {
		st.CorrectChars = 0
	}
	if secs := st.Elapsed.Seconds(); secs > 0 {
		st.WPM = int(math.Round(float64(total) / charsPerWord / secs * 60))
	}
	if total > 0 {
		st.Accuracy = int(math.Round(100 * float64(st.CorrectChars) / float64(total)))
	}
	if len(s.Target) > 0 {
		st.Progress = 100 * float64(s.Cursor) / float64(len(s.Target))
	}
	return st
}

func elapsed(s Session, now time.Time) time.Duration {
	if !s.Started() {
		return 0
	}
	end := now
	if s.Completed && !s.FinishedAt.IsZero() {
		end = s.FinishedAt
	}
	d := end.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}
