package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typist/internal/engine"
	"github.com/verte-zerg/typist/internal/model"
)

type onePassage string

func (p onePassage) Passage() (string, error) { return string(p), nil }

type recordingSink struct {
	correct   int
	incorrect int
	completes int
}

func (s *recordingSink) Keystroke(correct bool) {
	if correct {
		s.correct++
		return
	}
	s.incorrect++
}

func (s *recordingSink) Complete() { s.completes++ }

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(250 * time.Millisecond)
	return c.now
}

func newTestModel(t *testing.T, passage string) (*Model, *recordingSink) {
	t.Helper()
	clock := &stepClock{now: time.Unix(1_700_000_000, 0)}
	eng, err := engine.New(onePassage(passage), engine.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	sink := &recordingSink{}
	return NewModel(eng, sink, model.DefaultTheme(), nil), sink
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestUpdateRecordsCharactersAndFeedback(t *testing.T) {
	m, sink := newTestModel(t, "cat")
	cmd := send(m, runes("x"))
	if cmd == nil {
		t.Fatalf("expected tick command once the session starts")
	}
	send(m, runes("at"))

	snap := m.engine.Snapshot()
	if !snap.Completed {
		t.Fatalf("expected session to complete")
	}
	if string(snap.Typed) != "xat" || snap.ErrorCount != 1 {
		t.Fatalf("unexpected transcript %q errors %d", string(snap.Typed), snap.ErrorCount)
	}
	if sink.correct != 2 || sink.incorrect != 1 || sink.completes != 1 {
		t.Fatalf("unexpected feedback: %+v", sink)
	}
}

func TestUpdateBackspace(t *testing.T) {
	m, _ := newTestModel(t, "cat")
	send(m, runes("x"), tea.KeyMsg{Type: tea.KeyBackspace}, runes("c"))
	snap := m.engine.Snapshot()
	if string(snap.Typed) != "c" || snap.ErrorCount != 1 {
		t.Fatalf("unexpected state: typed %q errors %d", string(snap.Typed), snap.ErrorCount)
	}
}

func TestUpdateSpaceKey(t *testing.T) {
	m, _ := newTestModel(t, "a b")
	send(m, runes("a"), tea.KeyMsg{Type: tea.KeySpace})
	if got := string(m.engine.Snapshot().Typed); got != "a " {
		t.Fatalf("expected space to be recorded, got %q", got)
	}
}

func TestUpdateIgnoresAltAndControlRunes(t *testing.T) {
	m, _ := newTestModel(t, "cat")
	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c"), Alt: true}, runes("\x07"))
	if m.engine.State() != engine.NotStarted {
		t.Fatalf("expected no keystrokes to be recorded")
	}
}

func TestUpdatePasteStopsAtCompletion(t *testing.T) {
	m, sink := newTestModel(t, "ab")
	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abcd"), Paste: true})
	snap := m.engine.Snapshot()
	if string(snap.Typed) != "ab" || !snap.Completed {
		t.Fatalf("unexpected state after paste: %q", string(snap.Typed))
	}
	if sink.correct != 2 || sink.completes != 1 {
		t.Fatalf("unexpected feedback: %+v", sink)
	}
}

func TestSpaceRestartsOnlyAfterCompletion(t *testing.T) {
	m, _ := newTestModel(t, "ab")
	send(m, runes("ab"))
	firstID := m.engine.Snapshot().ID
	send(m, runes("z"))
	if !m.engine.IsComplete() {
		t.Fatalf("keystrokes on the results view must not touch the session")
	}
	send(m, tea.KeyMsg{Type: tea.KeySpace})
	snap := m.engine.Snapshot()
	if snap.Completed || snap.ID == firstID {
		t.Fatalf("expected a fresh session after restart")
	}
}

func TestCtrlRResetsMidTest(t *testing.T) {
	m, _ := newTestModel(t, "abc")
	send(m, runes("ax"), tea.KeyMsg{Type: tea.KeyCtrlR})
	snap := m.engine.Snapshot()
	if snap.Cursor != 0 || snap.ErrorCount != 0 || snap.Started() {
		t.Fatalf("expected reset session, got %+v", snap)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, "abc")
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		cmd := send(m, msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %v", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %v", msg)
		}
	}
}

func TestTickStopsWhenNotInProgress(t *testing.T) {
	m, _ := newTestModel(t, "ab")
	send(m, runes("a"))
	if cmd := send(m, tickMsg(time.Now())); cmd == nil {
		t.Fatalf("expected tick to continue while in progress")
	}
	send(m, runes("b"))
	if cmd := send(m, tickMsg(time.Now())); cmd != nil {
		t.Fatalf("expected tick to stop after completion")
	}
	if m.ticking {
		t.Fatalf("expected ticking flag cleared")
	}
}

func TestViewShowsInstructionsThenStats(t *testing.T) {
	m, _ := newTestModel(t, "hello world")
	send(m, tea.WindowSizeMsg{Width: 100, Height: 20})
	if out := m.View(); !strings.Contains(out, "Start typing to begin the test...") {
		t.Fatalf("expected instructions before typing:\n%s", out)
	}
	send(m, runes("he"))
	out := m.View()
	for _, want := range []string{"WPM", "Accuracy 100%", "Progress 18.2%", "Time"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewResults(t *testing.T) {
	m, _ := newTestModel(t, "cat")
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30}, runes("xat"))
	out := m.View()
	for _, want := range []string{"Test Complete!", "Final WPM:", "Accuracy: 67%", "Total Time:", "Characters: 2/3 correct", "Press SPACE to restart"} {
		if !strings.Contains(out, want) {
			t.Fatalf("results view missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStatsFormats(t *testing.T) {
	m, _ := newTestModel(t, "abcd")
	out := m.renderStats(engine.Stats{WPM: 72, Accuracy: 98, Progress: 50, Elapsed: 12300 * time.Millisecond})
	for _, want := range []string{"WPM 72", "Accuracy 98%", "Progress 50.0%", "Time 12.3s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats line missing %q: %s", want, out)
		}
	}
}

func TestViewWithoutSize(t *testing.T) {
	m, _ := newTestModel(t, "abc")
	if out := m.View(); !strings.Contains(out, "abc") {
		t.Fatalf("expected raw passage before the first resize, got %q", out)
	}
}
