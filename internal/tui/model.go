// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typist/internal/engine"
	"github.com/verte-zerg/typist/internal/feedback"
	"github.com/verte-zerg/typist/internal/model"
)

const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

// Model implements the Bubble Tea typing UI. It forwards input to the engine
// and renders engine snapshots.
type Model struct {
	engine *engine.Engine
	sink   feedback.Sink
	log    *slog.Logger

	styles styles
	keys   keyMap
	help   help.Model
	bar    progress.Model

	width   int
	height  int
	ticking bool
	errMsg  string
}

// NewModel constructs a typing TUI model.
func NewModel(eng *engine.Engine, sink feedback.Sink, theme model.Theme, logger *slog.Logger) *Model {
	if sink == nil {
		sink = feedback.Silent{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := help.New()
	h.ShortSeparator = "  ·  "
	return &Model{
		engine: eng,
		sink:   sink,
		log:    logger,
		styles: newStyles(theme),
		keys:   newKeyMap(),
		help:   h,
		bar: progress.New(
			progress.WithSolidFill(theme.Accent),
			progress.WithoutPercentage(),
		),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.engine.State() != engine.InProgress {
			m.ticking = false
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return nil
	}
	if m.engine.IsComplete() {
		if key.Matches(msg, m.keys.Restart) {
			m.reset()
		}
		return nil
	}
	if key.Matches(msg, m.keys.Delete) {
		m.engine.RecordDeletion()
		return nil
	}
	switch msg.Type {
	case tea.KeySpace:
		return m.handleRunes([]rune{' '})
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return m.handleRunes(msg.Runes)
	default:
		return nil
	}
}

// handleRunes records printable runes, stopping at completion. It starts the
// refresh tick when the session goes live.
func (m *Model) handleRunes(runes []rune) tea.Cmd {
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			continue
		}
		res := m.engine.RecordCharacter(r)
		if res.Rejected {
			break
		}
		m.sink.Keystroke(res.Correct)
		if res.Completed {
			m.sink.Complete()
			break
		}
	}
	if m.engine.State() == engine.InProgress && !m.ticking {
		m.ticking = true
		return tick()
	}
	return nil
}

func (m *Model) reset() {
	if _, err := m.engine.Reset(); err != nil {
		m.errMsg = fmt.Sprintf("could not load a new passage: %v", err)
		m.log.Error("failed to reset session", "err", err)
		return
	}
	m.errMsg = ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.engine.Snapshot()
	if m.width == 0 || m.height == 0 {
		return m.renderPassage(snap, 0)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}

	var body string
	if snap.Completed {
		body = m.renderResults(snap)
	} else {
		m.bar.Width = contentWidth
		sections := []string{
			m.renderHeader(snap),
			"",
			lipgloss.NewStyle().Width(contentWidth).Render(m.renderPassage(snap, contentWidth)),
			"",
			m.bar.ViewAs(snap.Stats.Progress / 100),
		}
		body = lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
	if m.errMsg != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "", m.styles.errorText.Render(m.errMsg))
	}

	footer := m.help.ShortHelpView(m.keys.helpFor(snap.Completed))
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	content := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return content + "\n" + footerLine
}

func (m *Model) renderPassage(snap engine.Session, width int) string {
	cursorIndex := -1
	if !snap.Completed && snap.Cursor < len(snap.Target) {
		cursorIndex = snap.Cursor
	}
	runes := buildStyledRunes(m.styles, snap.Target, snap.Typed, cursorIndex)
	return wrapStyledRunes(runes, width)
}

func (m *Model) renderHeader(snap engine.Session) string {
	if !snap.Started() {
		return m.styles.stats.Render("Start typing to begin the test...")
	}
	return m.renderStats(snap.Stats)
}

func (m *Model) renderStats(st engine.Stats) string {
	segments := []string{
		m.styles.accent.Render(fmt.Sprintf("WPM %d", st.WPM)),
		m.styles.stats.Render(fmt.Sprintf("Accuracy %d%%", st.Accuracy)),
		m.styles.stats.Render(fmt.Sprintf("Progress %.1f%%", st.Progress)),
		m.styles.stats.Render(fmt.Sprintf("Time %s", formatSeconds(st.Elapsed))),
	}
	return strings.Join(segments, "   ")
}

func (m *Model) renderResults(snap engine.Session) string {
	st := snap.Stats
	lines := []string{
		m.styles.accent.Render("Test Complete!"),
		"",
		m.styles.result.Render(fmt.Sprintf("Final WPM: %d", st.WPM)),
		m.styles.result.Render(fmt.Sprintf("Accuracy: %d%%", st.Accuracy)),
		m.styles.result.Render(fmt.Sprintf("Total Time: %s", formatSeconds(st.Elapsed))),
		m.styles.stats.Render(fmt.Sprintf("Characters: %d/%d correct", st.CorrectChars, st.TotalChars)),
		"",
		m.styles.accent.Render("Press SPACE to restart or ESC to quit"),
	}
	return m.styles.resultBox.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
