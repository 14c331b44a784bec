// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// charState is the display state of one target character.
type charState int

const (
	statePending charState = iota
	stateCurrent
	stateCorrect
	stateIncorrect
)

// wrongSpace stands in for a space that was mistyped.
const wrongSpace = '•'

type styledRune struct {
	s       string
	state   charState
	width   int
	isSpace bool
}

func (st styles) forState(state charState) lipgloss.Style {
	switch state {
	case stateCorrect:
		return st.correct
	case stateIncorrect:
		return st.incorrect
	case stateCurrent:
		return st.cursor
	default:
		return st.pending
	}
}

// buildStyledRunes classifies and styles each target rune. A negative
// cursorIndex means there is no current position.
func buildStyledRunes(st styles, targetRunes, inputRunes []rune, cursorIndex int) []styledRune {
	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := target
		state := statePending
		switch {
		case i < len(inputRunes):
			if inputRunes[i] == target {
				state = stateCorrect
			} else {
				state = stateIncorrect
				if target == ' ' {
					displayed = wrongSpace
				}
			}
		case i == cursorIndex:
			state = stateCurrent
		}
		out = append(out, styledRune{
			s:       st.forState(state).Render(string(displayed)),
			state:   state,
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits within width,
// falling back to a hard break for words longer than a line.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	flush := func(upTo int, skip int) {
		out.WriteString(renderStyledRunes(line[:upTo]))
		out.WriteRune('\n')
		line = append(line[:0:0], line[skip:]...)
		lineWidth = lineWidthOf(line)
		lastSpaceIdx = lastSpaceIndex(line)
	}

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				flush(lastSpaceIdx, lastSpaceIdx+1)
			} else {
				flush(len(line), len(line))
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
