package feedback

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellRingsOnErrorsAndCompletion(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)
	b.Keystroke(true)
	assert.Empty(t, buf.String())
	b.Keystroke(false)
	b.Complete()
	assert.Equal(t, "\a\a", buf.String())
}

func TestResolveSkipsUnavailableBell(t *testing.T) {
	var buf bytes.Buffer
	sink, name := Resolve([]string{"bell", "off"}, &buf)
	assert.Equal(t, BackendOff, name)
	assert.IsType(t, Silent{}, sink)
}

func TestResolveNonTerminalFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.False(t, IsTerminal(f))
	_, name := Resolve([]string{"bell"}, f)
	assert.Equal(t, BackendOff, name)
}

func TestResolveUnknownFallsBack(t *testing.T) {
	sink, name := Resolve([]string{"pcspeaker"}, nil)
	assert.Equal(t, BackendOff, name)
	assert.NotNil(t, sink)
}

func TestParseCandidates(t *testing.T) {
	assert.Equal(t, []string{"bell", "off"}, ParseCandidates(" bell, ,off "))
	assert.Nil(t, ParseCandidates(""))
}
