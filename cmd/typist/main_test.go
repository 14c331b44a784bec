package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typist/internal/config"
	"github.com/verte-zerg/typist/internal/corpus"
	"github.com/verte-zerg/typist/internal/model"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPassagesBuiltin(t *testing.T) {
	out, err := runCLI(t, "passages")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, corpus.Builtin, lines)
}

func TestPassagesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("passages:\n  - one two\n  - three\n"), 0o644))
	out, err := runCLI(t, "passages", "--source", "file", "--passages", path)
	require.NoError(t, err)
	assert.Equal(t, "one two\nthree\n", out)
}

func TestPassagesRejectsGeneratedSource(t *testing.T) {
	_, err := runCLI(t, "passages", "--source", "words")
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	base := model.Config{Source: model.SourceBuiltin, Words: 10, PunctSet: "."}
	require.NoError(t, validateConfig(base))

	bad := []model.Config{
		{Source: "radio", Words: 10},
		{Source: model.SourceWords, Words: 0},
		{Source: model.SourceWords, Words: 5, CapsPct: 1.5},
		{Source: model.SourceWords, Words: 5, PunctPct: -0.1},
		{Source: model.SourceWords, Words: 5, PunctPct: 0.5},
	}
	for _, cfg := range bad {
		assert.Error(t, validateConfig(cfg), "%+v", cfg)
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	accent := "#123456"
	blank := "  "
	theme := resolveTheme(config.ThemeConfig{Accent: &accent, Correct: &blank})
	assert.Equal(t, "#123456", theme.Accent)
	assert.Equal(t, model.DefaultTheme().Correct, theme.Correct)
}

func TestBuildProviderWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644))
	p, err := buildProvider(model.Config{Source: model.SourceWords, Lang: "en", WordListPath: path, Words: 4})
	require.NoError(t, err)
	passage, err := p.Passage()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(passage), 4)
}

func TestBuildProviderMissingWordList(t *testing.T) {
	_, err := buildProvider(model.Config{Source: model.SourceWords, Lang: "xx", WordListPath: filepath.Join(t.TempDir(), "xx.txt"), Words: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected word list at")
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644))
	_, err := config.LoadConfig(path)
	require.NoError(t, err)
}
