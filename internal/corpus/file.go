package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type passageFile struct {
	Passages []string `yaml:"passages"`
}

// LoadPassages reads passages from path. YAML files (.yaml, .yml) hold a
// top-level "passages" list; anything else is read as one passage per line.
func LoadPassages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read passages: %w", err)
	}
	var raw []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var pf passageFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("failed to decode passages: %w", err)
		}
		raw = pf.Passages
	default:
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			raw = append(raw, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to scan passages: %w", err)
		}
	}

	passages := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.Join(strings.Fields(p), " ")
		if p == "" {
			continue
		}
		passages = append(passages, p)
	}
	if len(passages) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPassages)
	}
	return passages, nil
}
