package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Absent and malformed rulesets surface identically to callers ("no usable
// ruleset") but stay distinguishable in logs via errors.Is.
var (
	ErrNoRuleset  = errors.New("ruleset file not found")
	ErrBadRuleset = errors.New("ruleset file malformed")
)

// Load reads a ruleset document from path.
func Load(path string) (*Ruleset, error) {
	raw, err := os.ReadFile(path) // #nosec G304 - path supplied by the operator
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoRuleset, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read ruleset %s: %w", path, err)
	}
	var rs Ruleset
	if decodeErr := json.Unmarshal(raw, &rs); decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRuleset, decodeErr)
	}
	return &rs, nil
}

// FileSource loads a ruleset from a fixed path on each call, so an edited
// file takes effect on the next run without restarting anything.
type FileSource struct {
	Path string
}

// Load implements the ruleset source consumed by the apply service.
func (f FileSource) Load() (*Ruleset, error) {
	return Load(f.Path)
}
