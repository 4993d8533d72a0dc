package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bishopart/bishop"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .json, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("fixture: unsupported file format")
	// ErrMismatch indicates a rendering that differs from the recorded output.
	ErrMismatch = errors.New("fixture: rendered art does not match")
)

// Case is one recorded rendering.
type Case struct {
	Rows   int      `json:"rows" yaml:"rows"`
	Cols   int      `json:"cols" yaml:"cols"`
	Limit  int      `json:"limit" yaml:"limit"`
	Cycle  bool     `json:"cycle" yaml:"cycle"`
	Input  string   `json:"input" yaml:"input"`
	Output []string `json:"output" yaml:"output"`
}

// Config builds the bishop configuration the case describes.
func (c Case) Config() bishop.Config {
	return bishop.Config{
		Data:    []byte(c.Input),
		Rows:    c.Rows,
		Columns: c.Cols,
		Steps:   c.Limit,
		Cycle:   c.Cycle,
	}
}

// Want returns the expected framed art.
func (c Case) Want() string {
	return strings.Join(c.Output, "\n")
}

// Name returns a short label for reports and subtests.
func (c Case) Name() string {
	return fmt.Sprintf("%dx%d/limit=%d/cycle=%t/%q", c.Cols, c.Rows, c.Limit, c.Cycle, c.Input)
}

// Verify renders c and compares the result with the recorded output.
// It returns the rendered art, wrapping ErrMismatch when it differs.
func Verify(c Case) (string, error) {
	got, err := bishop.Draw(c.Config())
	if err != nil {
		return "", fmt.Errorf("fixture %s: %w", c.Name(), err)
	}
	if got != c.Want() {
		return got, fmt.Errorf("%w: %s", ErrMismatch, c.Name())
	}

	return got, nil
}

// Load reads every case from a JSON or YAML file, chosen by extension.
// A missing or malformed file is an error; there are no partial results.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}

	var cases []Case
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cases); err != nil {
			return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cases); err != nil {
			return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return cases, nil
}
