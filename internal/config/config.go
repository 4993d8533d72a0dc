// Package config reads the optional YAML settings file of the bishop command.
//
//	rows: 9
//	columns: 17
//	steps: 64
//	home: 76
//	cycle: false
//	symbols: " .o+=*B0X@%&#/^"
//	color: true
//
// Every key is optional; absent keys keep the built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bishopart/bishop"
)

// File mirrors the settings file. Nil fields were not set.
type File struct {
	Rows    *int    `yaml:"rows"`
	Columns *int    `yaml:"columns"`
	Steps   *int    `yaml:"steps"`
	Home    *int    `yaml:"home"`
	Cycle   *bool   `yaml:"cycle"`
	Symbols *string `yaml:"symbols"`
	Color   *bool   `yaml:"color"`
}

// Load reads and decodes the settings file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return f, nil
}

// Apply overlays the fields set in f onto cfg.
func (f File) Apply(cfg *bishop.Config) {
	if f.Rows != nil {
		cfg.Rows = *f.Rows
	}
	if f.Columns != nil {
		cfg.Columns = *f.Columns
	}
	if f.Steps != nil {
		cfg.Steps = *f.Steps
	}
	if f.Home != nil {
		home := *f.Home
		cfg.Home = &home
	}
	if f.Cycle != nil {
		cfg.Cycle = *f.Cycle
	}
	if f.Symbols != nil {
		cfg.Symbols = append([]rune{}, []rune(*f.Symbols)...)
	}
}

// ColorEnabled reports whether the file asks for coloured markers.
func (f File) ColorEnabled() bool {
	return f.Color != nil && *f.Color
}
