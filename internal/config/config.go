package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for mimicry. Nil fields
// are unset and fall through to the next layer.
type FileConfig struct {
	Preset                  *string  `yaml:"preset,omitempty"`
	Classes                 []string `yaml:"homoglyph_classes,omitempty"`
	SubstitutionProbability *float64 `yaml:"substitution_probability,omitempty"`
	StealthEnabled          *bool    `yaml:"stealth_marker_enabled,omitempty"`
	StealthProbability      *float64 `yaml:"stealth_marker_probability,omitempty"`
	// StealthMarker is a single character or a U+XXXX code point.
	StealthMarker *string `yaml:"stealth_marker_character,omitempty"`
	Seed          *int64  `yaml:"seed,omitempty"`
}

// ErrNotFound is returned by LoadLocal and LoadGlobal when no file exists.
var ErrNotFound = errors.New("config file not found")

// LoadFile reads a YAML config file from the provided path. Unknown keys are
// rejected.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, &FileError{Path: path, Err: err}
	}
	return cfg, nil
}

// FileError wraps a parse failure with the file it came from.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

// LocalNames lists the file names searched by LoadLocal, in order.
var LocalNames = []string{".mimicry.yml", ".mimicry.yaml", "mimicry.yml", "mimicry.yaml"}

// LoadLocal searches for a project-local config file in dir and returns it
// with the path it was loaded from.
func LoadLocal(dir string) (FileConfig, string, error) {
	for _, name := range LocalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			cfg, err := LoadFile(p)
			return cfg, p, err
		}
	}
	return FileConfig{}, "", ErrNotFound
}

// GlobalPath returns the global config location from XDG_CONFIG_HOME or
// ~/.config, or "" when neither is available.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "mimicry", "config.yml")
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, string, error) {
	p := GlobalPath()
	if p == "" {
		return FileConfig{}, "", ErrNotFound
	}
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, "", ErrNotFound
	}
	cfg, err := LoadFile(p)
	return cfg, p, err
}

// Marshal renders cfg as YAML.
func Marshal(cfg FileConfig) ([]byte, error) {
	return yaml.Marshal(&cfg)
}
