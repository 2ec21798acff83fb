package core

import (
	"github.com/mimicry/mimicry/internal/engine"
	"github.com/mimicry/mimicry/internal/homoglyph"
)

// Re-export selected internal types as a stable public API surface.
type (
	Config        = engine.Config
	Stats         = engine.Stats
	Table         = homoglyph.Table
	DisjointError = homoglyph.DisjointError
	Transformer   = engine.Engine
)

// Defaults of the classic variant.
const (
	DefaultSubstitutionProbability = engine.DefaultSubstitutionProbability
	DefaultStealthProbability      = engine.DefaultStealthProbability
	DefaultMarker                  = engine.DefaultMarker
)

// ErrInvalidUTF8 is returned by Process for input that is not UTF-8.
var ErrInvalidUTF8 = engine.ErrInvalidUTF8

// New returns a Transformer for cfg.
func New(cfg Config) (*Transformer, error) { return engine.New(cfg) }

// BuildTable builds a substitution table from equivalence classes. Classes
// must not share characters.
func BuildTable(classes []string) (*Table, error) { return homoglyph.Build(classes) }

// DefaultTable returns the built-in substitution table.
func DefaultTable() *Table { return homoglyph.Default() }

// DefaultClasses returns a copy of the built-in equivalence classes.
func DefaultClasses() []string { return homoglyph.DefaultClasses() }

// Transform applies cfg to s with a fresh Transformer.
func Transform(s string, cfg Config) (string, error) {
	tr, err := New(cfg)
	if err != nil {
		return "", err
	}
	out, _, err := tr.TransformString(s)
	return out, err
}
