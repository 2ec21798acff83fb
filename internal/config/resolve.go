package config

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mimicry/mimicry/internal/engine"
	"github.com/mimicry/mimicry/internal/homoglyph"
)

// Preset bundles the probabilities and stealth switch selected by name.
type Preset struct {
	Name                    string
	Description             string
	SubstitutionProbability float64
	StealthEnabled          bool
	StealthProbability      float64
}

// DefaultPreset is used when no layer names one.
const DefaultPreset = "classic"

var presets = map[string]Preset{
	"classic": {
		Name:                    "classic",
		Description:             "homoglyph substitution only",
		SubstitutionProbability: engine.DefaultSubstitutionProbability,
		StealthProbability:      engine.DefaultStealthProbability,
	},
	"stealth": {
		Name:                    "stealth",
		Description:             "denser substitution plus zero-width markers",
		SubstitutionProbability: 0.9,
		StealthEnabled:          true,
		StealthProbability:      engine.DefaultStealthProbability,
	},
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// PresetNames returns the known preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Settings is a fully resolved configuration.
type Settings struct {
	Preset                  string
	Classes                 []string
	SubstitutionProbability float64
	StealthEnabled          bool
	StealthProbability      float64
	Marker                  rune
	Seed                    int64
	Seeded                  bool
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Resolve merges layers, highest precedence first, and validates the result.
// A layer that names a preset resets the probabilities and the stealth switch
// to that preset before its own explicit values apply, so explicit values in
// lower layers do not leak past a higher layer's preset.
func Resolve(layers ...FileConfig) (Settings, error) {
	at := -1
	name := DefaultPreset
	for i, l := range layers {
		if l.Preset != nil {
			at, name = i, *l.Preset
			break
		}
	}
	preset, ok := LookupPreset(name)
	if !ok {
		return Settings{}, &ValidationError{
			Field:  "preset",
			Value:  name,
			Reason: "expected one of " + strings.Join(PresetNames(), ", "),
		}
	}

	s := Settings{
		Classes: homoglyph.DefaultClasses(),
		Marker:  engine.DefaultMarker,
	}
	s.applyPreset(preset)
	var marker *string
	// walk lowest precedence first so higher layers overwrite
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if i == at {
			s.applyPreset(preset)
		}
		if l.Classes != nil {
			s.Classes = append([]string(nil), l.Classes...)
		}
		if l.SubstitutionProbability != nil {
			s.SubstitutionProbability = *l.SubstitutionProbability
		}
		if l.StealthEnabled != nil {
			s.StealthEnabled = *l.StealthEnabled
		}
		if l.StealthProbability != nil {
			s.StealthProbability = *l.StealthProbability
		}
		if l.StealthMarker != nil {
			marker = l.StealthMarker
		}
		if l.Seed != nil {
			s.Seed, s.Seeded = *l.Seed, true
		}
	}
	if marker != nil {
		r, err := ParseMarker(*marker)
		if err != nil {
			return Settings{}, err
		}
		s.Marker = r
	}
	return s, s.Validate()
}

func (s *Settings) applyPreset(p Preset) {
	s.Preset = p.Name
	s.SubstitutionProbability = p.SubstitutionProbability
	s.StealthEnabled = p.StealthEnabled
	s.StealthProbability = p.StealthProbability
}

// Validate checks ranges and the marker.
func (s Settings) Validate() error {
	if !inUnit(s.SubstitutionProbability) {
		return &ValidationError{Field: "substitution_probability", Value: s.SubstitutionProbability, Reason: "must be within [0,1]"}
	}
	if !inUnit(s.StealthProbability) {
		return &ValidationError{Field: "stealth_marker_probability", Value: s.StealthProbability, Reason: "must be within [0,1]"}
	}
	if !engine.IsMarker(s.Marker) {
		return &ValidationError{Field: "stealth_marker_character", Value: fmt.Sprintf("%U", s.Marker), Reason: "not a known zero-width character"}
	}
	if len(s.Classes) == 0 {
		return &ValidationError{Field: "homoglyph_classes", Value: "[]", Reason: "at least one class is required"}
	}
	return nil
}

func inUnit(p float64) bool { return p >= 0 && p <= 1 }

// ParseMarker accepts a single character or a code point written as U+XXXX.
func ParseMarker(s string) (rune, error) {
	if up := strings.ToUpper(s); strings.HasPrefix(up, "U+") {
		n, err := strconv.ParseUint(up[2:], 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return 0, &ValidationError{Field: "stealth_marker_character", Value: s, Reason: "bad code point"}
		}
		return rune(n), nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, &ValidationError{Field: "stealth_marker_character", Value: strconv.Quote(s), Reason: "must be exactly one character"}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// EngineConfig converts s into an engine configuration using a table built
// from s.Classes. The default classes reuse the shared default table.
func (s Settings) EngineConfig() (engine.Config, error) {
	tbl, err := s.table()
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Table:                   tbl,
		SubstitutionProbability: s.SubstitutionProbability,
		StealthEnabled:          s.StealthEnabled,
		StealthProbability:      s.StealthProbability,
		Marker:                  s.Marker,
		Seed:                    s.Seed,
		Seeded:                  s.Seeded,
	}, nil
}

func (s Settings) table() (*homoglyph.Table, error) {
	if slices.Equal(s.Classes, homoglyph.DefaultClasses()) {
		return homoglyph.Default(), nil
	}
	return homoglyph.Build(s.Classes)
}
