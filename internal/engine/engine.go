package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/mimicry/mimicry/internal/homoglyph"
	"github.com/mimicry/mimicry/internal/random"
)

// Classic and stealth preset defaults.
const (
	DefaultSubstitutionProbability = 0.75
	DefaultStealthProbability      = 0.3
	DefaultMarker                  = '\u200b' // zero width space
)

// ErrProbability is returned for probabilities outside [0,1].
var ErrProbability = errors.New("probability must be within [0,1]")

// Config controls transform behavior.
type Config struct {
	// Table is the substitution table. Nil means homoglyph.Default().
	Table *homoglyph.Table

	SubstitutionProbability float64
	StealthEnabled          bool
	StealthProbability      float64
	// Marker is the invisible rune appended by stealth injection. Zero means
	// DefaultMarker.
	Marker rune

	// Rand overrides the random source. When nil a source is created from
	// Seed if Seeded, or from a fresh seed otherwise.
	Rand   random.Source
	Seed   int64
	Seeded bool

	Logger *slog.Logger
}

// Engine applies the transform. An Engine owns its random source and is not
// safe for concurrent use; its table may be shared.
type Engine struct {
	table   *homoglyph.Table
	rng     random.Source
	seed    int64
	p       float64
	q       float64
	stealth bool
	marker  rune
	log     *slog.Logger
}

// New validates cfg and returns an Engine ready to process input.
func New(cfg Config) (*Engine, error) {
	if err := checkProbability("substitution", cfg.SubstitutionProbability); err != nil {
		return nil, err
	}
	if err := checkProbability("stealth marker", cfg.StealthProbability); err != nil {
		return nil, err
	}
	marker := cfg.Marker
	if marker == 0 {
		marker = DefaultMarker
	}
	if !IsMarker(marker) {
		return nil, fmt.Errorf("stealth marker %U is not a known zero-width character", marker)
	}

	e := &Engine{
		table:   cfg.Table,
		p:       cfg.SubstitutionProbability,
		q:       cfg.StealthProbability,
		stealth: cfg.StealthEnabled,
		marker:  marker,
		log:     cfg.Logger,
	}
	if e.table == nil {
		e.table = homoglyph.Default()
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	if cfg.Rand != nil {
		e.rng = cfg.Rand
		e.seed = cfg.Seed
	} else {
		e.rng, e.seed = random.Init(cfg.Seed, cfg.Seeded)
	}

	e.log.Debug("engine ready",
		"table_entries", e.table.Len(),
		"substitution_probability", e.p,
		"stealth", e.stealth,
		"stealth_probability", e.q,
		"marker", fmt.Sprintf("%U", e.marker),
		"seed", e.seed,
	)
	return e, nil
}

func checkProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s probability %v: %w", name, p, ErrProbability)
	}
	return nil
}

// Seed returns the seed of the engine's random source.
func (e *Engine) Seed() int64 { return e.seed }

// Table returns the substitution table in use.
func (e *Engine) Table() *homoglyph.Table { return e.table }

// Marker returns the stealth marker rune.
func (e *Engine) Marker() rune { return e.marker }
