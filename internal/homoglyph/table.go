package homoglyph

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrEmptyClass is returned when a class contains no characters.
	ErrEmptyClass = errors.New("homoglyph: empty equivalence class")
	// ErrInvalidUTF8 is returned when a class is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("homoglyph: class is not valid UTF-8")
	// ErrNotNormalized is returned when a class is not in NFC form, which
	// would let one visible glyph span several code points.
	ErrNotNormalized = errors.New("homoglyph: class is not NFC-normalized")
)

// DisjointError reports a character that appears in more than one class, or
// twice in the same class.
type DisjointError struct {
	Char        rune
	FirstIndex  int
	FirstClass  string
	SecondIndex int
	SecondClass string
}

func (e *DisjointError) Error() string {
	if e.FirstIndex == e.SecondIndex {
		return fmt.Sprintf("homoglyph: character %q (%U) repeated within class %d %q",
			e.Char, e.Char, e.FirstIndex, e.FirstClass)
	}
	return fmt.Sprintf("homoglyph: character %q (%U) in class %d %q already belongs to class %d %q",
		e.Char, e.Char, e.SecondIndex, e.SecondClass, e.FirstIndex, e.FirstClass)
}

// Table maps a character to its alternative set. A Table is never mutated
// after Build returns and can be shared between goroutines.
type Table struct {
	alts    map[rune][]rune
	classes []string
}

type entry struct {
	class int
	alts  []rune
}

// Build constructs a Table from classes. It fails on the first character that
// already has an entry instead of overwriting it.
func Build(classes []string) (*Table, error) {
	seen := make(map[rune]entry)
	for i, class := range classes {
		if class == "" {
			return nil, fmt.Errorf("class %d: %w", i, ErrEmptyClass)
		}
		if !utf8.ValidString(class) {
			return nil, fmt.Errorf("class %d: %w", i, ErrInvalidUTF8)
		}
		if !norm.NFC.IsNormalString(class) {
			return nil, fmt.Errorf("class %d %q: %w", i, class, ErrNotNormalized)
		}
		members := []rune(class)
		for j, c := range members {
			if prev, ok := seen[c]; ok {
				return nil, &DisjointError{
					Char:        c,
					FirstIndex:  prev.class,
					FirstClass:  classes[prev.class],
					SecondIndex: i,
					SecondClass: class,
				}
			}
			alts := make([]rune, 0, len(members)-1)
			alts = append(alts, members[:j]...)
			alts = append(alts, members[j+1:]...)
			seen[c] = entry{class: i, alts: alts}
		}
	}

	t := &Table{
		alts:    make(map[rune][]rune, len(seen)),
		classes: append([]string(nil), classes...),
	}
	for c, e := range seen {
		t.alts[c] = e.alts
	}
	return t, nil
}

// MustBuild is like Build but panics on error. Use it only for static data.
func MustBuild(classes []string) *Table {
	t, err := Build(classes)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from DefaultClasses. It is built on first
// use and then reused.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = MustBuild(DefaultClasses())
	})
	return defaultTable
}

// Alternatives returns the characters c may be replaced by. The returned
// slice must not be modified.
func (t *Table) Alternatives(c rune) ([]rune, bool) {
	alts, ok := t.alts[c]
	return alts, ok
}

// Has reports whether c has a non-empty alternative set.
func (t *Table) Has(c rune) bool {
	return len(t.alts[c]) > 0
}

// Len returns the number of characters with an entry.
func (t *Table) Len() int { return len(t.alts) }

// Classes returns a copy of the classes the table was built from, in order.
func (t *Table) Classes() []string {
	return append([]string(nil), t.classes...)
}
