package homoglyph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Alternatives(t *testing.T) {
	tbl, err := Build([]string{"AАΑ", "cс"})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   rune
		want []rune
	}{
		{name: "latin A", in: 'A', want: []rune{'А', 'Α'}},
		{name: "cyrillic A", in: 'А', want: []rune{'A', 'Α'}},
		{name: "greek Alpha", in: 'Α', want: []rune{'A', 'А'}},
		{name: "pair", in: 'c', want: []rune{'с'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tbl.Alternatives(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, tt.in)
		})
	}

	_, ok := tbl.Alternatives('z')
	assert.False(t, ok)
	assert.Equal(t, 5, tbl.Len())
}

func TestBuild_OverlapFails(t *testing.T) {
	_, err := Build([]string{"AАΑ", "BВ", "ΑΛ"})
	require.Error(t, err)

	var de *DisjointError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 'Α', de.Char)
	assert.Equal(t, 0, de.FirstIndex)
	assert.Equal(t, 2, de.SecondIndex)
	assert.Contains(t, err.Error(), "U+0391")
}

func TestBuild_RepeatWithinClassFails(t *testing.T) {
	_, err := Build([]string{"oоo"})
	var de *DisjointError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 'o', de.Char)
	assert.Equal(t, de.FirstIndex, de.SecondIndex)
	assert.Contains(t, err.Error(), "repeated")
}

func TestBuild_InvalidClasses(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    error
	}{
		{name: "empty", classes: []string{"aа", ""}, want: ErrEmptyClass},
		{name: "bad utf8", classes: []string{"a\xffа"}, want: ErrInvalidUTF8},
		// e followed by a combining acute accent composes to é under NFC
		{name: "decomposed", classes: []string{"e\u0301\u00e9"}, want: ErrNotNormalized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.classes)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_SingletonClass(t *testing.T) {
	tbl, err := Build([]string{"Q"})
	require.NoError(t, err)
	alts, ok := tbl.Alternatives('Q')
	assert.True(t, ok)
	assert.Empty(t, alts)
	assert.False(t, tbl.Has('Q'))
}

func TestBuild_ClassesIsCopy(t *testing.T) {
	in := []string{"aа"}
	tbl := MustBuild(in)
	in[0] = "xх"
	got := tbl.Classes()
	assert.Equal(t, []string{"aа"}, got)
	got[0] = "zz"
	assert.Equal(t, []string{"aа"}, tbl.Classes())
}

func TestDefault(t *testing.T) {
	tbl := Default()
	assert.Same(t, tbl, Default())
	assert.Len(t, tbl.Classes(), 35)
	assert.Equal(t, 87, tbl.Len())

	alts, ok := tbl.Alternatives('k')
	require.True(t, ok)
	assert.Equal(t, []rune{'к', 'κ', 'ҝ'}, alts)
	assert.False(t, tbl.Has(' '))
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() { MustBuild([]string{"aа", "а"}) })
}

func TestParseClasses(t *testing.T) {
	assert.Nil(t, ParseClasses(""))
	assert.Equal(t, []string{"aа", "", "eе"}, ParseClasses("aа,,eе"))
}
