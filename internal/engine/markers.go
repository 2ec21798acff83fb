package engine

// markers are the zero-width code points accepted as stealth markers. None of
// them is classified as whitespace.
var markers = map[rune]string{
	'\u200b': "zero width space",
	'\u200c': "zero width non-joiner",
	'\u200d': "zero width joiner",
	'\u2060': "word joiner",
	'\ufeff': "zero width no-break space",
}

// IsMarker reports whether r may be used as a stealth marker.
func IsMarker(r rune) bool {
	_, ok := markers[r]
	return ok
}

// MarkerName returns a human readable name for a marker rune, or "".
func MarkerName(r rune) string { return markers[r] }
