package engine

import "unicode"

// Translate returns ch or, with probability p, a uniformly chosen member of
// its alternative set. Characters without alternatives are returned as-is and
// consume no randomness.
func (e *Engine) Translate(ch rune, p float64) rune {
	alts, _ := e.table.Alternatives(ch)
	if len(alts) == 0 {
		return ch
	}
	// Float64 is in [0,1), so p=1 always substitutes and p=0 never does.
	if e.rng.Float64() >= p {
		return ch
	}
	if len(alts) == 1 {
		return alts[0]
	}
	return alts[e.rng.Intn(len(alts))]
}

// Inject returns ch, followed by the marker with probability q. Whitespace is
// never marked.
func (e *Engine) Inject(ch rune, q float64) []rune {
	return e.AppendInject(make([]rune, 0, 2), ch, q)
}

// AppendInject is like Inject but appends to dst.
func (e *Engine) AppendInject(dst []rune, ch rune, q float64) []rune {
	dst = append(dst, ch)
	if unicode.IsSpace(ch) {
		return dst
	}
	if e.rng.Float64() < q {
		dst = append(dst, e.marker)
	}
	return dst
}
