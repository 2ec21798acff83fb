// Package engine contains the transform pipeline for mimicry. For every input
// character it applies homoglyph substitution and then, when enabled, stealth
// marker injection, writing results to the sink in input order. This package
// is internal; external consumers should use the stable facade in pkg/core.
package engine
