// Package core provides a small, stable facade over mimicry's internal engine
// for programs that want to transform text without the CLI. It re-exports a
// narrow API surface so callers can depend on a stable import path without
// importing internal packages.
//
// Example:
//
//	tr, err := core.New(core.Config{SubstitutionProbability: 0.75})
//	if err != nil { /* handle */ }
//	stats, err := tr.Process(os.Stdin, os.Stdout)
//	if err != nil { /* handle */ }
//	_ = core.MarshalStats(os.Stderr, stats)
package core
