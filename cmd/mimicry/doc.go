// Package mimicry provides the command-line interface for the mimicry tool.
// It configures subcommands (transform, classes, config, etc.), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/mimicry/mimicry/cmd/mimicry"
//	func main() { mimicry.Execute() }
package mimicry
