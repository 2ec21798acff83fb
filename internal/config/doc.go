// Package config loads mimicry configuration from local and global YAML files
// and resolves it, together with CLI overrides, into engine settings. It is
// internal; CLI code maps flags and files into engine configuration.
package config
