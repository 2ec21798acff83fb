package core

import (
	"encoding/json"
	"io"
)

// MarshalStats pretty-prints run statistics as JSON for humans or pipelines.
func MarshalStats(w io.Writer, st Stats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

// UnmarshalStats decodes statistics written by MarshalStats.
func UnmarshalStats(r io.Reader) (Stats, error) {
	var st Stats
	if err := json.NewDecoder(r).Decode(&st); err != nil {
		return Stats{}, err
	}
	return st, nil
}
