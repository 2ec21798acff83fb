// Package audit keeps an append-only JSONL history of transform runs so a
// produced document can be traced back to its seed and settings.
package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mimicry/mimicry/internal/config"
	"github.com/mimicry/mimicry/internal/engine"
	"github.com/mimicry/mimicry/internal/report"
)

// DefaultPath is the history file used when none is given.
const DefaultPath = ".mimicry_audit.jsonl"

type RunRecord struct {
	Timestamp               time.Time `json:"timestamp"`
	RunID                   string    `json:"run_id"`
	Source                  string    `json:"source"`
	Output                  string    `json:"output,omitempty"`
	Preset                  string    `json:"preset"`
	Seed                    int64     `json:"seed"`
	SubstitutionProbability float64   `json:"substitution_probability"`
	StealthEnabled          bool      `json:"stealth_marker_enabled"`
	StealthProbability      float64   `json:"stealth_marker_probability,omitempty"`
	Marker                  string    `json:"stealth_marker_character,omitempty"`
	Classes                 int       `json:"classes"`
	RunesRead               int       `json:"runes_read"`
	Substituted             int       `json:"substituted"`
	Markers                 int       `json:"markers"`
	InputHash               string    `json:"input_xxhash64"`
	OutputHash              string    `json:"output_xxhash64"`
	Duration                string    `json:"duration"`
}

type AuditLog struct {
	logPath string
}

func NewAuditLog(path string) *AuditLog {
	if path == "" {
		path = DefaultPath
	}
	return &AuditLog{logPath: path}
}

func (a *AuditLog) Path() string { return a.logPath }

// LoadHistory returns records newest first. Malformed lines are skipped.
func (a *AuditLog) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record RunRecord
		if err := decoder.Decode(&record); err != nil {
			var se *json.SyntaxError
			if errors.As(err, &se) {
				break
			}
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *AuditLog) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", record.Timestamp.UnixNano())
	}

	// owner-only: records carry seeds that reproduce the output
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// DeleteRecord removes the record at index, counted newest first as returned
// by LoadHistory.
func (a *AuditLog) DeleteRecord(index int) error {
	records, err := a.LoadHistory()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return fmt.Errorf("invalid index: %d", index)
	}
	records = append(records[:index], records[index+1:]...)

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	f, err := os.Create(a.logPath)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write audit record: %w", err)
		}
	}
	return nil
}

// FindByOutputHash returns records whose output fingerprint equals hash.
func (a *AuditLog) FindByOutputHash(hash uint64) ([]RunRecord, error) {
	records, err := a.LoadHistory()
	if err != nil {
		return nil, err
	}
	want := report.Hex(hash)
	var out []RunRecord
	for _, r := range records {
		if r.OutputHash == want {
			out = append(out, r)
		}
	}
	return out, nil
}

func CreateRunRecord(source, output string, s config.Settings, st engine.Stats) RunRecord {
	r := RunRecord{
		Timestamp:               time.Now().UTC(),
		Source:                  source,
		Output:                  output,
		Preset:                  s.Preset,
		Seed:                    st.Seed,
		SubstitutionProbability: s.SubstitutionProbability,
		StealthEnabled:          s.StealthEnabled,
		Classes:                 len(s.Classes),
		RunesRead:               st.RunesRead,
		Substituted:             st.Substituted,
		Markers:                 st.Markers,
		InputHash:               report.Hex(st.InputHash),
		OutputHash:              report.Hex(st.OutputHash),
		Duration:                st.Duration.String(),
	}
	if s.StealthEnabled {
		r.StealthProbability = s.StealthProbability
		r.Marker = fmt.Sprintf("%U", s.Marker)
	}
	return r
}
