package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mimicry/mimicry/internal/engine"
	"github.com/mimicry/mimicry/internal/homoglyph"
)

func sampleStats() engine.Stats {
	return engine.Stats{
		RunesRead:   10,
		Eligible:    4,
		Substituted: 3,
		Markers:     2,
		RunesOut:    12,
		BytesIn:     10,
		BytesOut:    18,
		InputHash:   0xabc,
		OutputHash:  0xdef,
		Seed:        42,
		Duration:    1500 * time.Microsecond,
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintStats(&buf, sampleStats(), PrintOptions{NoColor: true, Source: "stdin", Preset: "classic"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Transform summary (stdin)", "classic", "3 (75.0%)", "10 -> 18", "0000000000000abc", "changed", "│"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output; got:\n%s", want, out)
		}
	}
}

func TestPrintStats_Unchanged(t *testing.T) {
	st := sampleStats()
	st.OutputHash = st.InputHash
	st.Eligible = 0
	var buf bytes.Buffer
	if err := PrintStats(&buf, st, PrintOptions{NoColor: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "unchanged") {
		t.Fatalf("expected unchanged fingerprint; got:\n%s", out)
	}
	if !strings.Contains(out, "(0%)") {
		t.Fatalf("expected zero percent with no eligible runes; got:\n%s", out)
	}
}

func TestPrintClasses(t *testing.T) {
	var buf bytes.Buffer
	tbl := homoglyph.MustBuild([]string{"AАΑ", "cс"})
	if err := PrintClasses(&buf, tbl, PrintOptions{NoColor: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Homoglyph classes: 2 (5 characters)") {
		t.Fatalf("expected class count; got:\n%s", out)
	}
	if !strings.Contains(out, "U+0041 U+0410 U+0391") {
		t.Fatalf("expected code points; got:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleStats(), PrintOptions{Source: "in.txt"}); err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json: %v\n%s", err, buf.String())
	}
	if m["source"] != "in.txt" || m["changed"] != true || m["markers"] != float64(2) {
		t.Fatalf("unexpected json: %v", m)
	}
	if m["duration_ms"] != 1.5 {
		t.Fatalf("expected duration_ms=1.5, got %v", m["duration_ms"])
	}
	if _, ok := m["preset"]; ok {
		t.Fatalf("empty preset should be omitted")
	}
}
