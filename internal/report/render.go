// Package report renders transform statistics and class listings for humans
// (tables) and pipelines (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mimicry/mimicry/internal/engine"
	"github.com/mimicry/mimicry/internal/homoglyph"
	"github.com/olekukonko/tablewriter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type PrintOptions struct {
	NoColor bool
	Source  string // input name shown in the title, e.g. a path or "stdin"
	Preset  string
}

func (o PrintOptions) style(s lipgloss.Style, text string) string {
	if o.NoColor {
		return text
	}
	return s.Render(text)
}

// PrintStats writes a summary table of st.
func PrintStats(w io.Writer, st engine.Stats, opts PrintOptions) error {
	title := "Transform summary"
	if opts.Source != "" {
		title += " (" + opts.Source + ")"
	}
	fmt.Fprintln(w, opts.style(titleStyle, title))

	fingerprint := opts.style(sameStyle, "unchanged")
	if st.InputHash != st.OutputHash {
		fingerprint = opts.style(changedStyle, "changed")
	}

	rows := [][]string{
		{"runes read", strconv.Itoa(st.RunesRead)},
		{"eligible", strconv.Itoa(st.Eligible)},
		{"substituted", fmt.Sprintf("%d (%s)", st.Substituted, percent(st.Substituted, st.Eligible))},
		{"markers", strconv.Itoa(st.Markers)},
		{"runes written", strconv.Itoa(st.RunesOut)},
		{"bytes", fmt.Sprintf("%d -> %d", st.BytesIn, st.BytesOut)},
		{"input xxhash64", Hex(st.InputHash)},
		{"output xxhash64", Hex(st.OutputHash)},
		{"fingerprint", fingerprint},
		{"seed", strconv.FormatInt(st.Seed, 10)},
		{"duration", st.Duration.Round(time.Microsecond).String()},
	}
	if opts.Preset != "" {
		rows = append([][]string{{"preset", opts.Preset}}, rows...)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintClasses lists each class with its members and their code points.
func PrintClasses(w io.Writer, tbl *homoglyph.Table, opts PrintOptions) error {
	classes := tbl.Classes()
	fmt.Fprintln(w, opts.style(titleStyle, fmt.Sprintf("Homoglyph classes: %d (%d characters)", len(classes), tbl.Len())))

	table := tablewriter.NewWriter(w)
	table.Header("#", "Class", "Code points")
	for i, c := range classes {
		cps := make([]string, 0, len(c))
		for _, r := range c {
			cps = append(cps, fmt.Sprintf("%U", r))
		}
		if err := table.Append([]string{strconv.Itoa(i), c, strings.Join(cps, " ")}); err != nil {
			return err
		}
	}
	return table.Render()
}

func percent(n, of int) string {
	if of == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(of))
}

// Hex formats a 64-bit fingerprint as fixed-width hex.
func Hex(h uint64) string { return fmt.Sprintf("%016x", h) }

type jsonStats struct {
	Source      string  `json:"source,omitempty"`
	Preset      string  `json:"preset,omitempty"`
	RunesRead   int     `json:"runes_read"`
	Eligible    int     `json:"eligible"`
	Substituted int     `json:"substituted"`
	Markers     int     `json:"markers"`
	RunesOut    int     `json:"runes_written"`
	BytesIn     int64   `json:"bytes_read"`
	BytesOut    int64   `json:"bytes_written"`
	InputHash   string  `json:"input_xxhash64"`
	OutputHash  string  `json:"output_xxhash64"`
	Changed     bool    `json:"changed"`
	Seed        int64   `json:"seed"`
	DurationMS  float64 `json:"duration_ms"`
}

// WriteJSON pretty-prints st as a JSON object.
func WriteJSON(w io.Writer, st engine.Stats, opts PrintOptions) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonStats{
		Source:      opts.Source,
		Preset:      opts.Preset,
		RunesRead:   st.RunesRead,
		Eligible:    st.Eligible,
		Substituted: st.Substituted,
		Markers:     st.Markers,
		RunesOut:    st.RunesOut,
		BytesIn:     st.BytesIn,
		BytesOut:    st.BytesOut,
		InputHash:   Hex(st.InputHash),
		OutputHash:  Hex(st.OutputHash),
		Changed:     st.InputHash != st.OutputHash,
		Seed:        st.Seed,
		DurationMS:  float64(st.Duration) / float64(time.Millisecond),
	})
}
