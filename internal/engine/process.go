package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	xxhash "github.com/cespare/xxhash/v2"
)

// ErrInvalidUTF8 is returned when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Stats summarizes a single Process run.
type Stats struct {
	RunesRead   int           `json:"runes_read"`
	Eligible    int           `json:"eligible"`
	Substituted int           `json:"substituted"`
	Markers     int           `json:"markers"`
	RunesOut    int           `json:"runes_written"`
	BytesIn     int64         `json:"bytes_read"`
	BytesOut    int64         `json:"bytes_written"`
	InputHash   uint64        `json:"input_xxhash64"`
	OutputHash  uint64        `json:"output_xxhash64"`
	Seed        int64         `json:"seed"`
	Duration    time.Duration `json:"duration_ns"`
}

// Process reads runes from src until EOF and writes the transformed sequence
// to dst in order. Output is flushed after every newline and before Process
// returns, including on error; nothing already written is rolled back.
func (e *Engine) Process(src io.Reader, dst io.Writer) (Stats, error) {
	start := time.Now()
	st := Stats{Seed: e.seed}

	rr, ok := src.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(src)
	}
	inHash := xxhash.New()
	outHash := xxhash.New()
	bw := bufio.NewWriter(io.MultiWriter(dst, outHash))

	var (
		enc [utf8.UTFMax]byte
		buf = make([]rune, 0, 2)
		err error
	)
	for {
		ch, size, rerr := rr.ReadRune()
		if rerr != nil {
			if rerr != io.EOF {
				err = fmt.Errorf("read input at byte %d: %w", st.BytesIn, rerr)
			}
			break
		}
		if ch == utf8.RuneError && size == 1 {
			err = fmt.Errorf("read input at byte %d: %w", st.BytesIn, ErrInvalidUTF8)
			break
		}
		st.RunesRead++
		st.BytesIn += int64(size)
		_, _ = inHash.Write(enc[:utf8.EncodeRune(enc[:], ch)])

		out := e.Translate(ch, e.p)
		if e.table.Has(ch) {
			st.Eligible++
			if out != ch {
				st.Substituted++
			}
		}
		buf = append(buf[:0], out)
		if e.stealth {
			buf = e.AppendInject(buf[:0], out, e.q)
			st.Markers += len(buf) - 1
		}
		for _, r := range buf {
			n, werr := bw.WriteRune(r)
			if werr != nil {
				err = fmt.Errorf("write output: %w", werr)
				break
			}
			st.RunesOut++
			st.BytesOut += int64(n)
		}
		if err != nil {
			break
		}
		if out == '\n' {
			if ferr := bw.Flush(); ferr != nil {
				err = fmt.Errorf("flush output: %w", ferr)
				break
			}
		}
	}

	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("flush output: %w", ferr)
	}
	st.InputHash = inHash.Sum64()
	st.OutputHash = outHash.Sum64()
	st.Duration = time.Since(start)
	if err != nil {
		e.log.Debug("transform failed", "error", err, "runes_read", st.RunesRead)
		return st, err
	}
	e.log.Debug("transform done",
		"runes_read", st.RunesRead,
		"substituted", st.Substituted,
		"markers", st.Markers,
		"duration", st.Duration,
	)
	return st, nil
}

// TransformString runs Process over s and returns the result.
func (e *Engine) TransformString(s string) (string, Stats, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	st, err := e.Process(strings.NewReader(s), &sb)
	return sb.String(), st, err
}
