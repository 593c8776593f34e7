package radiofile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/radiomesh/builder"
)

// maxPrealloc bounds the point slice allocated before any radio is read.
const maxPrealloc = 1024

// lineReader yields non-blank trimmed lines together with their 1-based
// line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		if text := strings.TrimSpace(lr.sc.Text()); text != "" {
			return text, true
		}
	}

	return "", false
}

// malformed wraps ErrMalformed with the current line number.
func (lr *lineReader) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", lr.line, fmt.Sprintf(format, args...), ErrMalformed)
}

// Parse decodes the line format: a radio count n, n lines of "x y"
// coordinates, then the radius. Blank lines are skipped, fields may be
// separated by any run of spaces or tabs, and anything after the radius
// line is rejected.
func Parse(r io.Reader) (*Scenario, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	text, ok := lr.next()
	if !ok {
		return nil, lr.scanErr("missing radio count")
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return nil, lr.malformed("radio count %q", text)
	}

	// The count is untrusted: grow with the input instead of allocating n up front.
	s := &Scenario{Points: make([]builder.Point, 0, min(n, maxPrealloc))}
	for i := 0; i < n; i++ {
		if text, ok = lr.next(); !ok {
			return nil, lr.scanErr(fmt.Sprintf("expected %d radios, got %d", n, i))
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, lr.malformed("radio %d: want \"x y\", got %q", i+1, text)
		}
		x, errX := parseFinite(fields[0])
		y, errY := parseFinite(fields[1])
		if errX != nil || errY != nil {
			return nil, lr.malformed("radio %d: bad coordinates %q", i+1, text)
		}
		s.Points = append(s.Points, builder.Point{X: x, Y: y})
	}

	if text, ok = lr.next(); !ok {
		return nil, lr.scanErr("missing radius")
	}
	if s.Radius, err = parseFinite(text); err != nil || s.Radius < 0 {
		return nil, lr.malformed("radius %q", text)
	}

	if text, ok = lr.next(); ok {
		return nil, lr.malformed("unexpected trailing content %q", text)
	}
	if err = lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	return s, nil
}

// scanErr reports a premature end of input, preferring the scanner's I/O error.
func (lr *lineReader) scanErr(msg string) error {
	if err := lr.sc.Err(); err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}

	return fmt.Errorf("unexpected end of input: %s: %w", msg, ErrMalformed)
}

// parseFinite parses a float and rejects NaN and ±Inf.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}

	return v, nil
}

// Encode writes s in the line format. Coordinates use the shortest
// representation that parses back to the same float64.
func Encode(w io.Writer, s *Scenario) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(s.Points))
	for _, p := range s.Points {
		fmt.Fprintf(bw, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
	}
	fmt.Fprintln(bw, formatFloat(s.Radius))

	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
