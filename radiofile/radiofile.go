// Package radiofile reads and writes radio-network scenarios: a list of radio
// positions plus the connectivity radius.
//
// Two formats are supported.
//
// Line format (the classic GraphData.txt layout):
//
//	4          ← number of radios n
//	0 0        ← n lines "x y"
//	1 0
//	0 1
//	5 5
//	1.5        ← radius
//
// TOML format:
//
//	radius = 1.5
//
//	[[radios]]
//	x = 0.0
//	y = 0.0
package radiofile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/radiomesh/builder"
)

// Scenario is a parsed input: radio positions (vertex i is Points[i]) and
// the connectivity radius.
type Scenario struct {
	Points []builder.Point `toml:"radios"`
	Radius float64         `toml:"radius"`
}

var (
	// ErrMalformed indicates a syntactically or semantically invalid scenario.
	ErrMalformed = errors.New("radiofile: malformed scenario")

	// ErrUnknownFormat indicates a file extension no decoder is registered for.
	ErrUnknownFormat = errors.New("radiofile: unknown format")
)

// Format names accepted by Load and Save.
const (
	FormatLines = "lines"
	FormatTOML  = "toml"
)

// FormatFor picks the format from a path: ".toml" selects FormatTOML,
// anything else FormatLines.
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}

	return FormatLines
}

// Load opens path and decodes it according to FormatFor(path).
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: %w", path, err)
	}
	defer f.Close()

	var s *Scenario
	switch FormatFor(path) {
	case FormatTOML:
		s, err = DecodeTOML(f)
	default:
		s, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: %w", path, err)
	}

	return s, nil
}

// Save writes s to path in the given format, creating or truncating the file.
func Save(path, format string, s *Scenario) error {
	if format != FormatLines && format != FormatTOML {
		return fmt.Errorf("save scenario %q: %q: %w", path, format, ErrUnknownFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save scenario %q: %w", path, err)
	}

	switch format {
	case FormatTOML:
		err = EncodeTOML(f, s)
	default:
		err = Encode(f, s)
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("save scenario %q: %w", path, err)
	}

	return nil
}
