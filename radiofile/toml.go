package radiofile

import (
	"fmt"
	"io"
	"math"

	"github.com/BurntSushi/toml"
)

// DecodeTOML decodes the TOML scenario format. Unknown keys are rejected so
// that typos such as "raduis" do not silently yield a zero radius.
func DecodeTOML(r io.Reader) (*Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %v: %w", err, ErrMalformed)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys %v: %w", undecoded, ErrMalformed)
	}
	if !md.IsDefined("radius") {
		return nil, fmt.Errorf("missing radius: %w", ErrMalformed)
	}
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius < 0 {
		return nil, fmt.Errorf("radius %g: %w", s.Radius, ErrMalformed)
	}
	for i, p := range s.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("radio %d: non-finite coordinates: %w", i+1, ErrMalformed)
		}
	}

	return &s, nil
}

// EncodeTOML writes s in the TOML scenario format.
func EncodeTOML(w io.Writer, s *Scenario) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}

	return nil
}
