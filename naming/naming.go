// Package naming assembles file names for simulation data and job
// output. A file name is a prefix followed by one segment per
// parameter, each segment being a one-letter symbol and the
// letter-encoded parameter value, e.g.
//
//	out_Dk8.000_Vj1.000_No1.000.out
//
// so every file carries the exact parameter set that produced it.
package naming

import (
	"fmt"
	"strings"

	"github.com/active-matter/simsub/codec"
	"github.com/active-matter/simsub/util"
)

// Parameter describes one encoded segment of a file name.
type Parameter struct {
	// Symbol is the single-letter tag preceding the encoded value,
	// e.g. "D" for density.
	Symbol string
	// Attribute is the key looked up in the attribute map.
	Attribute string
}

// Standard describes a family of file names.
type Standard struct {
	Prefix     string
	Parameters []Parameter
	Extension  string
}

// Filename builds the file name for the given attributes. Every
// parameter of the standard must be present in the attribute map;
// missing attributes and unencodable values are collected and
// reported together.
func (s Standard) Filename(attrs map[string]float64) (string, error) {
	var errs util.MultiError
	var b strings.Builder

	b.WriteString(s.Prefix)
	for _, p := range s.Parameters {
		v, ok := attrs[p.Attribute]
		if !ok {
			errs = append(errs, fmt.Errorf("missing attribute %q", p.Attribute))
			continue
		}
		code, err := codec.Encode(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("attribute %q: %w", p.Attribute, err))
			continue
		}
		b.WriteString("_")
		b.WriteString(p.Symbol)
		b.WriteString(code)
	}
	b.WriteString(s.Extension)

	if len(errs) > 0 {
		return "", errs
	}
	return b.String(), nil
}

// WithExtension returns a copy of the standard with a different
// extension, for deriving e.g. image names from data names.
func (s Standard) WithExtension(ext string) Standard {
	s.Extension = ext
	return s
}

// launchParameters are the attributes that entirely define a
// simulation run: particle density, self-propulsion velocity, and
// number of particles.
var launchParameters = []Parameter{
	{Symbol: "D", Attribute: "density"},
	{Symbol: "V", Attribute: "vzero"},
	{Symbol: "N", Attribute: "number"},
}

// Output is the standard for job output files.
var Output = Standard{
	Prefix:     "out",
	Parameters: launchParameters,
	Extension:  ".out",
}

// Launch is the standard for simulation data directories.
var Launch = Standard{
	Prefix:     "launch",
	Parameters: launchParameters,
}
