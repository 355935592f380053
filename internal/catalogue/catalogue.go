// Package catalogue holds the static UCUM prefix and atom tables (§3) as
// embedded YAML data, decoded once and exposed through simple lookups. It
// has no dependency on the root ucum package so that package can depend on
// it without an import cycle; base axes are therefore named by the plain
// strings below rather than by ucum.Axis.
package catalogue

import (
	"embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/prefixes.yaml
var prefixesYAML []byte

//go:embed data/atoms.yaml
var atomsYAML []byte

// Prefix is one entry of the metric prefix table (§3).
type Prefix struct {
	Code        string  `yaml:"code"`
	Name        string  `yaml:"name"`
	PrintSymbol string  `yaml:"printSymbol"`
	Factor      float64 `yaml:"factor"`
}

// AtomKind classifies how an Atom's value is derived from its reference unit.
type AtomKind string

const (
	KindBase    AtomKind = "base"
	KindRatio   AtomKind = "ratio"
	KindSpecial AtomKind = "special"
)

// Atom is one entry of the unit atom table (§3, §4.1). BaseAxis is set iff
// Kind == KindBase, naming one of the seven base axes as a plain string
// ("L", "M", "T", "A", "Theta", "Q", "F") to avoid importing the root
// package's Axis type. RefUnit is a UCUM expression string to be re-parsed
// by the root package when the atom is resolved; "" denotes the
// dimensionless unit 1.
type Atom struct {
	Code        string   `yaml:"code"`
	PrintSymbol string   `yaml:"printSymbol"`
	Class       string   `yaml:"class"`
	Property    string   `yaml:"property"`
	IsMetric    bool     `yaml:"isMetric"`
	IsSpecial   bool     `yaml:"isSpecial"`
	IsArbitrary bool     `yaml:"isArbitrary"`
	Kind        AtomKind `yaml:"kind"`
	BaseAxis    string   `yaml:"baseAxis"`
	RefUnit     string   `yaml:"refUnit"`
	Factor      float64  `yaml:"factor"`
	Function    string   `yaml:"function"`
}

var (
	once     sync.Once
	loadErr  error
	prefixes map[string]Prefix
	atoms    map[string]Atom
)

func load() {
	var rawPrefixes []Prefix
	if err := yaml.Unmarshal(prefixesYAML, &rawPrefixes); err != nil {
		loadErr = err
		return
	}
	var rawAtoms []Atom
	if err := yaml.Unmarshal(atomsYAML, &rawAtoms); err != nil {
		loadErr = err
		return
	}

	prefixes = make(map[string]Prefix, len(rawPrefixes))
	for _, p := range rawPrefixes {
		prefixes[p.Code] = p
	}

	atoms = make(map[string]Atom, len(rawAtoms))
	for _, a := range rawAtoms {
		atoms[a.Code] = a
	}
}

// ensureLoaded decodes the embedded tables exactly once, lazily, the way
// a package-level sync.Once guards one-time immutable initialization.
func ensureLoaded() error {
	once.Do(load)
	return loadErr
}

// LookupPrefix returns the prefix registered under code, if any.
func LookupPrefix(code string) (Prefix, bool) {
	if err := ensureLoaded(); err != nil {
		return Prefix{}, false
	}
	p, ok := prefixes[code]
	return p, ok
}

// LookupAtom returns the atom registered under code, if any.
func LookupAtom(code string) (Atom, bool) {
	if err := ensureLoaded(); err != nil {
		return Atom{}, false
	}
	a, ok := atoms[code]
	return a, ok
}

// TwoCharPrefixCodes lists the prefix codes longer than one character. Per
// §3 "da" (deka) is the only one; symbol resolution in the root package
// tries these before falling back to single-character prefix codes.
func TwoCharPrefixCodes() []string {
	return []string{"da"}
}

// AllAtoms returns every catalogued atom, for diagnostics and Info (§6, C8).
func AllAtoms() ([]Atom, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]Atom, 0, len(atoms))
	for _, a := range atoms {
		out = append(out, a)
	}
	return out, nil
}

// AllPrefixes returns every catalogued prefix.
func AllPrefixes() ([]Prefix, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]Prefix, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, p)
	}
	return out, nil
}
