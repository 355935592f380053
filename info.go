package ucum

// Info summarizes a resolved unit expression for introspection (§6, C8):
// its dimension, and whether it is special (non-ratio) or arbitrary.
type Info struct {
	Dimension       Dimension
	IsSpecial       bool
	SpecialFunction string
	IsArbitrary     bool
	ArbitraryCode   string
}

// Inspect parses and canonicalizes unit and returns its Info.
func Inspect(unit string) (Info, error) {
	canon, err := resolveUnitString(unit)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Dimension:       canon.Dimension,
		IsSpecial:       canon.Special != "",
		SpecialFunction: canon.Special,
		IsArbitrary:     canon.Arbitrary,
		ArbitraryCode:   canon.ArbitraryCode,
	}, nil
}

// IsSpecialUnit reports whether unit resolves to a special (non-ratio)
// unit such as Cel or pH. Unparseable input reports false.
func IsSpecialUnit(unit string) bool {
	info, err := Inspect(unit)
	return err == nil && info.IsSpecial
}

// IsArbitraryUnit reports whether unit resolves to an arbitrary unit such
// as [IU]. Unparseable input reports false.
func IsArbitraryUnit(unit string) bool {
	info, err := Inspect(unit)
	return err == nil && info.IsArbitrary
}
