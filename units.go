package tokenize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// unitDef describes a measurement unit: the base unit its values are
// scaled to and either a linear factor or a conversion function
// (used for temperatures).
type unitDef struct {
	Canon  string
	Factor float64
	Conv   func(float64) float64
}

func (u unitDef) apply(v float64) float64 {
	if u.Conv != nil {
		return u.Conv(v)
	}
	return v * u.Factor
}

var siUnits = map[string]unitDef{
	// Lengths
	"m": {Canon: "m", Factor: 1}, "mm": {Canon: "m", Factor: 1e-3},
	"cm": {Canon: "m", Factor: 1e-2}, "dm": {Canon: "m", Factor: 0.1},
	"km": {Canon: "m", Factor: 1e3},
	// Areas
	"m²": {Canon: "m²", Factor: 1}, "fm": {Canon: "m²", Factor: 1},
	"cm²": {Canon: "m²", Factor: 1e-4}, "km²": {Canon: "m²", Factor: 1e6},
	"ha": {Canon: "m²", Factor: 1e4},
	// Volumes
	"m³": {Canon: "m³", Factor: 1}, "cm³": {Canon: "m³", Factor: 1e-6},
	"l": {Canon: "l", Factor: 1}, "ltr": {Canon: "l", Factor: 1},
	"dl": {Canon: "l", Factor: 0.1}, "cl": {Canon: "l", Factor: 0.01},
	"ml": {Canon: "l", Factor: 1e-3},
	// Weights
	"g": {Canon: "kg", Factor: 1e-3}, "gr": {Canon: "kg", Factor: 1e-3},
	"mg": {Canon: "kg", Factor: 1e-6}, "kg": {Canon: "kg", Factor: 1},
	"t": {Canon: "kg", Factor: 1e3},
	// Time
	"s": {Canon: "s", Factor: 1}, "ms": {Canon: "s", Factor: 1e-3},
	"mín": {Canon: "s", Factor: 60}, "min": {Canon: "s", Factor: 60},
	"klst": {Canon: "s", Factor: 3600},
	// Electricity and energy
	"V": {Canon: "V", Factor: 1}, "mV": {Canon: "V", Factor: 1e-3},
	"kV": {Canon: "V", Factor: 1e3},
	"A": {Canon: "A", Factor: 1}, "mA": {Canon: "A", Factor: 1e-3},
	"W": {Canon: "W", Factor: 1}, "mW": {Canon: "W", Factor: 1e-3},
	"kW": {Canon: "W", Factor: 1e3}, "MW": {Canon: "W", Factor: 1e6},
	"GW": {Canon: "W", Factor: 1e9}, "TW": {Canon: "W", Factor: 1e12},
	"Wst": {Canon: "J", Factor: 3600}, "kWst": {Canon: "J", Factor: 3.6e6},
	"MWst": {Canon: "J", Factor: 3.6e9},
	"J": {Canon: "J", Factor: 1}, "kJ": {Canon: "J", Factor: 1e3},
	"MJ": {Canon: "J", Factor: 1e6},
	"kcal": {Canon: "J", Factor: 4184}, "cal": {Canon: "J", Factor: 4.184},
	// Force and pressure
	"N": {Canon: "N", Factor: 1}, "kN": {Canon: "N", Factor: 1e3},
	"Pa": {Canon: "Pa", Factor: 1}, "hPa": {Canon: "Pa", Factor: 100},
	"kPa": {Canon: "Pa", Factor: 1e3}, "bar": {Canon: "Pa", Factor: 1e5},
	// Frequency
	"Hz": {Canon: "Hz", Factor: 1}, "kHz": {Canon: "Hz", Factor: 1e3},
	"MHz": {Canon: "Hz", Factor: 1e6}, "GHz": {Canon: "Hz", Factor: 1e9},
	// Speed
	"m/s": {Canon: "m/s", Factor: 1},
	// Ratios
	"%": {Canon: "%", Factor: 1}, "‰": {Canon: "%", Factor: 0.1},
	// Temperature
	"°":  {Canon: "°", Factor: 1},
	"K":  {Canon: "K", Factor: 1},
	"°C": {Canon: "K", Conv: func(c float64) float64 { return c + 273.15 }},
	"°F": {Canon: "K", Conv: func(f float64) float64 { return (f + 459.67) * 5 / 9 }},
	"°K": {Canon: "K", Factor: 1},
}

// isPercentUnit reports whether the canonical unit denotes a ratio,
// which is emitted as a PERCENT token rather than a MEASUREMENT.
func isPercentUnit(canon string) bool { return canon == "%" }

// singleLetterUnits is the set of one-letter unit symbols; a digit
// run followed by one of these is a measurement, not a
// number-with-letter address form.
var singleLetterUnits = func() map[string]bool {
	m := make(map[string]bool)
	for k := range siUnits {
		if utf8.RuneCountInString(k) == 1 {
			r, _ := utf8.DecodeRuneInString(k)
			if unicode.IsLetter(r) {
				m[k] = true
			}
		}
	}
	return m
}()

// unitAlternation is the regex alternation of all unit symbols and
// currency signs, longest first so that "mm" wins over "m".
var unitAlternation = func() string {
	keys := make([]string, 0, len(siUnits)+len(currencySymbols))
	for k := range siUnits {
		keys = append(keys, k)
	}
	for k := range currencySymbols {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(quoted, "|")
}()

var (
	// Icelandic-style number (dot thousands, decimal comma) plus unit.
	numWithUnitRE1 = regexp.MustCompile(`^([0-9]+(\.[0-9][0-9][0-9])*(,[0-9]+)?)(` + unitAlternation + `)`)
	// English-style number (comma thousands, decimal point) plus unit.
	numWithUnitRE2 = regexp.MustCompile(`^([0-9]+(,[0-9][0-9][0-9])*(\.[0-9]+)?)(` + unitAlternation + `)`)
	// Digits, a vulgar-fraction character, and a unit.
	numWithUnitRE3 = regexp.MustCompile(`^([0-9]+)([\x{00BC}-\x{00BE}\x{2150}-\x{215E}])(` + unitAlternation + `)`)
	// A unit symbol on its own, as matched directly after a number.
	siUnitsRE = regexp.MustCompile(`^(` + unitAlternation + `)`)
)
