package theory

import (
	"strings"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/logger"
)

// romanDegree maps roman numeral tokens to 0-based scale degrees.
// Case encodes chord quality but resolves to the same degree.
var romanDegree = map[string]int{
	"I": 0, "II": 1, "III": 2, "IV": 3, "V": 4, "VI": 5, "VII": 6,
	"i": 0, "ii": 1, "iii": 2, "iv": 3, "v": 4, "vi": 5, "vii": 6,
}

// stripModifiers removes quality/extension markers from a chord
// symbol, leaving the bare numeral.
func stripModifiers(symbol string) string {
	base := symbol
	for _, mod := range []string{"maj7", "7", "dim", "aug", "°", "+"} {
		base = strings.ReplaceAll(base, mod, "")
	}
	return base
}

// Degree resolves a chord symbol to its 0-based scale degree. The
// second return is false when the numeral is unknown.
func Degree(symbol string) (int, bool) {
	deg, ok := romanDegree[stripModifiers(symbol)]
	return deg, ok
}

// ChordNotes maps a roman-numeral chord symbol onto the given scale:
// root, third and fifth at degrees d, d+2, d+4 (mod 7), plus the
// seventh at d+6 when a "7" modifier is present. A diminished or
// augmented fifth is marked by appending a literal "b" or "#" to the
// fifth's name instead of recomputing its pitch class; downstream
// note parsing folds the extra accidental back in. Unknown numerals
// fall back to the tonic triad and are logged, never fatal.
func ChordNotes(scale []string, symbol string) []string {
	if len(scale) < 7 {
		return nil
	}

	degree, ok := Degree(symbol)
	if !ok {
		logger.Warn("Unknown roman numeral, defaulting to tonic", logger.Fields{"symbol": symbol})
		degree = 0
	}

	isSeventh := strings.Contains(symbol, "7")
	isDiminished := strings.Contains(symbol, "dim") || strings.Contains(symbol, "°")
	isAugmented := strings.Contains(symbol, "aug") || strings.Contains(symbol, "+")

	root := scale[degree]
	third := scale[(degree+2)%7]
	fifth := scale[(degree+4)%7]

	switch {
	case isDiminished:
		fifth += "b"
	case isAugmented:
		fifth += "#"
	}

	notes := []string{root, third, fifth}
	if isSeventh {
		notes = append(notes, scale[(degree+6)%7])
	}
	return notes
}

// TriadTones returns just the three diatonic chord tones for a
// symbol, ignoring seventh/quality modifiers. Used by the melody
// generator, which only targets the plain triad.
func TriadTones(scale []string, symbol string) []string {
	if len(scale) < 7 {
		return nil
	}
	degree, ok := Degree(symbol)
	if !ok {
		degree = 0
	}
	return []string{scale[degree], scale[(degree+2)%7], scale[(degree+4)%7]}
}
