package theory

import "math/rand"

// Canned progressions per mode, used when neither the caller nor a
// style profile supplies one.
var (
	majorProgressions = [][]string{
		{"I", "IV", "V", "I"},
		{"I", "vi", "IV", "V"},
		{"I", "V", "vi", "IV"},
		{"ii", "V", "I", "IV"},
	}
	minorProgressions = [][]string{
		{"i", "iv", "v", "i"},
		{"i", "VI", "III", "VII"},
		{"i", "iv", "VII", "III"},
		{"i", "v", "VI", "v"},
	}
)

// Progression picks one of the canned progressions for the mode,
// uniformly at random, and adjusts it to the requested length by
// cyclic repetition or truncation. A non-positive length yields an
// empty progression.
func Progression(mode Mode, length int, rng *rand.Rand) []string {
	if length <= 0 {
		return nil
	}

	pool := majorProgressions
	if mode == ModeMinor {
		pool = minorProgressions
	}
	chosen := pool[rng.Intn(len(pool))]

	return FitProgression(chosen, length)
}

// FitProgression repeats or truncates a progression to exactly n
// chord symbols.
func FitProgression(progression []string, n int) []string {
	if n <= 0 || len(progression) == 0 {
		return nil
	}
	out := make([]string, 0, n)
	for len(out) < n {
		out = append(out, progression...)
	}
	return out[:n]
}
