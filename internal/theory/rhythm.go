package theory

import "math/rand"

// Duration pools keyed by complexity band. Repeated entries weight
// the draw toward those values.
var (
	simpleDurations   = []float64{2.0, 1.0, 1.0, 1.0}
	moderateDurations = []float64{2.0, 1.0, 1.0, 0.5, 0.5}
	complexDurations  = []float64{1.0, 0.5, 0.5, 0.25, 0.25}
)

const measureBeats = 4.0

// RhythmPattern samples note durations with replacement from the
// complexity-appropriate pool until they sum to at least one measure
// (4 beats). The last draw may overshoot; callers that need an exact
// measure rescale the result.
func RhythmPattern(complexity float64, rng *rand.Rand) []float64 {
	var pool []float64
	switch {
	case complexity < 0.3:
		pool = simpleDurations
	case complexity < 0.6:
		pool = moderateDurations
	default:
		pool = complexDurations
	}

	var pattern []float64
	total := 0.0
	for total < measureBeats {
		d := pool[rng.Intn(len(pool))]
		pattern = append(pattern, d)
		total += d
	}
	return pattern
}
