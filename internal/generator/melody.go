package generator

import (
	"math/rand"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/theory"
)

// Per-event probabilities for the melodic line.
const (
	chordToneProbability = 0.7
	restProbability      = 0.1
	melodyVelocityFloor  = 70
	melodyVelocitySpan   = 31 // velocities drawn from [70,100]
)

// Melody generates a melodic line over the progression. Each measure
// gets its own rhythm pattern, rescaled to exactly 4 beats so the
// duration ratios between events survive; pitches favor the current
// chord's triad tones 70% of the time, any event becomes a rest 10%
// of the time, and velocities are randomized in [70,100] for
// humanization.
func Melody(scaleNotes, progression []string, numMeasures int, rhythmVariation float64, rng *rand.Rand) []models.Measure {
	if numMeasures <= 0 || len(scaleNotes) < 7 {
		return nil
	}
	progression = theory.FitProgression(progression, numMeasures)

	var events []models.Event
	for m := 0; m < numMeasures; m++ {
		chordTones := theory.TriadTones(scaleNotes, progression[m])

		pattern := theory.RhythmPattern(rhythmVariation, rng)
		total := 0.0
		for _, d := range pattern {
			total += d
		}
		scaleFactor := measureBeats / total

		for _, d := range pattern {
			duration := d * scaleFactor

			var pitch string
			if rng.Float64() < chordToneProbability {
				pitch = chordTones[rng.Intn(len(chordTones))]
			} else {
				pitch = scaleNotes[rng.Intn(len(scaleNotes))]
			}

			if rng.Float64() < restProbability {
				events = append(events, models.NewRest(duration))
				continue
			}

			velocity := melodyVelocityFloor + rng.Intn(melodyVelocitySpan)
			events = append(events, models.NewNote(pitch, duration, velocity))
		}
	}

	return packMeasures(events)
}
