package generator

import (
	"math/rand"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/style"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/theory"
)

// Comping thresholds and extension intervals.
const (
	arpeggioComplexity  = 0.7 // classical: arpeggiate above this
	extensionComplexity = 0.6 // jazz: add the 9th above this
	upperComplexity     = 0.8 // jazz: add an 11th or 13th above this
	strumComplexity     = 0.4 // pop/rock: plain strums below this
	compRestChance      = 0.2
	ninthSemitones      = 14
	eleventhSemitones   = 18
	thirteenthSemitones = 21
	compVelocity        = 90
)

// ChordComping generates the chordal accompaniment. Each measure
// resolves its chord tones and then dispatches to a style-specific
// voicing: classical block chords or arpeggios, syncopated jazz stabs
// with upper extensions, pop/rock strums or rhythm-driven stabs, and
// a single whole-measure block for anything else.
func ChordComping(scaleNotes, progression []string, numMeasures int, st style.Style, complexity float64, rng *rand.Rand) []models.Measure {
	if numMeasures <= 0 || len(scaleNotes) < 7 {
		return nil
	}
	progression = theory.FitProgression(progression, numMeasures)

	measures := make([]models.Measure, 0, numMeasures)
	for m := 0; m < numMeasures; m++ {
		tones := theory.ChordNotes(scaleNotes, progression[m])
		measure := models.Measure{Number: m + 1}

		switch st {
		case style.StyleClassical:
			measure.Events = classicalPattern(tones, complexity, rng)
		case style.StyleJazz:
			measure.Events = jazzPattern(tones, complexity, rng)
		case style.StylePop, style.StyleRock:
			measure.Events = popPattern(tones, complexity, rng)
		default:
			measure.Events = []models.Event{models.NewChord(tones, measureBeats, compVelocity)}
		}

		measures = append(measures, measure)
	}
	return measures
}

// classicalPattern: eighth-note arpeggiated cycling with a mild
// velocity ramp at high complexity, otherwise two half-measure block
// chords where the second may be an inversion.
func classicalPattern(tones []string, complexity float64, rng *rand.Rand) []models.Event {
	if complexity > arpeggioComplexity {
		events := make([]models.Event, 0, 8)
		for i := 0; i < 8; i++ {
			note := models.NewNote(tones[i%len(tones)], 0.5, 75+(i%4)*5)
			events = append(events, note.At(float64(i)*0.5))
		}
		return events
	}

	first := models.NewChord(tones, 2.0, compVelocity)

	second := tones
	if len(tones) > 3 && rng.Float64() < 0.5 {
		// First inversion: rotate the root to the top
		second = append(append([]string{}, tones[1:]...), tones[0])
	}
	return []models.Event{
		first.At(0.0),
		models.NewChord(second, 2.0, compVelocity).At(2.0),
	}
}

// Two fixed syncopated comping grids; one is chosen per measure.
var jazzOffsets = [2][4]float64{
	{0.0, 1.5, 2.5, 3.5},
	{0.5, 1.5, 2.0, 3.0},
}

// jazzPattern: extend the chord with a 9th (and an 11th or 13th at
// the highest complexity), then place half-beat stabs on a
// syncopated grid with cycling dynamics.
func jazzPattern(tones []string, complexity float64, rng *rand.Rand) []models.Event {
	if complexity > extensionComplexity && len(tones) >= 3 {
		root := tones[0]
		ninth := theory.Transpose(root, ninthSemitones)
		if complexity > upperComplexity {
			upper := thirteenthSemitones
			if rng.Float64() > 0.5 {
				upper = eleventhSemitones
			}
			tones = append(append([]string{}, tones...), ninth, theory.Transpose(root, upper))
		} else {
			tones = append(append([]string{}, tones...), ninth)
		}
	}

	offsets := jazzOffsets[0]
	if rng.Float64() <= 0.5 {
		offsets = jazzOffsets[1]
	}

	events := make([]models.Event, 0, len(offsets))
	for i, offset := range offsets {
		stab := models.NewChord(tones, 0.5, 70+(i%3)*10)
		events = append(events, stab.At(offset))
	}
	return events
}

// popPattern: quarter-note strums at low complexity, otherwise a
// generated rhythm pattern drives chord stabs with occasional rests.
func popPattern(tones []string, complexity float64, rng *rand.Rand) []models.Event {
	if complexity < strumComplexity {
		events := make([]models.Event, 0, 4)
		for i := 0; i < 4; i++ {
			events = append(events, models.NewChord(tones, 1.0, compVelocity).At(float64(i)))
		}
		return events
	}

	pattern := theory.RhythmPattern(complexity, rng)
	var events []models.Event
	offset := 0.0
	for _, duration := range pattern {
		if offset >= measureBeats {
			break
		}
		if rng.Float64() < compRestChance {
			events = append(events, models.NewRest(duration).At(offset))
		} else {
			events = append(events, models.NewChord(tones, duration, compVelocity).At(offset))
		}
		offset += duration
	}
	return events
}
