package generator

import (
	"math/rand"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/style"
)

// drumHit is one onset in a per-measure percussion template. Pitches
// are placeholder note names: C2 kick, E2 snare, A2 hi-hat or ride.
type drumHit struct {
	offset   float64
	pitch    string
	duration float64
}

const (
	drumVelocity   = 90
	maxOnsetOffset = 3.99
	offsetJitter   = 0.05 // +-0.05 beats when a measure is varied
	velocityJitter = 10   // +-10 when a measure is varied
)

var drumTemplates = map[style.Style][]drumHit{
	style.StyleRock: {
		{0.0, "C2", 0.5}, {1.0, "C2", 0.5}, {2.0, "C2", 0.5}, {3.0, "C2", 0.5},
		{1.0, "E2", 0.5}, {3.0, "E2", 0.5},
		{0.5, "A2", 0.5}, {1.5, "A2", 0.5}, {2.5, "A2", 0.5}, {3.5, "A2", 0.5},
	},
	style.StylePop: {
		{0.0, "C2", 0.5}, {1.0, "E2", 0.5}, {2.0, "C2", 0.5}, {3.0, "E2", 0.5},
		{0.0, "A2", 0.25}, {0.5, "A2", 0.25}, {1.0, "A2", 0.25}, {1.5, "A2", 0.25},
		{2.0, "A2", 0.25}, {2.5, "A2", 0.25}, {3.0, "A2", 0.25}, {3.5, "A2", 0.25},
	},
	style.StyleJazz: {
		{0.0, "C2", 0.5}, {1.0, "E2", 0.5}, {2.0, "C2", 0.5}, {3.0, "E2", 0.5},
		{0.0, "A2", 0.25}, {0.5, "A2", 0.25}, {1.0, "A2", 0.25}, {1.75, "A2", 0.25},
		{2.0, "A2", 0.25}, {2.5, "A2", 0.25}, {3.0, "A2", 0.25}, {3.5, "A2", 0.25},
	},
	style.StyleElectronic: {
		{0.0, "C2", 0.5}, {1.0, "C2", 0.5}, {1.5, "E2", 0.5}, {2.0, "C2", 0.5}, {3.5, "E2", 0.5},
		{0.0, "A2", 0.25}, {0.5, "A2", 0.25}, {1.0, "A2", 0.25}, {1.5, "A2", 0.25},
		{2.0, "A2", 0.25}, {2.5, "A2", 0.25}, {3.0, "A2", 0.25}, {3.5, "A2", 0.25},
	},
}

// Percussion generates the drum part from the style's onset template.
// Each measure is varied with probability rhythmVariation: every
// onset's offset shifts by up to +-0.05 beats (clamped to [0,3.99])
// and its velocity by up to +-10. Unvaried measures replay the
// template exactly at velocity 90. Styles without a template use the
// pop groove.
func Percussion(st style.Style, numMeasures int, rhythmVariation float64, rng *rand.Rand) []models.Measure {
	if numMeasures <= 0 {
		return nil
	}

	template, ok := drumTemplates[st]
	if !ok {
		template = drumTemplates[style.StylePop]
	}

	measures := make([]models.Measure, 0, numMeasures)
	for m := 0; m < numMeasures; m++ {
		vary := rng.Float64() < rhythmVariation
		measure := models.Measure{Number: m + 1}

		for _, hit := range template {
			offset := hit.offset
			velocity := drumVelocity
			if vary {
				offset += rng.Float64()*2*offsetJitter - offsetJitter
				velocity += rng.Intn(2*velocityJitter+1) - velocityJitter
			}
			if offset < 0 {
				offset = 0
			}
			if offset > maxOnsetOffset {
				offset = maxOnsetOffset
			}
			note := models.NewNote(hit.pitch, hit.duration, velocity)
			measure.Events = append(measure.Events, note.At(offset))
		}

		measures = append(measures, measure)
	}
	return measures
}
