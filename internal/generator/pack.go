package generator

import (
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
)

const measureBeats = 4.0

// barlineEpsilon absorbs float error from rescaled rhythm patterns so
// a measure that sums to 4.0-within-rounding does not spill a sliver
// into the next bar.
const barlineEpsilon = 1e-9

// packMeasures folds a flat sequence of already-built events into
// 4-beat measures. A new measure starts whenever the next event would
// run past the barline, so cumulative time stays monotonic per part
// and every measure begins at offset 0.
func packMeasures(events []models.Event) []models.Measure {
	var measures []models.Measure
	current := models.Measure{Number: 1}
	offset := 0.0

	for _, ev := range events {
		if offset+ev.Duration > measureBeats+barlineEpsilon {
			measures = append(measures, current)
			current = models.Measure{Number: current.Number + 1}
			offset = 0.0
		}
		current.Events = append(current.Events, ev.At(offset))
		offset += ev.Duration
	}

	if len(current.Events) > 0 {
		measures = append(measures, current)
	}
	return measures
}
