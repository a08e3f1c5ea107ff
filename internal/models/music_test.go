package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsTempoAndDuration(t *testing.T) {
	tests := []struct {
		name         string
		tempo        int
		duration     int
		wantTempo    int
		wantDuration int
	}{
		{name: "below minimums", tempo: 10, duration: 2, wantTempo: 40, wantDuration: 10},
		{name: "above maximums", tempo: 500, duration: 900, wantTempo: 240, wantDuration: 300},
		{name: "in range untouched", tempo: 120, duration: 60, wantTempo: 120, wantDuration: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			p.Tempo = tt.tempo
			p.Duration = tt.duration
			p.Normalize()
			assert.Equal(t, tt.wantTempo, p.Tempo)
			assert.Equal(t, tt.wantDuration, p.Duration)
		})
	}
}

func TestNormalizeClampsScalarsAndLowercases(t *testing.T) {
	complexity := 1.7
	variation := -0.2

	p := DefaultParameters()
	p.Mode = "Major"
	p.Style = "JAZZ"
	p.ChordComplexity = &complexity
	p.RhythmVariation = &variation
	p.Normalize()

	assert.Equal(t, "major", p.Mode)
	assert.Equal(t, "jazz", p.Style)
	assert.InDelta(t, 1.0, *p.ChordComplexity, 1e-9)
	assert.InDelta(t, 0.0, *p.RhythmVariation, 1e-9)
}

func TestEventConstructors(t *testing.T) {
	note := NewNote("C", 1.0, 80)
	assert.Equal(t, EventNote, note.Kind)
	assert.Equal(t, []string{"C"}, note.Pitches)
	assert.Equal(t, 80, note.Velocity)

	chord := NewChord([]string{"C", "E", "G"}, 2.0, 90)
	assert.Equal(t, EventChord, chord.Kind)
	assert.Len(t, chord.Pitches, 3)

	rest := NewRest(0.5)
	assert.Equal(t, EventRest, rest.Kind)
	assert.Empty(t, rest.Pitches)
	assert.Zero(t, rest.Velocity)
}

func TestEventAtDoesNotMutate(t *testing.T) {
	note := NewNote("C", 1.0, 80)
	placed := note.At(2.5)

	assert.InDelta(t, 2.5, placed.Offset, 1e-9)
	assert.InDelta(t, 0.0, note.Offset, 1e-9)
}

func TestTotalMeasures(t *testing.T) {
	comp := Composition{
		Parts: []Part{
			{Instrument: "Piano", Measures: make([]Measure, 8)},
			{Instrument: "Drums", Measures: make([]Measure, 12)},
		},
	}
	assert.Equal(t, 12, comp.TotalMeasures())

	empty := Composition{}
	assert.Equal(t, 0, empty.TotalMeasures())
}
