package midi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
)

func onePartComposition(pitch string, measures int) *models.Composition {
	comp := &models.Composition{Title: "Piece " + pitch, Tempo: 120}
	part := models.Part{Instrument: "Piano"}
	for m := 0; m < measures; m++ {
		part.Measures = append(part.Measures, models.Measure{
			Number: m + 1,
			Events: []models.Event{models.NewNote(pitch, 4.0, 90)},
		})
	}
	comp.Parts = []models.Part{part}
	return comp
}

func encodeForTest(t *testing.T, comp *models.Composition) *smf.SMF {
	t.Helper()
	s, err := Encode(comp)
	require.NoError(t, err)
	return s
}

func reparse(t *testing.T, s *smf.SMF) *FileInfo {
	t.Helper()
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	info, err := Read(&buf)
	require.NoError(t, err)
	return info
}

func TestCombineSequentialShiftsLaterPieces(t *testing.T) {
	first := encodeForTest(t, onePartComposition("C", 2))  // 8 beats
	second := encodeForTest(t, onePartComposition("G", 1)) // 4 beats

	combined, err := CombineSequential([]*smf.SMF{first, second})
	require.NoError(t, err)

	info := reparse(t, combined)
	require.Len(t, info.Notes, 3)

	var cStarts, gStarts []float64
	for _, n := range info.Notes {
		switch n.Key {
		case 60:
			cStarts = append(cStarts, n.Start)
		case 67:
			gStarts = append(gStarts, n.Start)
		}
	}
	require.Len(t, cStarts, 2)
	require.Len(t, gStarts, 1)

	// The second piece starts after the first's 8 beats plus the
	// 4-beat gap
	assert.InDelta(t, 12.0, gStarts[0], 0.01)
	assert.InDelta(t, 16.0, info.TotalBeats, 0.01)
}

func TestCombineLayeredKeepsPiecesAtZero(t *testing.T) {
	first := encodeForTest(t, onePartComposition("C", 1))
	second := encodeForTest(t, onePartComposition("G", 1))

	combined, err := CombineLayered([]*smf.SMF{first, second})
	require.NoError(t, err)

	info := reparse(t, combined)
	require.Len(t, info.Notes, 2)
	for _, n := range info.Notes {
		assert.InDelta(t, 0.0, n.Start, 0.01)
	}
	assert.InDelta(t, 4.0, info.TotalBeats, 0.01)
}

func TestCombineEmptyInput(t *testing.T) {
	_, err := CombineSequential(nil)
	require.Error(t, err)
}

func TestCombinePreservesTempo(t *testing.T) {
	comp := onePartComposition("C", 1)
	comp.Tempo = 90
	s := encodeForTest(t, comp)

	combined, err := CombineSequential([]*smf.SMF{s})
	require.NoError(t, err)

	info := reparse(t, combined)
	assert.InDelta(t, 90, info.TempoBPM, 0.01)
}
