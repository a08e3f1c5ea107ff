package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cMajorScale = []string{"C", "D", "E", "F", "G", "A", "B"}

func TestChordNotes(t *testing.T) {
	tests := []struct {
		symbol string
		want   []string
	}{
		{"I", []string{"C", "E", "G"}},
		{"ii", []string{"D", "F", "A"}},
		{"IV", []string{"F", "A", "C"}},
		{"V", []string{"G", "B", "D"}},
		{"vi", []string{"A", "C", "E"}},
		{"V7", []string{"G", "B", "D", "F"}},
		{"Imaj7", []string{"C", "E", "G", "B"}},
		{"ii7", []string{"D", "F", "A", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, ChordNotes(cMajorScale, tt.symbol))
		})
	}
}

func TestChordNotesAlteredFifth(t *testing.T) {
	// The altered fifth is tagged with a trailing accidental rather
	// than respelled; note parsing resolves it later.
	dim := ChordNotes(cMajorScale, "Idim")
	require.Len(t, dim, 3)
	assert.Equal(t, "Gb", dim[2])

	aug := ChordNotes(cMajorScale, "Iaug")
	require.Len(t, aug, 3)
	assert.Equal(t, "G#", aug[2])
}

func TestChordNotesUnknownNumeralFallsBackToTonic(t *testing.T) {
	assert.Equal(t, []string{"C", "E", "G"}, ChordNotes(cMajorScale, "IX"))
	assert.Equal(t, []string{"C", "E", "G"}, ChordNotes(cMajorScale, "bVII"))
}

func TestChordNotesShortScale(t *testing.T) {
	assert.Nil(t, ChordNotes([]string{"C", "D"}, "I"))
}

func TestTriadTones(t *testing.T) {
	assert.Equal(t, []string{"G", "B", "D"}, TriadTones(cMajorScale, "V7"))
	assert.Equal(t, []string{"C", "E", "G"}, TriadTones(cMajorScale, "nonsense"))
}

func TestDegree(t *testing.T) {
	tests := []struct {
		symbol string
		want   int
		ok     bool
	}{
		{"I", 0, true},
		{"vii", 6, true},
		{"V7", 4, true},
		{"Imaj7", 0, true},
		{"vi", 5, true},
		{"IX", 0, false},
	}

	for _, tt := range tests {
		got, ok := Degree(tt.symbol)
		assert.Equal(t, tt.ok, ok, "Degree(%s) ok", tt.symbol)
		if tt.ok {
			assert.Equal(t, tt.want, got, "Degree(%s)", tt.symbol)
		}
	}
}
