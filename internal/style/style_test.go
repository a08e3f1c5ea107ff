package style

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Style
	}{
		{"classical", StyleClassical},
		{"jazz", StyleJazz},
		{"Pop", StylePop},
		{"ROCK", StyleRock},
		{"electronic", StyleElectronic},
		{"dubstep", StyleUnknown},
		{"", StyleUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.name), "Parse(%q)", tt.name)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, st := range All() {
		assert.Equal(t, st, Parse(st.String()))
	}
}

func TestAllStylesHaveProfiles(t *testing.T) {
	for _, st := range All() {
		p := ProfileFor(st)
		require.NotNil(t, p, st.String())

		assert.Equal(t, st.String(), p.Name)
		assert.GreaterOrEqual(t, p.ChordComplexity, 0.0)
		assert.LessOrEqual(t, p.ChordComplexity, 1.0)
		assert.GreaterOrEqual(t, p.RhythmVariation, 0.0)
		assert.LessOrEqual(t, p.RhythmVariation, 1.0)
		assert.NotEmpty(t, p.Progressions)
		assert.NotEmpty(t, p.Instruments)
		assert.Less(t, p.TempoRange[0], p.TempoRange[1])
	}

	assert.Nil(t, ProfileFor(StyleUnknown))
}

func TestLookup(t *testing.T) {
	st, profile := Lookup("jazz")
	require.NotNil(t, profile)
	assert.Equal(t, StyleJazz, st)
	assert.InDelta(t, 0.9, profile.ChordComplexity, 1e-9)

	st, profile = Lookup("polka")
	assert.Equal(t, StyleUnknown, st)
	assert.Nil(t, profile)
}

func TestTypicalProgressionReturnsCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := ProfileFor(StylePop)

	got := p.TypicalProgression(rng)
	require.NotEmpty(t, got)
	got[0] = "mutated"

	for _, prog := range p.Progressions {
		assert.NotContains(t, prog, "mutated")
	}
}

func TestRandomInstruments(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	p := ProfileFor(StyleRock)

	for i := 0; i < 50; i++ {
		picked := p.RandomInstruments(rng, 2, 4)
		assert.GreaterOrEqual(t, len(picked), 2)
		assert.LessOrEqual(t, len(picked), 4)

		seen := map[string]bool{}
		for _, instrument := range picked {
			assert.Contains(t, p.Instruments, instrument)
			assert.False(t, seen[instrument], "duplicate instrument %s", instrument)
			seen[instrument] = true
		}
	}
}

func TestRandomTempoInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	p := ProfileFor(StyleElectronic)

	for i := 0; i < 50; i++ {
		tempo := p.RandomTempo(rng)
		assert.GreaterOrEqual(t, tempo, p.TempoRange[0])
		assert.LessOrEqual(t, tempo, p.TempoRange[1])
	}
}
