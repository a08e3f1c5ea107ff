package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/style"
)

func TestSuggestProducesCoherentParameters(t *testing.T) {
	comp := New(WithSeed(1))

	for i := 0; i < 50; i++ {
		params := comp.Suggest()

		st, profile := style.Lookup(params.Style)
		require.NotEqual(t, style.StyleUnknown, st, "suggested style must be in the catalog")
		require.NotNil(t, profile)

		assert.GreaterOrEqual(t, params.Tempo, profile.TempoRange[0])
		assert.LessOrEqual(t, params.Tempo, profile.TempoRange[1])
		assert.Contains(t, suggestionKeys, params.Key)
		assert.Contains(t, []string{"major", "minor"}, params.Mode)

		assert.GreaterOrEqual(t, len(params.Instruments), 2)
		assert.LessOrEqual(t, len(params.Instruments), 4)
		for _, instrument := range params.Instruments {
			assert.Contains(t, profile.Instruments, instrument)
		}

		assert.NotEmpty(t, params.ChordProgression)
		assert.GreaterOrEqual(t, params.Duration, 30)
		assert.Less(t, params.Duration, 180)
	}
}

func TestSuggestSeededIsReproducible(t *testing.T) {
	first := New(WithSeed(99)).Suggest()
	second := New(WithSeed(99)).Suggest()
	assert.Equal(t, first, second)
}

func TestSuggestionsFeedCompose(t *testing.T) {
	comp := New(WithSeed(7))

	params := comp.Suggest()
	params.Normalize()

	composition, err := comp.Compose(params)
	require.NoError(t, err)
	assert.Len(t, composition.Parts, len(params.Instruments))
	assert.Greater(t, composition.TotalMeasures(), 0)
}
