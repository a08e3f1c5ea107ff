package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/style"
)

func TestPercussionZeroVariationReplaysTemplate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	measures := Percussion(style.StyleRock, 4, 0, rng)
	require.Len(t, measures, 4)

	template := drumTemplates[style.StyleRock]
	for _, m := range measures {
		require.Len(t, m.Events, len(template))
		for i, ev := range m.Events {
			assert.InDelta(t, template[i].offset, ev.Offset, 1e-9)
			assert.InDelta(t, template[i].duration, ev.Duration, 1e-9)
			assert.Equal(t, []string{template[i].pitch}, ev.Pitches)
			assert.Equal(t, 90, ev.Velocity)
		}
	}
}

func TestPercussionFullVariationStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	measures := Percussion(style.StyleElectronic, 16, 1.0, rng)
	require.Len(t, measures, 16)

	for _, m := range measures {
		for _, ev := range m.Events {
			assert.GreaterOrEqual(t, ev.Offset, 0.0)
			assert.LessOrEqual(t, ev.Offset, 3.99)
			assert.GreaterOrEqual(t, ev.Velocity, 80)
			assert.LessOrEqual(t, ev.Velocity, 100)
		}
	}
}

func TestPercussionUnknownStyleUsesPopGroove(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	measures := Percussion(style.StyleUnknown, 2, 0, rng)
	require.Len(t, measures, 2)

	assert.Len(t, measures[0].Events, len(drumTemplates[style.StylePop]))
}

func TestPercussionTemplateVoices(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	measures := Percussion(style.StyleJazz, 1, 0, rng)
	require.Len(t, measures, 1)

	voices := map[string]bool{}
	for _, ev := range measures[0].Events {
		voices[ev.Pitches[0]] = true
	}
	assert.True(t, voices["C2"], "kick present")
	assert.True(t, voices["E2"], "snare present")
	assert.True(t, voices["A2"], "ride present")
}

func TestPercussionDeterministic(t *testing.T) {
	first := Percussion(style.StylePop, 8, 0.5, rand.New(rand.NewSource(42)))
	second := Percussion(style.StylePop, 8, 0.5, rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)
}

func TestPercussionZeroMeasures(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	assert.Nil(t, Percussion(style.StyleRock, 0, 0.3, rng))
}
