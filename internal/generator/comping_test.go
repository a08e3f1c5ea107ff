package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/style"
)

func TestChordCompingClassicalArpeggiatesAtHighComplexity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	measures := ChordComping(testScale, []string{"I"}, 1, style.StyleClassical, 0.8, rng)
	require.Len(t, measures, 1)

	events := measures[0].Events
	require.Len(t, events, 8)
	for i, ev := range events {
		assert.Equal(t, models.EventNote, ev.Kind)
		assert.InDelta(t, float64(i)*0.5, ev.Offset, 1e-9)
		assert.InDelta(t, 0.5, ev.Duration, 1e-9)
		assert.Equal(t, 75+(i%4)*5, ev.Velocity)
	}
}

func TestChordCompingClassicalBlocksAtLowComplexity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	measures := ChordComping(testScale, []string{"I"}, 1, style.StyleClassical, 0.5, rng)
	require.Len(t, measures, 1)

	events := measures[0].Events
	require.Len(t, events, 2)
	for _, ev := range events {
		assert.Equal(t, models.EventChord, ev.Kind)
		assert.InDelta(t, 2.0, ev.Duration, 1e-9)
	}
	assert.InDelta(t, 0.0, events[0].Offset, 1e-9)
	assert.InDelta(t, 2.0, events[1].Offset, 1e-9)
}

func TestChordCompingJazzAddsExtensions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	measures := ChordComping(testScale, []string{"ii7"}, 1, style.StyleJazz, 0.9, rng)
	require.Len(t, measures, 1)

	events := measures[0].Events
	require.Len(t, events, 4)
	for i, ev := range events {
		assert.Equal(t, models.EventChord, ev.Kind)
		assert.InDelta(t, 0.5, ev.Duration, 1e-9)
		assert.Equal(t, 70+(i%3)*10, ev.Velocity)
		// ii7 is four tones; the 9th plus an 11th or 13th makes six
		assert.Len(t, ev.Pitches, 6)
		// 9th above D is E
		assert.Contains(t, ev.Pitches, "E")
	}
}

func TestChordCompingJazzNoExtensionsAtLowComplexity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	measures := ChordComping(testScale, []string{"ii"}, 1, style.StyleJazz, 0.5, rng)
	require.Len(t, measures, 1)

	for _, ev := range measures[0].Events {
		assert.Len(t, ev.Pitches, 3)
	}
}

func TestChordCompingPopStrumsAtLowComplexity(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	measures := ChordComping(testScale, []string{"IV"}, 1, style.StylePop, 0.2, rng)
	require.Len(t, measures, 1)

	events := measures[0].Events
	require.Len(t, events, 4)
	for i, ev := range events {
		assert.Equal(t, models.EventChord, ev.Kind)
		assert.InDelta(t, float64(i), ev.Offset, 1e-9)
		assert.InDelta(t, 1.0, ev.Duration, 1e-9)
		assert.Equal(t, []string{"F", "A", "C"}, ev.Pitches)
	}
}

func TestChordCompingPopStaysInsideMeasure(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	measures := ChordComping(testScale, testProgression, 8, style.StyleRock, 0.7, rng)
	require.Len(t, measures, 8)

	for _, m := range measures {
		for _, ev := range m.Events {
			assert.Less(t, ev.Offset, 4.0)
		}
	}
}

func TestChordCompingDefaultStyleWholeMeasureBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	measures := ChordComping(testScale, []string{"I"}, 2, style.StyleUnknown, 0.5, rng)
	require.Len(t, measures, 2)

	for _, m := range measures {
		require.Len(t, m.Events, 1)
		ev := m.Events[0]
		assert.Equal(t, models.EventChord, ev.Kind)
		assert.InDelta(t, 4.0, ev.Duration, 1e-9)
		assert.Equal(t, 90, ev.Velocity)
	}
}

func TestChordCompingDeterministic(t *testing.T) {
	first := ChordComping(testScale, testProgression, 8, style.StyleJazz, 0.9, rand.New(rand.NewSource(42)))
	second := ChordComping(testScale, testProgression, 8, style.StyleJazz, 0.9, rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)
}
