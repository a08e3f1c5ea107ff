package composer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/generator"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/logger"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/style"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/theory"
)

// Fallbacks when neither the parameters nor a style profile supply a
// value.
const (
	defaultChordComplexity = 0.5
	defaultRhythmVariation = 0.3
	defaultTimeSignature   = "4/4"
)

// Composer turns a parameter set into a full multi-part composition.
// It owns its random source; two composers built with the same seed
// produce identical output for identical parameters.
type Composer struct {
	rng *rand.Rand
}

// Option configures a Composer.
type Option func(*Composer)

// WithSeed makes the composer deterministic.
func WithSeed(seed int64) Option {
	return func(c *Composer) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies a caller-owned random source.
func WithRand(rng *rand.Rand) Option {
	return func(c *Composer) {
		c.rng = rng
	}
}

// New builds a Composer. Without options the random source is seeded
// from the clock.
func New(opts ...Option) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// Compose generates a composition from the given parameters. Callers
// are expected to have run Normalize; Compose never clamps. A seed in
// the parameters overrides the composer's random source for this call
// only, so one request can be reproduced without reseeding the
// composer.
func (c *Composer) Compose(params models.Parameters) (*models.Composition, error) {
	rng := c.rng
	if params.Seed != nil {
		rng = rand.New(rand.NewSource(*params.Seed))
	}

	st, profile := style.Lookup(params.Style)
	if st == style.StyleUnknown {
		logger.Warn("Unknown style, generators will use their defaults", logger.Fields{
			"style": params.Style,
		})
	}

	complexity := defaultChordComplexity
	variation := defaultRhythmVariation
	if profile != nil {
		complexity = profile.ChordComplexity
		variation = profile.RhythmVariation
	}
	if params.ChordComplexity != nil {
		complexity = *params.ChordComplexity
	}
	if params.RhythmVariation != nil {
		variation = *params.RhythmVariation
	}

	mode := theory.ParseMode(params.Mode)
	scaleNotes, err := theory.ScaleNotes(params.Key, mode)
	if err != nil {
		return nil, fmt.Errorf("deriving scale for key %q: %w", params.Key, err)
	}

	numMeasures := measureCount(params.Duration, params.Tempo)

	progression := params.ChordProgression
	if len(progression) == 0 {
		if profile != nil {
			progression = profile.TypicalProgression(rng)
		} else {
			progression = theory.Progression(mode, 4, rng)
		}
	}

	logger.Info("🎼 Composing piece", logger.Fields{
		"style":       st.String(),
		"key":         params.Key,
		"mode":        mode.String(),
		"tempo":       params.Tempo,
		"measures":    numMeasures,
		"instruments": len(params.Instruments),
	})

	parts := make([]models.Part, 0, len(params.Instruments))
	for _, instrument := range params.Instruments {
		part := models.Part{Instrument: instrument}

		switch generator.RoleFor(instrument) {
		case generator.RoleBass:
			part.Measures = generator.BassLine(scaleNotes, progression, numMeasures, rng)
		case generator.RoleRhythm:
			part.Measures = generator.Percussion(st, numMeasures, variation, rng)
		case generator.RoleChords:
			part.Measures = generator.ChordComping(scaleNotes, progression, numMeasures, st, complexity, rng)
		default:
			part.Measures = generator.Melody(scaleNotes, progression, numMeasures, variation, rng)
		}

		parts = append(parts, part)
	}

	return &models.Composition{
		ID:            uuid.New().String(),
		Title:         "Untitled Composition",
		Tempo:         params.Tempo,
		Key:           params.Key,
		Mode:          mode.String(),
		TimeSignature: defaultTimeSignature,
		Parts:         parts,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// measureCount converts a target duration in seconds into whole 4-beat
// measures at the given tempo. Always at least one.
func measureCount(durationSeconds, tempo int) int {
	n := int(float64(durationSeconds) / 60.0 * float64(tempo) / 4.0)
	if n < 1 {
		n = 1
	}
	return n
}
