package composer

import (
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/logger"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/style"
)

// Key pool offered by Suggest. Flat spellings resolve to their sharp
// equivalents when the scale is derived.
var suggestionKeys = []string{
	"C", "G", "D", "A", "E", "B", "F#", "C#",
	"F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb",
}

const (
	majorBias          = 0.7
	minSuggestedParts  = 2
	maxSuggestedParts  = 4
	minSuggestedLength = 30  // seconds
	maxSuggestedLength = 180 // seconds, exclusive
)

// Suggest produces a coherent random parameter set: a style, a tempo
// inside that style's typical range, a key with a bias toward major,
// 2-4 of the style's typical instruments, one of its progressions and
// a duration between 30 seconds and 3 minutes.
func (c *Composer) Suggest() models.Parameters {
	styles := style.All()
	st := styles[c.rng.Intn(len(styles))]
	profile := style.ProfileFor(st)

	mode := "minor"
	if c.rng.Float64() < majorBias {
		mode = "major"
	}

	params := models.Parameters{
		Tempo:            profile.RandomTempo(c.rng),
		Key:              suggestionKeys[c.rng.Intn(len(suggestionKeys))],
		Mode:             mode,
		Style:            profile.Name,
		Instruments:      profile.RandomInstruments(c.rng, minSuggestedParts, maxSuggestedParts),
		ChordProgression: profile.TypicalProgression(c.rng),
		Duration:         minSuggestedLength + c.rng.Intn(maxSuggestedLength-minSuggestedLength),
	}

	logger.Info("💡 Suggested parameters", logger.Fields{
		"style":       params.Style,
		"key":         params.Key,
		"mode":        params.Mode,
		"tempo":       params.Tempo,
		"duration":    params.Duration,
		"instruments": len(params.Instruments),
	})
	return params
}
