package composer

import (
	"math"
	"sort"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/logger"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/midi"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/theory"
)

// Krumhansl-Kessler key profiles, used to estimate key and mode from a
// pitch-class histogram.
var (
	majorKeyProfile = [12]float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	minorKeyProfile = [12]float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}
)

// Style-guess thresholds over the recovered note stream.
const (
	jazzChordSizeMean     = 3.5
	electronicSyncopation = 0.4 // fraction of off-beat onsets
	classicalNotesPerBar  = 8.0
	rockNotesPerBar       = 3.0
	onsetEpsilon          = 1e-3
)

// Analyze extracts composition parameters from a parsed MIDI file:
// key and mode by profile correlation over the pitch-class histogram,
// instruments from the program changes, and a rough style guess from
// chord sizes, syncopation and note density. The result is suitable
// as input to Compose for generating a piece in the same character.
func (c *Composer) Analyze(info *midi.FileInfo) models.Parameters {
	params := models.DefaultParameters()
	if info == nil {
		return params
	}

	if info.TempoBPM > 0 {
		params.Tempo = int(math.Round(info.TempoBPM))
	}

	melodic := make([]midi.Note, 0, len(info.Notes))
	for _, n := range info.Notes {
		if n.Channel != midi.DrumChannel {
			melodic = append(melodic, n)
		}
	}

	if key, mode, ok := estimateKey(melodic); ok {
		params.Key = key
		params.Mode = mode.String()
	}

	var instruments []string
	for _, program := range info.Programs {
		instruments = append(instruments, midi.InstrumentFor(program))
	}
	if info.HasDrums {
		instruments = append(instruments, "Drums")
	}
	if len(instruments) > 0 {
		params.Instruments = instruments
	}

	if info.TotalBeats > 0 && params.Tempo > 0 {
		params.Duration = int(info.TotalBeats * 60 / float64(params.Tempo))
		if params.Duration < models.MinDuration {
			params.Duration = models.MinDuration
		}
	}

	params.Style = guessStyle(melodic, info.TotalBeats)
	params.Normalize()

	logger.Info("🔍 Analyzed MIDI file", logger.Fields{
		"key":    params.Key,
		"mode":   params.Mode,
		"style":  params.Style,
		"tempo":  params.Tempo,
		"notes":  len(info.Notes),
		"tracks": info.TrackCount,
	})
	return params
}

// estimateKey correlates the duration-weighted pitch-class histogram
// against the major and minor key profiles in all twelve
// transpositions and picks the best match.
func estimateKey(notes []midi.Note) (string, theory.Mode, bool) {
	var histogram [12]float64
	total := 0.0
	for _, n := range notes {
		weight := n.Duration
		if weight <= 0 {
			weight = 0.25
		}
		histogram[n.Key%12] += weight
		total += weight
	}
	if total == 0 {
		return "", theory.ModeMajor, false
	}

	bestScore := math.Inf(-1)
	bestTonic := 0
	bestMode := theory.ModeMajor
	for tonic := 0; tonic < 12; tonic++ {
		var rotated [12]float64
		for pc := 0; pc < 12; pc++ {
			rotated[pc] = histogram[(tonic+pc)%12]
		}
		if score := correlate(rotated, majorKeyProfile); score > bestScore {
			bestScore, bestTonic, bestMode = score, tonic, theory.ModeMajor
		}
		if score := correlate(rotated, minorKeyProfile); score > bestScore {
			bestScore, bestTonic, bestMode = score, tonic, theory.ModeMinor
		}
	}

	return theory.NoteNames[bestTonic], bestMode, true
}

// correlate computes the Pearson correlation between a histogram
// rotation and a key profile.
func correlate(x, y [12]float64) float64 {
	var sumX, sumY float64
	for i := 0; i < 12; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/12, sumY/12

	var num, denomX, denomY float64
	for i := 0; i < 12; i++ {
		dx, dy := x[i]-meanX, y[i]-meanY
		num += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}
	if denomX == 0 || denomY == 0 {
		return 0
	}
	return num / math.Sqrt(denomX*denomY)
}

// guessStyle applies the coarse classification heuristics: big chords
// read as jazz, heavy syncopation as electronic, dense textures as
// classical, sparse ones as rock, everything else as pop.
func guessStyle(notes []midi.Note, totalBeats float64) string {
	if len(notes) == 0 {
		return "pop"
	}

	chordSizes := chordSizes(notes)
	if len(chordSizes) > 0 {
		sum := 0
		for _, size := range chordSizes {
			sum += size
		}
		if float64(sum)/float64(len(chordSizes)) > jazzChordSizeMean {
			return "jazz"
		}
	}

	syncopated := 0
	for _, n := range notes {
		if frac := math.Mod(n.Start, 1.0); frac > onsetEpsilon && frac < 1.0-onsetEpsilon {
			syncopated++
		}
	}
	if float64(syncopated) > float64(len(notes))*electronicSyncopation {
		return "electronic"
	}

	measures := math.Max(1, math.Ceil(totalBeats/4))
	density := float64(len(notes)) / measures
	switch {
	case density > classicalNotesPerBar:
		return "classical"
	case density < rockNotesPerBar:
		return "rock"
	default:
		return "pop"
	}
}

// chordSizes groups notes that start together on the same track and
// channel and returns the size of each group larger than one note.
func chordSizes(notes []midi.Note) []int {
	type onset struct {
		track   int
		channel uint8
		tick    int64
	}
	groups := map[onset]int{}
	for _, n := range notes {
		key := onset{n.Track, n.Channel, int64(math.Round(n.Start * 1000))}
		groups[key]++
	}

	var sizes []int
	for _, count := range groups {
		if count > 1 {
			sizes = append(sizes, count)
		}
	}
	sort.Ints(sizes)
	return sizes
}
