package style

import "math/rand"

// Profile bundles a genre's characteristic defaults: voicing
// complexity, rhythmic variation, typical progressions and
// instrumentation, and the tempo range the genre usually sits in.
type Profile struct {
	Name            string     `json:"name"`
	ChordComplexity float64    `json:"chord_complexity"`
	RhythmVariation float64    `json:"rhythm_variation"`
	Progressions    [][]string `json:"typical_progressions"`
	Instruments     []string   `json:"typical_instruments"`
	TempoRange      [2]int     `json:"tempo_range"`
	Description     string     `json:"description"`
}

var profiles = map[Style]*Profile{
	StyleClassical: {
		Name:            "classical",
		ChordComplexity: 0.8,
		RhythmVariation: 0.6,
		Progressions: [][]string{
			{"I", "IV", "V", "I"},
			{"I", "V", "vi", "IV"},
			{"I", "vi", "IV", "V"},
			{"I", "IV", "I", "V"},
		},
		Instruments: []string{"Piano", "Violin", "Cello", "Flute"},
		TempoRange:  [2]int{60, 120},
		Description: "Traditional Western art music with formal structures and orchestral instrumentation.",
	},
	StyleJazz: {
		Name:            "jazz",
		ChordComplexity: 0.9,
		RhythmVariation: 0.9,
		Progressions: [][]string{
			{"ii7", "V7", "Imaj7", "VI7"},
			{"Imaj7", "VI7", "ii7", "V7"},
			{"iii7", "VI7", "ii7", "V7"},
			{"I7", "IV7", "I7", "V7"},
		},
		Instruments: []string{"Piano", "Saxophone", "Double Bass", "Drums"},
		TempoRange:  [2]int{80, 140},
		Description: "Improvisation-heavy style characterized by swing rhythms and extended harmonic vocabulary.",
	},
	StylePop: {
		Name:            "pop",
		ChordComplexity: 0.5,
		RhythmVariation: 0.4,
		Progressions: [][]string{
			{"I", "V", "vi", "IV"},
			{"I", "IV", "V", "IV"},
			{"vi", "IV", "I", "V"},
			{"I", "V", "IV", "V"},
		},
		Instruments: []string{"Piano", "Guitar", "Bass", "Drums", "Synth"},
		TempoRange:  [2]int{90, 130},
		Description: "Contemporary popular music with catchy melodies, verse-chorus structure, and modern production.",
	},
	StyleRock: {
		Name:            "rock",
		ChordComplexity: 0.6,
		RhythmVariation: 0.7,
		Progressions: [][]string{
			{"I", "IV", "V", "IV"},
			{"I", "V", "IV", "IV"},
			{"I", "III", "IV", "IV"},
			{"I", "bVII", "IV", "I"},
		},
		Instruments: []string{"Electric Guitar", "Bass Guitar", "Drums", "Piano"},
		TempoRange:  [2]int{100, 160},
		Description: "Guitar-driven style with strong beats and often rebellious themes.",
	},
	StyleElectronic: {
		Name:            "electronic",
		ChordComplexity: 0.4,
		RhythmVariation: 0.8,
		Progressions: [][]string{
			{"I", "vi", "IV", "V"},
			{"I", "V", "vi", "IV"},
			{"vi", "IV", "I", "V"},
			{"I", "I", "IV", "V"},
		},
		Instruments: []string{"Synth Lead", "Synth Bass", "Drums", "Pad"},
		TempoRange:  [2]int{110, 180},
		Description: "Computer-generated music with electronic sounds and repetitive beats.",
	},
}

// All returns every named style in a stable order.
func All() []Style {
	return []Style{StyleClassical, StyleJazz, StylePop, StyleRock, StyleElectronic}
}

// ProfileFor returns the profile for a known style, or nil for
// StyleUnknown.
func ProfileFor(s Style) *Profile {
	return profiles[s]
}

// Lookup resolves a style name to its Style and profile. Unknown
// names yield (StyleUnknown, nil).
func Lookup(name string) (Style, *Profile) {
	s := Parse(name)
	return s, profiles[s]
}

// TypicalProgression picks one of the profile's progressions at
// random. The returned slice is a copy and safe to mutate.
func (p *Profile) TypicalProgression(rng *rand.Rand) []string {
	chosen := p.Progressions[rng.Intn(len(p.Progressions))]
	out := make([]string, len(chosen))
	copy(out, chosen)
	return out
}

// RandomInstruments picks between min and max distinct instruments
// from the profile's typical set.
func (p *Profile) RandomInstruments(rng *rand.Rand, min, max int) []string {
	if max > len(p.Instruments) {
		max = len(p.Instruments)
	}
	if min > max {
		min = max
	}
	count := min
	if max > min {
		count = min + rng.Intn(max-min+1)
	}

	shuffled := make([]string, len(p.Instruments))
	copy(shuffled, p.Instruments)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}

// RandomTempo picks a tempo within the profile's typical range.
func (p *Profile) RandomTempo(rng *rand.Rand) int {
	lo, hi := p.TempoRange[0], p.TempoRange[1]
	return lo + rng.Intn(hi-lo+1)
}
