package midi

// General MIDI program numbers for the instrument names the style
// profiles hand out. Anything unlisted falls back to piano.
var gmPrograms = map[string]uint8{
	"Piano":           0,
	"Guitar":          24,
	"Electric Guitar": 27,
	"Bass":            33,
	"Bass Guitar":     33,
	"Electric Bass":   33,
	"Synth Bass":      38,
	"Violin":          40,
	"Cello":           42,
	"Double Bass":     43,
	"Contrabass":      43,
	"Saxophone":       64,
	"Flute":           73,
	"Synth":           80,
	"Synth Lead":      80,
	"Pad":             88,
}

// DrumChannel is the conventional percussion channel (channel 10,
// zero-indexed).
const DrumChannel uint8 = 9

const (
	bassOctave    = 2
	defaultOctave = 4
)

// Preferred instrument name per program for the reverse mapping.
var programNames = map[uint8]string{
	0:  "Piano",
	24: "Guitar",
	27: "Electric Guitar",
	33: "Bass",
	38: "Synth Bass",
	40: "Violin",
	42: "Cello",
	43: "Double Bass",
	64: "Saxophone",
	73: "Flute",
	80: "Synth Lead",
	88: "Pad",
}

// ProgramFor returns the General MIDI program for an instrument name.
func ProgramFor(instrument string) uint8 {
	if p, ok := gmPrograms[instrument]; ok {
		return p
	}
	return 0
}

// InstrumentFor maps a General MIDI program back to an instrument
// name, falling back to piano for anything unrecognized.
func InstrumentFor(program uint8) string {
	if name, ok := programNames[program]; ok {
		return name
	}
	return "Piano"
}

// IsPercussion reports whether the instrument belongs on the drum
// channel.
func IsPercussion(instrument string) bool {
	switch instrument {
	case "Drums", "Percussion", "Drum Kit":
		return true
	}
	return false
}

// octaveFor picks the register for pitches written without an octave:
// bass instruments sit two octaves down from the default.
func octaveFor(instrument string) int {
	switch instrument {
	case "Bass", "Bass Guitar", "Electric Bass", "Synth Bass", "Double Bass", "Contrabass":
		return bassOctave
	}
	return defaultOctave
}
