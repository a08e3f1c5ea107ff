package generator

// Role classifies an instrument into the part generator that serves
// it. Anything not recognized as bass, percussion or a chordal
// instrument gets a melodic line.
type Role int

const (
	RoleMelody Role = iota
	RoleBass
	RoleChords
	RoleRhythm
)

var (
	bassInstruments = map[string]bool{
		"Bass": true, "Bass Guitar": true, "Double Bass": true,
		"Synth Bass": true, "Electric Bass": true, "Contrabass": true,
	}
	rhythmInstruments = map[string]bool{
		"Drums": true, "Percussion": true, "Drum Kit": true,
	}
	chordInstruments = map[string]bool{
		"Piano": true, "Guitar": true, "Electric Guitar": true,
		"Synth": true, "Pad": true,
	}
)

// RoleFor maps an instrument name to its generator role.
func RoleFor(instrument string) Role {
	switch {
	case bassInstruments[instrument]:
		return RoleBass
	case rhythmInstruments[instrument]:
		return RoleRhythm
	case chordInstruments[instrument]:
		return RoleChords
	default:
		return RoleMelody
	}
}

func (r Role) String() string {
	switch r {
	case RoleBass:
		return "bass"
	case RoleRhythm:
		return "rhythm"
	case RoleChords:
		return "chords"
	default:
		return "melody"
	}
}
