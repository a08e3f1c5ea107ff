package theory

import "strings"

// Mode selects the diatonic interval table.
type Mode int

const (
	ModeMajor Mode = iota
	ModeMinor
)

// Interval steps in semitones from the root.
var (
	majorScaleSteps = [7]int{0, 2, 4, 5, 7, 9, 11}
	minorScaleSteps = [7]int{0, 2, 3, 5, 7, 8, 10}
)

// ParseMode maps a mode string to a Mode. Anything other than "major"
// is treated as minor.
func ParseMode(s string) Mode {
	if strings.ToLower(s) == "major" {
		return ModeMajor
	}
	return ModeMinor
}

func (m Mode) String() string {
	if m == ModeMajor {
		return "major"
	}
	return "minor"
}

// ScaleNotes derives the seven diatonic pitch classes for the given
// root and mode. The returned slice always has length 7; degree
// indices are 0-based and wrap modulo 7 for upper structures.
func ScaleNotes(root string, mode Mode) ([]string, error) {
	rootIndex, err := NoteIndex(root)
	if err != nil {
		return nil, err
	}

	steps := majorScaleSteps
	if mode == ModeMinor {
		steps = minorScaleSteps
	}

	notes := make([]string, 0, 7)
	for _, step := range steps {
		notes = append(notes, NoteNames[(rootIndex+step)%12])
	}
	return notes, nil
}
