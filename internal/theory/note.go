package theory

import (
	"fmt"
	"strings"
)

// NoteNames lists the 12 chromatic pitch classes. Flats are always
// normalized to the enharmonic sharp, so this table is the canonical
// spelling throughout the engine.
var NoteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flatToSharp normalizes the five flat spellings that have a sharp
// equivalent in NoteNames.
var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var naturalIndex = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// InvalidNoteNameError is the one hard failure of the theory layer: a
// note name whose letter cannot be resolved. Everything else degrades
// to a default.
type InvalidNoteNameError struct {
	Name string
}

func (e *InvalidNoteNameError) Error() string {
	return fmt.Sprintf("invalid note name: %q", e.Name)
}

// NoteIndex resolves a note name (letter plus optional # or b) to its
// chromatic index 0-11.
func NoteIndex(name string) (int, error) {
	if name == "" {
		return 0, &InvalidNoteNameError{Name: name}
	}

	if mapped, ok := flatToSharp[name]; ok {
		name = mapped
	}

	letter := strings.ToUpper(name[:1])[0]
	idx, ok := naturalIndex[letter]
	if !ok {
		return 0, &InvalidNoteNameError{Name: name}
	}

	if len(name) > 1 {
		switch name[1] {
		case '#':
			idx = (idx + 1) % 12
		case 'b':
			idx = (idx + 11) % 12
		}
	}

	return idx, nil
}

// Transpose shifts a note name by the given number of semitones,
// wrapping modulo 12. Unparseable names are returned unchanged so the
// generators stay total.
func Transpose(name string, semitones int) string {
	idx, err := NoteIndex(name)
	if err != nil {
		return name
	}
	shifted := ((idx+semitones)%12 + 12) % 12
	return NoteNames[shifted]
}

// consonantIntervals are the interval classes treated as consonant:
// unison, thirds, perfect fourth and fifth, sixths.
var consonantIntervals = map[int]bool{0: true, 3: true, 4: true, 5: true, 7: true, 8: true, 9: true}

// IsConsonant reports whether two notes form a consonant interval.
// Unparseable names count as consonant.
func IsConsonant(a, b string) bool {
	ia, err := NoteIndex(a)
	if err != nil {
		return true
	}
	ib, err := NoteIndex(b)
	if err != nil {
		return true
	}
	interval := ia - ib
	if interval < 0 {
		interval = -interval
	}
	return consonantIntervals[interval%12]
}
