package style

import "strings"

// Style is the closed set of genres the generators branch on.
// Unrecognized names map to StyleUnknown, which every branch treats
// as its documented default.
type Style int

const (
	StyleUnknown Style = iota
	StyleClassical
	StyleJazz
	StylePop
	StyleRock
	StyleElectronic
)

// Parse maps a style name to its Style. Matching is case-insensitive;
// anything unrecognized is StyleUnknown.
func Parse(name string) Style {
	switch strings.ToLower(name) {
	case "classical":
		return StyleClassical
	case "jazz":
		return StyleJazz
	case "pop":
		return StylePop
	case "rock":
		return StyleRock
	case "electronic":
		return StyleElectronic
	default:
		return StyleUnknown
	}
}

func (s Style) String() string {
	switch s {
	case StyleClassical:
		return "classical"
	case StyleJazz:
		return "jazz"
	case StylePop:
		return "pop"
	case StyleRock:
		return "rock"
	case StyleElectronic:
		return "electronic"
	default:
		return "unknown"
	}
}
