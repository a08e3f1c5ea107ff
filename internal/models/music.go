package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/logger"
)

// Parameter bounds enforced by Normalize
const (
	MinTempo    = 40
	MaxTempo    = 240
	MinDuration = 10
	MaxDuration = 300
)

// Parameters holds the settings for one composition request.
// Producers (handlers, CLIs) call Normalize before handing the
// record to the composer; the composer itself never clamps.
type Parameters struct {
	Tempo            int      `json:"tempo"`
	Key              string   `json:"key"`
	Mode             string   `json:"mode"`
	Style            string   `json:"style"`
	Instruments      []string `json:"instruments"`
	Duration         int      `json:"duration"` // seconds
	ChordProgression []string `json:"chord_progression,omitempty"`
	ChordComplexity  *float64 `json:"chord_complexity,omitempty"` // 0.0-1.0
	RhythmVariation  *float64 `json:"rhythm_variation,omitempty"` // 0.0-1.0
	Seed             *int64   `json:"seed,omitempty"`             // optional seed for reproducibility
}

// DefaultParameters returns the stock parameter set: a 60 second pop
// piece in C major for piano, bass and drums at 120 BPM.
func DefaultParameters() Parameters {
	return Parameters{
		Tempo:       120,
		Key:         "C",
		Mode:        "major",
		Style:       "pop",
		Instruments: []string{"Piano", "Bass", "Drums"},
		Duration:    60,
	}
}

// Normalize clamps tempo, duration and the unit-interval scalars to
// their documented ranges and lowercases mode and style. Out-of-range
// values are logged, never rejected.
func (p *Parameters) Normalize() {
	if p.Tempo < MinTempo {
		logger.Warn("Tempo below minimum, clamping", logger.Fields{"tempo": p.Tempo, "min": MinTempo})
		p.Tempo = MinTempo
	} else if p.Tempo > MaxTempo {
		logger.Warn("Tempo above maximum, clamping", logger.Fields{"tempo": p.Tempo, "max": MaxTempo})
		p.Tempo = MaxTempo
	}

	p.Mode = strings.ToLower(p.Mode)
	p.Style = strings.ToLower(p.Style)

	if p.Duration < MinDuration {
		logger.Warn("Duration below minimum, clamping", logger.Fields{"duration": p.Duration, "min": MinDuration})
		p.Duration = MinDuration
	} else if p.Duration > MaxDuration {
		logger.Warn("Duration above maximum, clamping", logger.Fields{"duration": p.Duration, "max": MaxDuration})
		p.Duration = MaxDuration
	}

	if p.ChordComplexity != nil {
		*p.ChordComplexity = clampUnit(*p.ChordComplexity)
	}
	if p.RhythmVariation != nil {
		*p.RhythmVariation = clampUnit(*p.RhythmVariation)
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (p Parameters) String() string {
	return fmt.Sprintf("Parameters(tempo=%d, key=%s, mode=%s, style=%s, instruments=%v, duration=%ds)",
		p.Tempo, p.Key, p.Mode, p.Style, p.Instruments, p.Duration)
}

// EventKind discriminates the Event union.
type EventKind string

const (
	EventNote  EventKind = "note"
	EventChord EventKind = "chord"
	EventRest  EventKind = "rest"
)

// Event is one timed entry within a measure: a single note, a chord
// stack, or a rest. Offset and Duration are in beats (4/4 time, so
// 0 <= Offset < 4). Rests carry no pitches and no velocity.
type Event struct {
	Kind     EventKind `json:"kind"`
	Offset   float64   `json:"offset"`
	Duration float64   `json:"duration"`
	Pitches  []string  `json:"pitches,omitempty"`
	Velocity int       `json:"velocity,omitempty"`
}

// NewNote builds a single-pitch Event at offset 0; the packer assigns
// the real offset.
func NewNote(pitch string, duration float64, velocity int) Event {
	return Event{Kind: EventNote, Duration: duration, Pitches: []string{pitch}, Velocity: velocity}
}

// NewChord builds a multi-pitch Event at offset 0.
func NewChord(pitches []string, duration float64, velocity int) Event {
	return Event{Kind: EventChord, Duration: duration, Pitches: pitches, Velocity: velocity}
}

// NewRest builds a silent Event at offset 0.
func NewRest(duration float64) Event {
	return Event{Kind: EventRest, Duration: duration}
}

// At returns a copy of the event placed at the given offset.
func (e Event) At(offset float64) Event {
	e.Offset = offset
	return e
}

// Measure is an ordered run of events within one 4-beat bar.
type Measure struct {
	Number int     `json:"number"`
	Events []Event `json:"events"`
}

// Part is one instrument's full sequence of measures.
type Part struct {
	Instrument string    `json:"instrument"`
	Measures   []Measure `json:"measures"`
}

// Composition is the assembled result of one compose call. It is a
// value tree with no shared mutable state; callers treat it as
// immutable once returned.
type Composition struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Tempo         int       `json:"tempo"`
	Key           string    `json:"key"`
	Mode          string    `json:"mode"`
	TimeSignature string    `json:"time_signature"`
	Parts         []Part    `json:"parts"`
	CreatedAt     time.Time `json:"created_at"`
}

// TotalMeasures returns the length of the longest part.
func (c *Composition) TotalMeasures() int {
	max := 0
	for _, p := range c.Parts {
		if len(p.Measures) > max {
			max = len(p.Measures)
		}
	}
	return max
}
