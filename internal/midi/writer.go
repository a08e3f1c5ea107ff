package midi

import (
	"fmt"
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/logger"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
)

// TicksPerQuarter is the fixed resolution for every file this package
// writes.
const TicksPerQuarter = 960

const beatsPerMeasure = 4.0

var naturalSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// NoteToKey converts a note name into a MIDI key number. The name is
// a letter, any run of accidentals (each '#' raises and each 'b'
// lowers a semitone, so chord-tone tags like "D#b" resolve), and an
// optional octave digit; defaultOctave fills in when the octave is
// absent. Middle C ("C4") is key 60.
func NoteToKey(name string, defaultOctave int) (uint8, error) {
	if name == "" {
		return 0, fmt.Errorf("empty note name")
	}

	semitone, ok := naturalSemitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("invalid note name %q", name)
	}

	octave := defaultOctave
	i := 1
	for ; i < len(name); i++ {
		switch name[i] {
		case '#':
			semitone++
		case 'b':
			semitone--
		default:
			parsed := 0
			digits := 0
			for ; i < len(name); i++ {
				if name[i] < '0' || name[i] > '9' {
					return 0, fmt.Errorf("invalid note name %q", name)
				}
				parsed = parsed*10 + int(name[i]-'0')
				digits++
			}
			if digits == 0 {
				return 0, fmt.Errorf("invalid note name %q", name)
			}
			octave = parsed
		}
	}

	key := (octave+1)*12 + semitone
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("note %q octave %d out of MIDI range", name, octave)
	}
	return uint8(key), nil
}

// timedMessage is a message placed at an absolute tick, used to build
// each track before delta conversion.
type timedMessage struct {
	tick uint32
	off  bool // note-offs sort before note-ons at the same tick
	msg  midi.Message
}

// Encode renders a composition as a format 1 standard MIDI file: a
// tempo track followed by one track per part. Percussion parts land on
// the drum channel; the remaining parts take channels 0-15 in order,
// skipping the drum channel.
func Encode(comp *models.Composition) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var tempo smf.Track
	tempo.Add(0, smf.MetaTrackSequenceName(comp.Title))
	tempo.Add(0, smf.MetaMeter(4, 4))
	tempo.Add(0, smf.MetaTempo(float64(comp.Tempo)))
	tempo.Close(0)
	if err := s.Add(tempo); err != nil {
		return nil, fmt.Errorf("adding tempo track: %w", err)
	}

	nextChannel := uint8(0)
	for _, part := range comp.Parts {
		var ch uint8
		if IsPercussion(part.Instrument) {
			ch = DrumChannel
		} else {
			if nextChannel == DrumChannel {
				nextChannel++
			}
			if nextChannel > 15 {
				return nil, fmt.Errorf("too many melodic parts for 16 MIDI channels")
			}
			ch = nextChannel
			nextChannel++
		}

		track, err := encodePart(part, ch)
		if err != nil {
			return nil, fmt.Errorf("encoding part %q: %w", part.Instrument, err)
		}
		if err := s.Add(track); err != nil {
			return nil, fmt.Errorf("adding track for %q: %w", part.Instrument, err)
		}
	}

	return s, nil
}

func encodePart(part models.Part, ch uint8) (smf.Track, error) {
	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(part.Instrument))
	if ch != DrumChannel {
		track.Add(0, midi.ProgramChange(ch, ProgramFor(part.Instrument)))
	}

	octave := octaveFor(part.Instrument)

	var timed []timedMessage
	for i, measure := range part.Measures {
		measureStart := float64(i) * beatsPerMeasure
		for _, ev := range measure.Events {
			if ev.Kind == models.EventRest {
				continue
			}
			start := beatsToTicks(measureStart + ev.Offset)
			end := beatsToTicks(measureStart + ev.Offset + ev.Duration)
			if end <= start {
				end = start + 1
			}
			velocity := clampVelocity(ev.Velocity)

			for _, pitch := range ev.Pitches {
				key, err := NoteToKey(pitch, octave)
				if err != nil {
					logger.Warn("Skipping unplayable pitch", logger.Fields{
						"pitch":      pitch,
						"instrument": part.Instrument,
						"error":      err.Error(),
					})
					continue
				}
				timed = append(timed, timedMessage{tick: start, msg: midi.NoteOn(ch, key, velocity)})
				timed = append(timed, timedMessage{tick: end, off: true, msg: midi.NoteOff(ch, key)})
			}
		}
	}

	sort.SliceStable(timed, func(i, j int) bool {
		if timed[i].tick != timed[j].tick {
			return timed[i].tick < timed[j].tick
		}
		return timed[i].off && !timed[j].off
	})

	last := uint32(0)
	for _, tm := range timed {
		track.Add(tm.tick-last, tm.msg)
		last = tm.tick
	}
	track.Close(0)
	return track, nil
}

func beatsToTicks(beats float64) uint32 {
	return uint32(beats*TicksPerQuarter + 0.5)
}

func clampVelocity(v int) uint8 {
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return uint8(v)
}

// Write renders the composition and writes the MIDI bytes to w.
func Write(w io.Writer, comp *models.Composition) error {
	s, err := Encode(comp)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

// WriteFile renders the composition to a .mid file on disk.
func WriteFile(path string, comp *models.Composition) error {
	s, err := Encode(comp)
	if err != nil {
		return err
	}
	return s.WriteFile(path)
}
