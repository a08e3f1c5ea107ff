package midi

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Note is one sounded note recovered from a MIDI file, with timing in
// beats rather than ticks.
type Note struct {
	Track    int     `json:"track"`
	Channel  uint8   `json:"channel"`
	Key      uint8   `json:"key"`
	Velocity uint8   `json:"velocity"`
	Start    float64 `json:"start"`    // beats from the file start
	Duration float64 `json:"duration"` // beats
}

// FileInfo summarizes a parsed MIDI file for analysis and display.
type FileInfo struct {
	TempoBPM   float64 `json:"tempo_bpm"`
	TrackCount int     `json:"track_count"`
	Programs   []uint8 `json:"programs"`
	HasDrums   bool    `json:"has_drums"`
	Notes      []Note  `json:"-"`
	TotalBeats float64 `json:"total_beats"`
}

// Read parses a standard MIDI file from r. Notes left hanging by a
// missing note-off are dropped; the first tempo event wins.
func Read(r io.Reader) (*FileInfo, error) {
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing MIDI data: %w", err)
	}
	return inspect(s)
}

// ReadFile parses a standard MIDI file from disk.
func ReadFile(path string) (*FileInfo, error) {
	s, err := smf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading MIDI file: %w", err)
	}
	return inspect(s)
}

type activeNote struct {
	startTick uint32
	velocity  uint8
}

type noteID struct {
	channel uint8
	key     uint8
}

func inspect(s *smf.SMF) (*FileInfo, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format %v", s.TimeFormat)
	}
	ticksPerQuarter := float64(ticks.Resolution())

	info := &FileInfo{
		TempoBPM:   120,
		TrackCount: len(s.Tracks),
	}
	seenPrograms := map[uint8]bool{}
	tempoSet := false

	for trackIndex, track := range s.Tracks {
		var absTick uint32
		open := map[noteID]activeNote{}

		for _, event := range track {
			absTick += event.Delta
			msg := event.Message

			var (
				ch, key, vel, prog uint8
				bpm                float64
			)
			switch {
			case msg.GetNoteOn(&ch, &key, &vel):
				open[noteID{ch, key}] = activeNote{startTick: absTick, velocity: vel}
				if ch == DrumChannel {
					info.HasDrums = true
				}
			case msg.GetNoteEnd(&ch, &key):
				id := noteID{ch, key}
				if started, ok := open[id]; ok {
					delete(open, id)
					info.Notes = append(info.Notes, Note{
						Track:    trackIndex,
						Channel:  ch,
						Key:      key,
						Velocity: started.velocity,
						Start:    float64(started.startTick) / ticksPerQuarter,
						Duration: float64(absTick-started.startTick) / ticksPerQuarter,
					})
				}
			case msg.GetProgramChange(&ch, &prog):
				if ch != DrumChannel && !seenPrograms[prog] {
					seenPrograms[prog] = true
					info.Programs = append(info.Programs, prog)
				}
			case msg.GetMetaTempo(&bpm):
				if !tempoSet {
					info.TempoBPM = bpm
					tempoSet = true
				}
			}
		}

		if beats := float64(absTick) / ticksPerQuarter; beats > info.TotalBeats {
			info.TotalBeats = beats
		}
	}

	for _, n := range info.Notes {
		if end := n.Start + n.Duration; end > info.TotalBeats {
			info.TotalBeats = end
		}
	}

	return info, nil
}
