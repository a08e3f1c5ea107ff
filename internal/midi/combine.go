package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"
)

// SequentialGapTicks is the pause inserted between pieces when
// combining sequentially: one measure at the standard resolution.
const SequentialGapTicks = 4 * TicksPerQuarter

// CombineSequential concatenates MIDI files end to end. Each file's
// tracks are shifted by the total length of everything before it plus
// a one-measure gap, so the pieces play one after another on a shared
// timeline. All inputs must use metric time.
func CombineSequential(files []*smf.SMF) (*smf.SMF, error) {
	return combine(files, true)
}

// CombineLayered stacks MIDI files on top of each other so all pieces
// start at tick zero and play simultaneously. Tempo and meter events
// are taken from the first file only.
func CombineLayered(files []*smf.SMF) (*smf.SMF, error) {
	return combine(files, false)
}

func combine(files []*smf.SMF, sequential bool) (*smf.SMF, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no MIDI files to combine")
	}

	out := smf.New()
	out.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	title := "Combined Composition"
	if !sequential {
		title = "Combined Layered Composition"
	}
	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName(title))
	meta.Close(0)
	if err := out.Add(meta); err != nil {
		return nil, err
	}

	shift := uint32(0)
	for i, file := range files {
		ticks, ok := file.TimeFormat.(smf.MetricTicks)
		if !ok {
			return nil, fmt.Errorf("file %d: unsupported time format %v", i, file.TimeFormat)
		}
		scale := float64(TicksPerQuarter) / float64(ticks.Resolution())

		fileEnd := uint32(0)
		for _, track := range file.Tracks {
			var rebuilt smf.Track
			absTick := uint32(0)
			last := uint32(0)
			empty := true

			for _, event := range track {
				absTick += event.Delta
				msg := event.Message

				if msg.Is(smf.MetaEndOfTrackMsg) {
					continue
				}
				// Keep one tempo map: the first file's.
				if i > 0 && !sequential && (msg.Is(smf.MetaTempoMsg) || msg.Is(smf.MetaTimeSigMsg)) {
					continue
				}

				tick := shift + uint32(float64(absTick)*scale+0.5)
				rebuilt.Add(tick-last, msg)
				last = tick
				empty = false
				if tick > fileEnd {
					fileEnd = tick
				}
			}

			if empty {
				continue
			}
			rebuilt.Close(0)
			if err := out.Add(rebuilt); err != nil {
				return nil, fmt.Errorf("file %d: %w", i, err)
			}
		}

		if sequential {
			shift = fileEnd + SequentialGapTicks
		}
	}

	return out, nil
}
