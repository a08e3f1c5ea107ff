package main

import (
	"flag"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/midi"
)

func main() {
	var (
		out     = flag.String("out", "combined_composition.mid", "output MIDI file")
		layered = flag.Bool("layered", false, "stack the pieces instead of playing them in sequence")
	)
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) < 2 {
		fmt.Fprintln(os.Stderr, "usage: combine [-layered] [-out file.mid] first.mid second.mid [more.mid ...]")
		os.Exit(2)
	}

	files := make([]*smf.SMF, 0, len(inputs))
	for _, path := range inputs {
		s, err := smf.ReadFile(path)
		if err != nil {
			fatal(fmt.Errorf("reading %s: %w", path, err))
		}
		files = append(files, s)
	}

	var (
		combined *smf.SMF
		err      error
	)
	if *layered {
		combined, err = midi.CombineLayered(files)
	} else {
		combined, err = midi.CombineSequential(files)
	}
	if err != nil {
		fatal(err)
	}

	if err := combined.WriteFile(*out); err != nil {
		fatal(err)
	}

	mode := "sequential"
	if *layered {
		mode = "layered"
	}
	fmt.Printf("Combined %d files (%s) into %s\n", len(inputs), mode, *out)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
