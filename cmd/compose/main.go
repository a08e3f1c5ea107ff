package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/composer"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/midi"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/style"
)

func main() {
	var (
		tempo       = flag.Int("tempo", 0, "tempo in BPM (40-240)")
		key         = flag.String("key", "", "root note, e.g. C, F#, Bb")
		mode        = flag.String("mode", "", "major or minor")
		styleName   = flag.String("style", "", "classical, jazz, pop, rock or electronic")
		instruments = flag.String("instruments", "", "comma-separated instrument names")
		duration    = flag.Int("duration", 0, "target length in seconds (10-300)")
		progression = flag.String("progression", "", "comma-separated roman numerals, e.g. I,V,vi,IV")
		complexity  = flag.Float64("complexity", -1, "chord complexity 0.0-1.0 (default: style profile)")
		variation   = flag.Float64("variation", -1, "rhythm variation 0.0-1.0 (default: style profile)")
		seed        = flag.Int64("seed", 0, "random seed for reproducible output")
		seedSet     = false

		out       = flag.String("out", "composition.mid", "output MIDI file (or directory with -all-styles)")
		printJSON = flag.Bool("json", false, "print the composition event tree as JSON to stdout")
		suggest   = flag.Bool("suggest", false, "let the composer pick the parameters")
		allStyles = flag.Bool("all-styles", false, "generate one composition per style into the output directory")
	)
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	var opts []composer.Option
	if seedSet {
		opts = append(opts, composer.WithSeed(*seed))
	}
	comp := composer.New(opts...)

	params := models.DefaultParameters()
	if *suggest {
		params = comp.Suggest()
	}
	if *tempo != 0 {
		params.Tempo = *tempo
	}
	if *key != "" {
		params.Key = *key
	}
	if *mode != "" {
		params.Mode = *mode
	}
	if *styleName != "" {
		params.Style = *styleName
	}
	if *instruments != "" {
		params.Instruments = splitList(*instruments)
	}
	if *duration != 0 {
		params.Duration = *duration
	}
	if *progression != "" {
		params.ChordProgression = splitList(*progression)
	}
	if *complexity >= 0 {
		params.ChordComplexity = complexity
	}
	if *variation >= 0 {
		params.RhythmVariation = variation
	}
	params.Normalize()

	if *allStyles {
		if err := exploreStyles(comp, params, *out); err != nil {
			fatal(err)
		}
		return
	}

	composition, err := comp.Compose(params)
	if err != nil {
		fatal(err)
	}

	if *printJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(composition); err != nil {
			fatal(err)
		}
	}

	if err := midi.WriteFile(*out, composition); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %s (%s %s, %d BPM, %d measures, %d parts)\n",
		*out, composition.Key, composition.Mode, composition.Tempo,
		composition.TotalMeasures(), len(composition.Parts))
}

// exploreStyles renders the same parameters once per catalog style,
// letting each style's profile pick its own progression and feel.
func exploreStyles(comp *composer.Composer, base models.Parameters, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, st := range style.All() {
		params := base
		params.Style = st.String()
		params.ChordProgression = nil
		params.ChordComplexity = nil
		params.RhythmVariation = nil
		params.Instruments = style.ProfileFor(st).Instruments

		composition, err := comp.Compose(params)
		if err != nil {
			return fmt.Errorf("style %s: %w", st, err)
		}

		path := filepath.Join(dir, st.String()+".mid")
		if err := midi.WriteFile(path, composition); err != nil {
			return fmt.Errorf("style %s: %w", st, err)
		}
		fmt.Printf("Wrote %s (%d measures, %d parts)\n", path,
			composition.TotalMeasures(), len(composition.Parts))
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
