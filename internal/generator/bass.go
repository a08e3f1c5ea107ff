package generator

import (
	"math/rand"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/theory"
)

// Bass notes get a fixed velocity; the low end stays steady rather
// than humanized.
const bassVelocity = 90

// BassLine generates a bass part: per measure, one of five canned
// rhythmic/harmonic patterns anchored on the chord's root degree.
func BassLine(scaleNotes, progression []string, numMeasures int, rng *rand.Rand) []models.Measure {
	if numMeasures <= 0 || len(scaleNotes) < 7 {
		return nil
	}
	progression = theory.FitProgression(progression, numMeasures)

	var events []models.Event
	for m := 0; m < numMeasures; m++ {
		rootDegree, ok := theory.Degree(progression[m])
		if !ok {
			rootDegree = 0
		}
		root := scaleNotes[rootDegree]
		third := scaleNotes[(rootDegree+2)%7]
		fifth := scaleNotes[(rootDegree+4)%7]
		seventh := scaleNotes[(rootDegree+6)%7]

		patterns := [][]models.Event{
			// Sustained root
			{models.NewNote(root, 4.0, bassVelocity)},
			// Root half notes
			{
				models.NewNote(root, 2.0, bassVelocity),
				models.NewNote(root, 2.0, bassVelocity),
			},
			// Root-fifth
			{
				models.NewNote(root, 2.0, bassVelocity),
				models.NewNote(fifth, 2.0, bassVelocity),
			},
			// Walking: root, third, fifth, approach tone
			{
				models.NewNote(root, 1.0, bassVelocity),
				models.NewNote(third, 1.0, bassVelocity),
				models.NewNote(fifth, 1.0, bassVelocity),
				models.NewNote(seventh, 1.0, bassVelocity),
			},
			// Syncopated root with rests
			{
				models.NewNote(root, 1.0, bassVelocity),
				models.NewRest(0.5),
				models.NewNote(root, 1.0, bassVelocity),
				models.NewNote(root, 1.0, bassVelocity),
				models.NewRest(0.5),
			},
		}

		events = append(events, patterns[rng.Intn(len(patterns))]...)
	}

	return packMeasures(events)
}
