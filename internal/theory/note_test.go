package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteIndex(t *testing.T) {
	tests := []struct {
		name    string
		note    string
		want    int
		wantErr bool
	}{
		{name: "natural", note: "C", want: 0},
		{name: "sharp", note: "F#", want: 6},
		{name: "flat normalized", note: "Bb", want: 10},
		{name: "flat without sharp equivalent", note: "Cb", want: 11},
		{name: "lowercase letter", note: "g", want: 7},
		{name: "unknown letter", note: "H", wantErr: true},
		{name: "empty", note: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NoteIndex(tt.note)
			if tt.wantErr {
				require.Error(t, err)
				var invalidErr *InvalidNoteNameError
				assert.ErrorAs(t, err, &invalidErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		note      string
		semitones int
		want      string
	}{
		{"C", 14, "D"},
		{"C", 18, "F#"},
		{"C", 21, "A"},
		{"A#", 3, "C#"},
		{"D", -2, "C"},
		{"G", 0, "G"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Transpose(tt.note, tt.semitones),
			"Transpose(%s, %d)", tt.note, tt.semitones)
	}
}

func TestTransposeInvalidNameUnchanged(t *testing.T) {
	assert.Equal(t, "X", Transpose("X", 7))
}

func TestIsConsonant(t *testing.T) {
	assert.True(t, IsConsonant("C", "E"), "major third")
	assert.True(t, IsConsonant("C", "G"), "perfect fifth")
	assert.True(t, IsConsonant("E", "C"), "order independent")
	assert.False(t, IsConsonant("C", "C#"), "minor second")
	assert.False(t, IsConsonant("C", "F#"), "tritone")
}
