package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFor(t *testing.T) {
	tests := []struct {
		instrument string
		want       Role
	}{
		{"Bass", RoleBass},
		{"Double Bass", RoleBass},
		{"Synth Bass", RoleBass},
		{"Drums", RoleRhythm},
		{"Percussion", RoleRhythm},
		{"Piano", RoleChords},
		{"Electric Guitar", RoleChords},
		{"Pad", RoleChords},
		{"Violin", RoleMelody},
		{"Saxophone", RoleMelody},
		{"Theremin", RoleMelody},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoleFor(tt.instrument), tt.instrument)
	}
}
