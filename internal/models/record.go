package models

import "time"

// CompositionRecord is the persisted history row for one generated
// composition. Only request metadata is stored; the event stream
// itself lives in the exported MIDI file.
type CompositionRecord struct {
	ID              string `gorm:"primaryKey"`
	Title           string
	Style           string
	Key             string
	Mode            string
	Tempo           int
	DurationSeconds int
	Measures        int
	Instruments     string // comma-separated
	Seed            *int64
	CreatedAt       time.Time
}

func (CompositionRecord) TableName() string {
	return "compositions"
}
