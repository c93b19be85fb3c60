package config

import "io"

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress leaves later copies of a game out of the main output
	Suppress bool

	// ExactMatch requires the same move sequence, not just the same
	// final position after the same number of plies
	ExactMatch bool

	// DuplicateFile receives the summaries of duplicate games
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether games need to be checked for duplicates.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.DuplicateFile != nil
}
