package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MinLineLength is the narrowest move text line accepted.
const MinLineLength = 20

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON summaries instead of text
	JSONFormat bool

	// ShowBoard prints the final board after each text summary
	ShowBoard bool

	// MaxLineLength is the maximum line length for move text
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below minimum %d: %w",
			o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
