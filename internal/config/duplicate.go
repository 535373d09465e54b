package config

// DuplicateConfig holds settings for duplicate final-position detection
// across a batch of scripts.
type DuplicateConfig struct {
	// Detect reports scripts whose final position repeats an earlier one.
	Detect bool

	// ExactMatch also requires the same number of committed moves.
	ExactMatch bool
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() DuplicateConfig {
	return DuplicateConfig{}
}
