package config

// DefaultHistoryCapacity matches history.DefaultCapacity.
const DefaultHistoryCapacity = 1024

// HistoryConfig holds undo/redo history settings.
type HistoryConfig struct {
	// Capacity is the maximum number of board snapshots, the starting
	// position included.
	Capacity int

	// EvictOldest drops the oldest snapshot when full instead of ignoring
	// the newest one.
	EvictOldest bool
}

// NewHistoryConfig creates a HistoryConfig with default values.
func NewHistoryConfig() HistoryConfig {
	return HistoryConfig{
		Capacity: DefaultHistoryCapacity,
	}
}
