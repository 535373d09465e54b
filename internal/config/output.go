package config

// OutputConfig holds board output settings.
type OutputConfig struct {
	// ShowBoard prints the board after every committed move.
	ShowBoard bool

	// SVGFile, if set, receives a diagram of the final position.
	SVGFile string

	// SquareSize is the edge length in pixels of one square in SVG output.
	SquareSize int

	// FlipBoard draws the diagram from Black's side.
	FlipBoard bool

	// JSONFormat reports final positions as JSON instead of text.
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() OutputConfig {
	return OutputConfig{
		ShowBoard:  true,
		SquareSize: 45,
	}
}
