// Package render defines options and sentinel errors for presentation of
// Correspondence Analysis results.
package render

import "errors"

// Sentinel errors for render operations.
var (
	// ErrNilResult indicates a nil *ca.Result was passed in.
	ErrNilResult = errors.New("render: result is nil")
	// ErrNilWriter indicates a nil output writer.
	ErrNilWriter = errors.New("render: writer is nil")
	// ErrNoAxes indicates fewer than two retained axes: no plane to plot.
	ErrNoAxes = errors.New("render: at least two factorial axes are required")
	// ErrEmptyPath indicates a missing output file path.
	ErrEmptyPath = errors.New("render: output path is empty")
	// ErrBadDims indicates non-positive image dimensions.
	ErrBadDims = errors.New("render: image dimensions must be positive")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMapSize is the square map edge in centimeters.
	DefaultMapSize = 14.0

	// DefaultTitle heads the factorial map.
	DefaultTitle = "Correspondence Analysis — factorial map"
)

// MapOptions configures ScatterMap.
//
// Fields:
//   - Path   — output file; the extension selects the format
//     (.png, .svg, .pdf — anything gonum/plot can save).
//   - Title  — map heading; DefaultTitle when empty.
//   - Width  — image width in centimeters; DefaultMapSize when 0.
//   - Height — image height in centimeters; DefaultMapSize when 0.
type MapOptions struct {
	Path   string
	Title  string
	Width  float64
	Height float64
}

// DefaultMapOptions returns the documented defaults with the given output
// path: 14×14 cm, standard title.
func DefaultMapOptions(path string) MapOptions {
	return MapOptions{
		Path:   path,
		Title:  DefaultTitle,
		Width:  DefaultMapSize,
		Height: DefaultMapSize,
	}
}
