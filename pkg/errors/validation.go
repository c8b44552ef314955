package errors

import (
	"strings"
	"unicode"
)

// Smallest grid that fits the fixed obstacle glyphs: 5 rows by 7 columns.
const (
	MinHeight = 5
	MinWidth  = 7
)

// MaxCells bounds height*width so cell and wall counts fit in an int on
// every platform.
const MaxCells = 1 << 28

// ValidateDimensions rejects grids that cannot hold the obstacle pattern.
// Non-positive sizes fall under the same rule. Dimensions are checked before
// any generation work so the pattern arithmetic never yields invalid indices.
func ValidateDimensions(height, width int) error {
	if height < MinHeight {
		return New(ErrCodeInvalidDimensions, "height %d is below the minimum of %d", height, MinHeight)
	}
	if width < MinWidth {
		return New(ErrCodeInvalidDimensions, "width %d is below the minimum of %d", width, MinWidth)
	}
	if height > MaxCells/width {
		return New(ErrCodeInvalidDimensions, "grid of %dx%d exceeds %d cells", height, width, MaxCells)
	}
	return nil
}

// ValidateCoord checks that (row, col) lies inside a height x width grid.
// name identifies the coordinate in the message (e.g. "entry").
func ValidateCoord(name string, row, col, height, width int) error {
	if row < 0 || row >= height || col < 0 || col >= width {
		return New(ErrCodeInvalidCoord, "%s (%d,%d) is outside the %dx%d grid", name, row, col, height, width)
	}
	return nil
}

// ValidateOutputPath validates a destination path for an encoded maze.
//
// Validation rules:
//   - Path cannot be empty or whitespace
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
//
// The special path "-" (stdout) is accepted.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if path == "-" {
		return nil
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
