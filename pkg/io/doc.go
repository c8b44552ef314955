// Package io reads and writes encoded mazes as files.
//
// # Format
//
// A maze file holds one line per grid row, top to bottom. Each line has one
// uppercase hexadecimal digit per cell and ends in a newline. A digit is the
// cell's wall bitmask:
//
//	8  North
//	4  East
//	2  South
//	1  West
//
// A set bit means the wall is closed. A 3x7 grid with only its boundary
// closed reads:
//
//	988888C
//	1000004
//	3222226
//
// # Export
//
// [ExportHex] writes through a temporary file in the destination directory
// and renames it into place, so a failed write leaves any previous file
// untouched. The [hexgrid.Grid] itself is not modified and can be written
// again.
//
//	if err := io.ExportHex(m.Encode(), "maze.txt"); err != nil {
//	    return err
//	}
//
// # Import
//
// [ImportHex] opens and parses a file with [hexgrid.Parse]. Malformed input
// fails with an INVALID_FORMAT error; file system failures with IO_ERROR.
//
// [hexgrid.Grid]: github.com/matzehuels/mazegen/pkg/hexgrid.Grid
// [hexgrid.Parse]: github.com/matzehuels/mazegen/pkg/hexgrid.Parse
package io
