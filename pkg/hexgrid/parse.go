package hexgrid

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	errs "github.com/matzehuels/mazegen/pkg/errors"
)

// Parse reads the hex text form from r.
//
// Lines are read until the first blank line or end of input. Surrounding
// spaces, tabs and line terminators are ignored, and hex digits may be either
// case. Parse fails with INVALID_FORMAT on a non-hex character or when rows
// differ in length. Empty input yields an empty grid.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	g := &Grid{}
	for sc.Scan() {
		line := strings.Trim(sc.Text(), " \t\r\n")
		if line == "" {
			break
		}
		if g.rows == 0 {
			g.cols = len(line)
		} else if len(line) != g.cols {
			return nil, errs.New(errs.ErrCodeInvalidFormat,
				"row %d has %d cells, expected %d", g.rows, len(line), g.cols)
		}
		for i := 0; i < len(line); i++ {
			v, ok := nibble(line[i])
			if !ok {
				return nil, errs.New(errs.ErrCodeInvalidFormat,
					"invalid hex digit %q at (%d,%d)", line[i], i, g.rows)
			}
			g.cells = append(g.cells, v)
		}
		g.rows++
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeIO, err, "read maze")
	}
	return g, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Grid) UnmarshalText(text []byte) error {
	parsed, err := Parse(bytes.NewReader(text))
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}

func nibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}
